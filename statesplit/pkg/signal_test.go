package statesplit

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestSignalHandlerCancels(t *testing.T) {
	called := make(chan struct{})
	endf := StartSignalHandler(func() { close(called) })
	defer endf()

	if e := syscall.Kill(os.Getpid(), syscall.SIGINT); e != nil { panic(e) }

	select {
	case <-called:
	case <-time.After(5 * time.Second):
		t.Fatalf("SIGINT did not cancel")
	}
}

func TestSignalHandlerEnd(t *testing.T) {
	called := make(chan struct{}, 1)
	endf := StartSignalHandler(func() { called <- struct{}{} })
	endf()

	select {
	case <-called:
		t.Errorf("cancel ran without a signal")
	case <-time.After(50 * time.Millisecond):
	}
}
