package statesplit

import (
	"os"
	"os/signal"
	"syscall"
)

// StartSignalHandler calls cancelf on the first SIGHUP, SIGINT, SIGTERM or
// SIGQUIT. Call endf to stop listening.
func StartSignalHandler(cancelf func()) (endf func()) {
	sigc := make(chan os.Signal, 4)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	done := make(chan struct{})
	endf = func() {
		signal.Stop(sigc)
		close(done)
	}

	go func() {
		select {
		case <-sigc:
			cancelf()
		case <-done:
		}
	}()
	return endf
}
