package statesplit

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestLabelWritersLifecycle(t *testing.T) {
	dir := t.TempDir()
	var logbuf bytes.Buffer
	labels := []string{"1_TssA", "8_ZNF/Rpts"}
	lw := NewLabelWriters(dir, "E004", labels, false, log.New(&logbuf, "", 0))

	if e := lw.Open(); e != nil { panic(e) }
	if e := lw.Write(Interval{"chr1", "0", "10", "8_ZNF/Rpts", 1}); e != nil { panic(e) }

	e := lw.Write(Interval{"chr1", "10", "20", "8_ZNF-Rpts", 2})
	var ue *UnknownLabelError
	if !errors.As(e, &ue) || ue.Label != "8_ZNF-Rpts" || ue.Sample != "E004" {
		t.Errorf("sanitized name accepted as a label: %v", e)
	}

	if e := lw.Close(); e != nil { panic(e) }
	if e := lw.Close(); e != nil {
		t.Errorf("second Close: %v", e)
	}

	if out := readFile(t, OutputPath(dir, "E004", "8_ZNF/Rpts", false)); out != "chr1\t0\t10\n" {
		t.Errorf("out %q", out)
	}
	outs := lw.Outputs()
	if len(outs) != 2 || outs[0].Rows != 0 || outs[1].Rows != 1 {
		t.Errorf("outputs %+v", outs)
	}

	logs := logbuf.String()
	for _, want := range []string{"Setting up output handle to [", "Closing output handle to [", "E004_8_ZNF-Rpts.bed]"} {
		if !strings.Contains(logs, want) {
			t.Errorf("log %q lacks %q", logs, want)
		}
	}
	if n := strings.Count(logs, "Closing output handle"); n != 2 {
		t.Errorf("%v close messages, want 2", n)
	}

	if e := lw.Remove(); e != nil { panic(e) }
	for _, l := range labels {
		if exists(OutputPath(dir, "E004", l, false)) {
			t.Errorf("%v not removed", l)
		}
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	var logbuf bytes.Buffer
	lg := log.New(&logbuf, "", 0)

	target := dir + "/a/b"
	if e := EnsureDir(target, lg); e != nil { panic(e) }
	if e := EnsureDir(target, lg); e != nil { panic(e) }
	if n := strings.Count(logbuf.String(), "Creating dir"); n != 1 {
		t.Errorf("%v create messages, want 1", n)
	}

	file := dir + "/file"
	writeFile(t, file, "")
	if e := EnsureDir(file, lg); e == nil {
		t.Errorf("regular file accepted as output dir")
	}
}
