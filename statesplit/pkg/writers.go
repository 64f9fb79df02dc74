package statesplit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/jgbaldwinbrown/csvh"
)

type labelWriter struct {
	label string
	path string
	fp io.WriteCloser
	*bufio.Writer
	rows int64
}

func (w *labelWriter) Close() error {
	var err error
	if e := w.Flush(); e != nil && err == nil {
		err = e
	}
	if e := w.fp.Close(); e != nil && err == nil {
		err = e
	}
	return err
}

// LabelWriters holds one open output per state label for a single sample.
// Rows are routed by their original, unsanitized label.
type LabelWriters struct {
	Sample string
	labels []string
	paths map[string]string
	open map[string]*labelWriter
	created []string
	closed bool
	log *log.Logger
}

// NewLabelWriters plans the output files of one sample without touching the
// file system.
func NewLabelWriters(dir, sample string, labels []string, gz bool, lg *log.Logger) *LabelWriters {
	lw := &LabelWriters{
		Sample: sample,
		labels: append([]string{}, labels...),
		paths: make(map[string]string, len(labels)),
		open: make(map[string]*labelWriter, len(labels)),
		log: lg,
	}
	if lw.log == nil {
		lw.log = discardLogger
	}
	for _, label := range labels {
		lw.paths[label] = OutputPath(dir, sample, label, gz)
	}
	return lw
}

// Open creates (or truncates) every output in label order. On error the
// outputs opened so far stay open and must still be closed.
func (lw *LabelWriters) Open() error {
	h := handle("LabelWriters.Open: %w")
	for _, label := range lw.labels {
		path := lw.paths[label]
		lw.log.Printf("Setting up output handle to [%s]...\n", path)
		fp, e := csvh.CreateMaybeGz(path)
		if e != nil { return h(e) }
		lw.created = append(lw.created, path)
		lw.open[label] = &labelWriter{label: label, path: path, fp: fp, Writer: bufio.NewWriter(fp)}
	}
	return nil
}

// Write appends chrom, start and stop of iv to the output for iv.Label.
func (lw *LabelWriters) Write(iv Interval) error {
	w, ok := lw.open[iv.Label]
	if !ok {
		return &UnknownLabelError{Sample: lw.Sample, Line: iv.Line, Label: iv.Label}
	}
	if _, e := fmt.Fprintf(w, "%v\t%v\t%v\n", iv.Chrom, iv.Start, iv.Stop); e != nil {
		return fmt.Errorf("LabelWriters.Write: %w", e)
	}
	w.rows++
	return nil
}

// Close flushes and closes every open output. It is safe to call more than
// once; the first error is returned.
func (lw *LabelWriters) Close() error {
	if lw.closed {
		return nil
	}
	lw.closed = true

	var err error
	for _, label := range lw.labels {
		w, ok := lw.open[label]
		if !ok {
			continue
		}
		lw.log.Printf("Closing output handle to [%s]...\n", w.path)
		if e := w.Close(); e != nil && err == nil {
			err = fmt.Errorf("LabelWriters.Close: %v: %w", w.path, e)
		}
	}
	return err
}

// Remove closes the outputs and deletes every file Open created.
func (lw *LabelWriters) Remove() error {
	err := lw.Close()
	for _, path := range lw.created {
		lw.log.Printf("Removing partial output [%s]...\n", path)
		if e := os.Remove(path); e != nil && !errors.Is(e, fs.ErrNotExist) && err == nil {
			err = e
		}
	}
	lw.created = nil
	return err
}

// Outputs lists each label's path and the rows written to it so far.
func (lw *LabelWriters) Outputs() []OutputInfo {
	out := make([]OutputInfo, 0, len(lw.labels))
	for _, label := range lw.labels {
		oi := OutputInfo{Label: label, Path: lw.paths[label]}
		if w, ok := lw.open[label]; ok {
			oi.Rows = w.rows
		}
		out = append(out, oi)
	}
	return out
}
