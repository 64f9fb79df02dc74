package statesplit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/jgbaldwinbrown/csvh"
)

var discardLogger = log.New(io.Discard, "", 0)

// Rows between cancellation checks.
const ctxCheckEvery = 1 << 12

// OutputInfo describes one per-state output file.
type OutputInfo struct {
	Label string
	Path string
	Rows int64
}

// SampleResult is what happened to one sample.
type SampleResult struct {
	Sample string
	Input string
	Outputs []OutputInfo
	Rows int64
	Err string `json:",omitempty"`
}

// Split routes every row of r to its state's output in lw and returns the
// number of rows written.
func Split(ctx context.Context, r io.Reader, lw *LabelWriters) (int64, error) {
	var n int64
	e := ReadIntervals(r).Iterate(func(iv Interval) error {
		if n%ctxCheckEvery == 0 {
			if e := ctx.Err(); e != nil {
				return e
			}
		}
		if e := lw.Write(iv); e != nil {
			return e
		}
		n++
		return nil
	})

	var pe *ParseError
	if errors.As(e, &pe) {
		pe.Sample = lw.Sample
	}
	return n, e
}

// SplitSample partitions one sample's mnemonics file into per-state BED
// files under cfg.OutDir. All outputs are closed before it returns; when it
// fails they are also deleted unless cfg.KeepPartial is set.
func SplitSample(ctx context.Context, cfg Config, sample string) (res SampleResult, err error) {
	lg := cfg.logger()
	res.Sample = sample
	res.Input = cfg.InputPath(sample)

	lw := NewLabelWriters(cfg.OutDir, sample, cfg.Labels, cfg.Gzip, lg)
	defer func() {
		if e := lw.Close(); e != nil && err == nil {
			err = &SampleError{Sample: sample, Err: e}
		}
		res.Outputs = lw.Outputs()
		if err == nil {
			return
		}
		res.Err = err.Error()
		if cfg.KeepPartial {
			lg.Printf("Keeping partial output of sample %v\n", sample)
			return
		}
		if e := lw.Remove(); e != nil {
			lg.Printf("Could not remove partial output of sample %v: %v\n", sample, e)
		}
	}()

	if e := lw.Open(); e != nil {
		return res, &SampleError{Sample: sample, Err: e}
	}

	lg.Printf("Reading PSM [%s]...\n", res.Input)
	r, e := csvh.OpenMaybeGz(res.Input)
	if e != nil {
		return res, &SampleError{Sample: sample, Err: e}
	}
	defer r.Close()

	res.Rows, e = Split(ctx, r, lw)
	if e == nil {
		return res, nil
	}

	var pe *ParseError
	var ue *UnknownLabelError
	if errors.As(e, &pe) || errors.As(e, &ue) {
		return res, e
	}
	return res, &SampleError{Sample: sample, Err: e}
}

// EnsureDir creates dir and its parents if it does not exist yet.
func EnsureDir(dir string, lg *log.Logger) error {
	h := handle("EnsureDir: %w")
	if lg == nil {
		lg = discardLogger
	}

	info, e := os.Stat(dir)
	if e == nil {
		if !info.IsDir() {
			return h(fmt.Errorf("%v exists and is not a directory", dir))
		}
		return nil
	}
	if !errors.Is(e, fs.ErrNotExist) { return h(e) }

	lg.Printf("Creating dir [%s]...\n", dir)
	if e := os.MkdirAll(dir, 0755); e != nil { return h(e) }
	return nil
}
