package statesplit

import (
	"fmt"
	"strings"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// SampleError is a file-access failure (or cancellation) while processing
// one sample.
type SampleError struct {
	Sample string
	Err error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %v: %v", e.Sample, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// ParseError is a mnemonics line that does not split into exactly four
// tab-separated fields.
type ParseError struct {
	Sample string
	Line int
	Fields int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sample %v: line %v: expected %v tab-separated fields, got %v: %q",
		e.Sample, e.Line, nIntervalFields, e.Fields, e.Text)
}

// UnknownLabelError is a state label with no output handle.
type UnknownLabelError struct {
	Sample string
	Line int
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("sample %v: line %v: unknown state label %q", e.Sample, e.Line, e.Label)
}

// FailedSamplesError collects the per-sample errors of a run that kept going
// past failures.
type FailedSamplesError struct {
	Total int
	Errs []error
}

func (e *FailedSamplesError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v of %v samples failed", len(e.Errs), e.Total)
	for _, err := range e.Errs {
		fmt.Fprintf(&b, "\n\t%v", err)
	}
	return b.String()
}

func (e *FailedSamplesError) Unwrap() []error {
	return e.Errs
}
