package statesplit

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/jgbaldwinbrown/iter"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

const nIntervalFields = 4

const maxLineLen = 1 << 30

var tabSplit = lscan.ByByte('\t')

// Interval is one row of a mnemonics file. Coordinates stay as text so that
// rows are written back out byte for byte.
type Interval struct {
	Chrom string
	Start string
	Stop string
	Label string
	Line int
}

func parseInterval(buf []string, line string, lineno int) (Interval, []string, error) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	buf = lscan.SplitByFunc(buf, line, tabSplit)
	if len(buf) != nIntervalFields {
		return Interval{}, buf, &ParseError{Line: lineno, Fields: len(buf), Text: line}
	}
	return Interval{
		Chrom: buf[0],
		Start: buf[1],
		Stop: buf[2],
		Label: buf[3],
		Line: lineno,
	}, buf, nil
}

// ParseInterval decomposes one line of a mnemonics file. Trailing whitespace
// is ignored; anything other than four tab-separated fields is a *ParseError.
func ParseInterval(line string, lineno int) (Interval, error) {
	iv, _, e := parseInterval(nil, line, lineno)
	return iv, e
}

// ReadIntervals streams the rows of a mnemonics file. Lines are numbered
// from 1.
func ReadIntervals(r io.Reader) *iter.Iterator[Interval] {
	return &iter.Iterator[Interval]{Iteratef: func(yield func(Interval) error) error {
		s := bufio.NewScanner(r)
		s.Buffer([]byte{}, maxLineLen)
		var fields []string
		for lineno := 1; s.Scan(); lineno++ {
			var iv Interval
			var e error
			iv, fields, e = parseInterval(fields, s.Text(), lineno)
			if e != nil {
				return e
			}
			if e = yield(iv); e != nil {
				return e
			}
		}
		return s.Err()
	}}
}
