package statesplit

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/iter"
)

func TestParseInterval(t *testing.T) {
	type test struct {
		name string
		line string
		want Interval
		fields int
	}
	tests := []test{
		test{"plain", "chr1\t0\t200\t1_TssA", Interval{"chr1", "0", "200", "1_TssA", 7}, 0},
		test{"newline", "chr1\t0\t200\t1_TssA\n", Interval{"chr1", "0", "200", "1_TssA", 7}, 0},
		test{"crlf", "chr2\t10\t20\t8_ZNF/Rpts\r\n", Interval{"chr2", "10", "20", "8_ZNF/Rpts", 7}, 0},
		test{"trailingtab", "chrX\t5\t6\t15_Quies\t", Interval{"chrX", "5", "6", "15_Quies", 7}, 0},
		test{"verbatimcoords", "chr1\t0100\t+200\t4_Tx", Interval{"chr1", "0100", "+200", "4_Tx", 7}, 0},
		test{"three", "chr1\t0\t200", Interval{}, 3},
		test{"five", "chr1\t0\t200\t1_TssA\textra", Interval{}, 5},
		test{"spaces", "chr1 0 200 1_TssA", Interval{}, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			iv, e := ParseInterval(test.line, 7)
			if test.fields == 0 {
				if e != nil {
					t.Fatalf("unexpected error %v", e)
				}
				if iv != test.want {
					t.Errorf("iv %v != want %v", iv, test.want)
				}
				return
			}
			var pe *ParseError
			if !errors.As(e, &pe) {
				t.Fatalf("error %v is not a *ParseError", e)
			}
			if pe.Fields != test.fields || pe.Line != 7 {
				t.Errorf("pe %+v: want %v fields on line 7", pe, test.fields)
			}
		})
	}
}

const intervalsIn = `chr1	0	200	1_TssA
chr1	200	1000	15_Quies
chr2	5	9	8_ZNF/Rpts
`

func TestReadIntervals(t *testing.T) {
	got, e := iter.Collect[Interval](ReadIntervals(strings.NewReader(intervalsIn)))
	if e != nil { panic(e) }

	expect := []Interval{
		Interval{"chr1", "0", "200", "1_TssA", 1},
		Interval{"chr1", "200", "1000", "15_Quies", 2},
		Interval{"chr2", "5", "9", "8_ZNF/Rpts", 3},
	}
	if !reflect.DeepEqual(got, expect) {
		t.Errorf("got %v != expect %v", got, expect)
	}
}

func TestReadIntervalsBadLine(t *testing.T) {
	in := "chr1\t0\t200\t1_TssA\nchr1\t200\t1000\nchr1\t1000\t2000\t1_TssA\n"
	n := 0
	e := ReadIntervals(strings.NewReader(in)).Iterate(func(Interval) error {
		n++
		return nil
	})

	var pe *ParseError
	if !errors.As(e, &pe) {
		t.Fatalf("error %v is not a *ParseError", e)
	}
	if pe.Line != 2 || pe.Text != "chr1\t200\t1000" {
		t.Errorf("pe %+v: want line 2", pe)
	}
	if n != 1 {
		t.Errorf("yielded %v rows before the bad line, want 1", n)
	}
}
