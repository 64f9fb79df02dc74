package statesplit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// The fifteen-state core-marks ChromHMM model.
var coreLabels = []string{
	"1_TssA",
	"2_TssAFlnk",
	"3_TxFlnk",
	"4_Tx",
	"5_TxWk",
	"6_EnhG",
	"7_Enh",
	"8_ZNF/Rpts",
	"9_Het",
	"10_TssBiv",
	"11_BivFlnk",
	"12_EnhBiv",
	"13_ReprPC",
	"14_ReprPCWk",
	"15_Quies",
}

// Roadmap epigenome numbers that were withdrawn from the release.
var roadmapMissing = map[int]struct{}{
	60: struct{}{},
	64: struct{}{},
}

const roadmapLast = 129

// DefaultLabels returns the core fifteen chromatin states in model order.
func DefaultLabels() []string {
	return append([]string{}, coreLabels...)
}

// DefaultSamples returns the 127 Roadmap epigenome IDs, E001 through E129
// without E060 and E064.
func DefaultSamples() []string {
	out := make([]string, 0, roadmapLast-len(roadmapMissing))
	for i := 1; i <= roadmapLast; i++ {
		if _, ok := roadmapMissing[i]; ok {
			continue
		}
		out = append(out, fmt.Sprintf("E%03d", i))
	}
	return out
}

// SanitizeLabel makes a state label safe for use in a file name.
func SanitizeLabel(label string) string {
	return strings.ReplaceAll(label, "/", "-")
}

// OutputPath is where the rows of one sample and state are written.
func OutputPath(dir, sample, label string, gz bool) string {
	name := sample + "_" + SanitizeLabel(label) + ".bed"
	if gz {
		name += ".gz"
	}
	return filepath.Join(dir, name)
}

// InputPath is the mnemonics file of one sample.
func InputPath(prefix, sample, suffix string) string {
	return filepath.Join(prefix, sample+suffix)
}
