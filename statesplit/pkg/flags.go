package statesplit

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Flags struct {
	ArgPath string
	Prefix string
	Suffix string
	OutDir string
	Samples string
	SampleFile string
	Discover bool
	Labels string
	LabelFile string
	Gzip bool
	Threads int
	KeepGoing bool
	KeepPartial bool
	Manifest string
	Quiet bool
}

func splitComma(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// ParseFlags builds a Config from the command line. Built-in defaults are
// overridden by the -a JSON file, which is overridden by flags given
// explicitly.
func ParseFlags(name string, args []string, stderr io.Writer) (Config, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.ArgPath, "a", "", "JSON config file (see statesplit-config)")
	fs.StringVar(&f.Prefix, "p", DefaultPrefix, "Directory holding the per-sample mnemonics files")
	fs.StringVar(&f.Suffix, "s", DefaultSuffix, "Mnemonics file name suffix after the sample ID")
	fs.StringVar(&f.OutDir, "o", DefaultOutDir, "Output directory, created if missing")
	fs.StringVar(&f.Samples, "samples", "", "Comma-separated sample IDs (default: the 127 Roadmap epigenomes)")
	fs.StringVar(&f.SampleFile, "sample-file", "", "File listing one sample ID per line")
	fs.BoolVar(&f.Discover, "discover", false, "Process every {prefix}/*{suffix} file")
	fs.StringVar(&f.Labels, "labels", "", "Comma-separated state labels (default: the 15 core states)")
	fs.StringVar(&f.LabelFile, "label-file", "", "File listing one state label per line")
	fs.BoolVar(&f.Gzip, "gz", false, "Write gzip-compressed .bed.gz outputs")
	fs.IntVar(&f.Threads, "t", 1, "Samples to process at once (< 1: one per CPU)")
	fs.BoolVar(&f.KeepGoing, "k", false, "Skip failed samples and report them at the end")
	fs.BoolVar(&f.KeepPartial, "keep-partial", false, "Keep the partial outputs of a failed sample")
	fs.StringVar(&f.Manifest, "manifest", "", "Write a JSON line per sample to this path")
	fs.BoolVar(&f.Quiet, "q", false, "Do not print progress messages")
	if e := fs.Parse(args); e != nil {
		return Config{}, e
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f.Config(fs)
}

// Config resolves the parsed flags. fs reports which flags were set.
func (f Flags) Config(fs *flag.FlagSet) (Config, error) {
	h := handle("Flags.Config: %w")

	c := DefaultConfig()
	if f.ArgPath != "" {
		var e error
		c, e = GetConfigFromPath(f.ArgPath, c)
		if e != nil { return c, h(e) }
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if n := countTrue(set["samples"], set["sample-file"], f.Discover); n > 1 {
		return c, h(fmt.Errorf("-samples, -sample-file and -discover are mutually exclusive"))
	}
	if set["labels"] && set["label-file"] {
		return c, h(fmt.Errorf("-labels and -label-file are mutually exclusive"))
	}

	if set["p"] { c.Prefix = f.Prefix }
	if set["s"] { c.Suffix = f.Suffix }
	if set["o"] { c.OutDir = f.OutDir }
	if set["gz"] { c.Gzip = f.Gzip }
	if set["t"] { c.Threads = f.Threads }
	if set["k"] { c.KeepGoing = f.KeepGoing }
	if set["keep-partial"] { c.KeepPartial = f.KeepPartial }
	if set["manifest"] { c.Manifest = f.Manifest }

	var e error
	switch {
	case set["samples"]:
		c.Samples = splitComma(f.Samples)
	case set["sample-file"]:
		c.Samples, e = ReadListPath(f.SampleFile)
	case f.Discover:
		c.Samples, e = DiscoverSamples(c.Prefix, c.Suffix)
	}
	if e != nil { return c, h(e) }

	switch {
	case set["labels"]:
		c.Labels = splitComma(f.Labels)
	case set["label-file"]:
		c.Labels, e = ReadListPath(f.LabelFile)
	}
	if e != nil { return c, h(e) }

	if !f.Quiet {
		c.Log = log.New(os.Stderr, "", 0)
	}

	if e := c.Validate(); e != nil { return c, h(e) }
	return c, nil
}
