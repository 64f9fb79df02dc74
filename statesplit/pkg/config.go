package statesplit

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"
)

const (
	DefaultPrefix = "."
	DefaultSuffix = "_15_coreMarks_mnemonics.bed"
	DefaultOutDir = "erc2-chromatin15state-all-files"
)

// Config is everything a run needs. Inputs are read from
// {Prefix}/{sample}{Suffix}; outputs go to {OutDir}/{sample}_{label}.bed.
type Config struct {
	Prefix string
	Suffix string
	OutDir string
	Samples []string
	Labels []string

	// Write gzip-compressed outputs.
	Gzip bool
	// Samples processed at once; values below 1 mean one per CPU.
	Threads int
	// Skip failed samples instead of stopping the run.
	KeepGoing bool
	// Leave a failed sample's partial outputs on disk.
	KeepPartial bool
	// Optional JSON-lines record of every sample.
	Manifest string

	Log *log.Logger `json:"-"`
}

// DefaultConfig reproduces the Roadmap 15-state, 127-epigenome layout.
func DefaultConfig() Config {
	return Config{
		Prefix: DefaultPrefix,
		Suffix: DefaultSuffix,
		OutDir: DefaultOutDir,
		Samples: DefaultSamples(),
		Labels: DefaultLabels(),
		Threads: 1,
	}
}

func (c Config) logger() *log.Logger {
	if c.Log == nil {
		return discardLogger
	}
	return c.Log
}

func (c Config) InputPath(sample string) string {
	return InputPath(c.Prefix, sample, c.Suffix)
}

func (c Config) threads() int {
	if c.Threads < 1 {
		return runtime.NumCPU()
	}
	return c.Threads
}

// Validate rejects configurations that would drop rows or make two outputs
// share a file.
func (c Config) Validate() error {
	h := handle("Config.Validate: %w")
	if len(c.Samples) < 1 {
		return h(fmt.Errorf("no samples"))
	}
	if len(c.Labels) < 1 {
		return h(fmt.Errorf("no state labels"))
	}

	seen := map[string]struct{}{}
	for _, s := range c.Samples {
		if s == "" {
			return h(fmt.Errorf("empty sample name"))
		}
		if strings.ContainsAny(s, `/\`) || strings.ContainsRune(s, os.PathSeparator) {
			return h(fmt.Errorf("sample %q contains a path separator", s))
		}
		if _, ok := seen[s]; ok {
			return h(fmt.Errorf("duplicate sample %q", s))
		}
		seen[s] = struct{}{}
	}

	names := map[string]string{}
	for _, l := range c.Labels {
		if l == "" {
			return h(fmt.Errorf("empty state label"))
		}
		name := SanitizeLabel(l)
		if prev, ok := names[name]; ok {
			if prev == l {
				return h(fmt.Errorf("duplicate state label %q", l))
			}
			return h(fmt.Errorf("state labels %q and %q both map to file name %q", prev, l, name))
		}
		names[name] = l
	}
	return nil
}

// GetConfigFromReader overlays the JSON object in r onto c. Fields absent
// from the JSON keep their value in c.
func GetConfigFromReader(r io.Reader, c Config) (Config, error) {
	h := handle("GetConfigFromReader: %w")
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if e := dec.Decode(&c); e != nil { return c, h(e) }
	return c, nil
}

func GetConfigFromPath(path string, c Config) (Config, error) {
	h := handle("GetConfigFromPath: %w")

	r, e := os.Open(path)
	if e != nil { return c, h(e) }
	defer r.Close()

	c, e = GetConfigFromReader(r, c)
	if e != nil { return c, h(e) }
	return c, nil
}

// WriteConfig writes c as indented JSON that GetConfigFromReader accepts.
func WriteConfig(w io.Writer, c Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	return enc.Encode(c)
}

// ReadList reads the first column of a tab-separated list, skipping blank
// lines and lines starting with '#'.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		line := s.Line()
		if len(line) < 1 {
			continue
		}
		item := strings.TrimSpace(line[0])
		if item == "" || strings.HasPrefix(item, "#") {
			continue
		}
		out = append(out, item)
	}
	if e := s.InScanner.Err(); e != nil {
		return out, fmt.Errorf("ReadList: %w", e)
	}
	return out, nil
}

func ReadListPath(path string) ([]string, error) {
	h := handle("ReadListPath: %v: %w")

	r, e := csvh.OpenMaybeGz(path)
	if e != nil { return nil, h(path, e) }
	defer r.Close()

	out, e := ReadList(r)
	if e != nil { return nil, h(path, e) }
	return out, nil
}

// DiscoverSamples finds the samples that have a file named {sample}{suffix}
// in prefix, sorted by name.
func DiscoverSamples(prefix, suffix string) ([]string, error) {
	h := handle("DiscoverSamples: %w")
	if suffix == "" {
		return nil, h(fmt.Errorf("cannot discover samples without an input suffix"))
	}

	ents, e := os.ReadDir(prefix)
	if e != nil { return nil, h(e) }

	var out []string
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		sample := strings.TrimSuffix(name, suffix)
		if sample == "" {
			continue
		}
		out = append(out, sample)
	}
	sort.Strings(out)

	if len(out) < 1 {
		return nil, h(fmt.Errorf("no files matching %v", InputPath(prefix, "*", suffix)))
	}
	return out, nil
}
