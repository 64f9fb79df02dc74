// Command statesplit-config prints the default statesplit configuration as
// JSON, or one of its lists one item per line, for editing and passing back
// through statesplit -a, -sample-file or -label-file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charlesbreeze/eFORGE/statesplit/pkg"
)

type Flags struct {
	Samples bool
	Labels bool
	Discover string
	Suffix string
}

func main() {
	log.SetFlags(0)

	var f Flags
	flag.BoolVar(&f.Samples, "S", false, "Print only the sample IDs")
	flag.BoolVar(&f.Labels, "l", false, "Print only the state labels")
	flag.StringVar(&f.Discover, "discover", "", "Fill the sample list from the mnemonics files in this directory")
	flag.StringVar(&f.Suffix, "s", statesplit.DefaultSuffix, "Mnemonics file name suffix, used with -discover")
	flag.Parse()
	if f.Samples && f.Labels {
		log.Fatal("-S and -l are mutually exclusive")
	}

	cfg := statesplit.DefaultConfig()
	if f.Discover != "" {
		samples, e := statesplit.DiscoverSamples(f.Discover, f.Suffix)
		if e != nil {
			log.Fatal(e)
		}
		cfg.Prefix = f.Discover
		cfg.Suffix = f.Suffix
		cfg.Samples = samples
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	var list []string
	switch {
	case f.Samples:
		list = cfg.Samples
	case f.Labels:
		list = cfg.Labels
	default:
		if e := statesplit.WriteConfig(stdout, cfg); e != nil {
			log.Fatal(e)
		}
		return
	}
	for _, item := range list {
		if _, e := fmt.Fprintln(stdout, item); e != nil {
			log.Fatal(e)
		}
	}
}
