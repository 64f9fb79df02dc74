// Command statesplit splits per-sample chromatin-state mnemonics files
// (chrom, start, stop, state) into one three-column BED file per sample and
// state.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/charlesbreeze/eFORGE/statesplit/pkg"
)

func main() {
	log.SetFlags(0)

	cfg, e := statesplit.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(e, flag.ErrHelp) {
		return
	}
	if e != nil {
		log.Fatal(e)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigend := statesplit.StartSignalHandler(cancel)
	defer sigend()

	if _, e = statesplit.Run(ctx, cfg); e != nil {
		sigend()
		log.Fatal(e)
	}
}
