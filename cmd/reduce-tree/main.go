package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/ritzau/reduce-tree/pkg/collect"
	"github.com/ritzau/reduce-tree/pkg/config"
	"github.com/ritzau/reduce-tree/pkg/logging"
	"github.com/ritzau/reduce-tree/pkg/output"
	"github.com/ritzau/reduce-tree/pkg/prepare"
)

func main() {
	fs := pflag.NewFlagSet("reduce-tree", pflag.ContinueOnError)
	fs.BoolP("prepare", "p", false, "prepare source tree for reduction (pre-build)")
	fs.BoolP("collect", "c", false, "collect used files into a reduced source tree (post-build)")
	fs.StringP("src", "s", "", "source directory of the initial tree")
	fs.StringP("dst", "d", "", "destination directory for the reduced tree")
	fs.Bool("report", false, "print a summary after a successful run")
	fs.CountP("verbose", "v", "increase log verbosity (repeatable)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fail(err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fail(err)
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	logging.SetLevel(logging.VerbosityLevel(cfg.Verbose))
	ctx := logging.WithRunID(context.Background(), uuid.New().String())

	start := time.Now()
	switch {
	case cfg.Prepare:
		stamped, err := prepare.Run(ctx, cfg.Src, cfg.Extensions, cfg.Window)
		if err != nil {
			fail(fmt.Errorf("Could not prepare: %w", err))
		}
		if cfg.Report {
			output.PrintSummary(output.Summary{
				Mode:    "prepare",
				Root:    cfg.Src,
				Scanned: stamped,
				Touched: stamped,
				Elapsed: time.Since(start),
			})
		}

	case cfg.Collect:
		stats, err := collect.Run(ctx, cfg.Src, cfg.Dst, cfg.Extensions)
		if err != nil {
			fail(fmt.Errorf("Could not collect: %w", err))
		}
		if cfg.Report {
			output.PrintSummary(output.Summary{
				Mode:    "collect",
				Root:    cfg.Src,
				Dest:    cfg.Dst,
				Scanned: stats.Scanned,
				Touched: stats.Copied,
				Elapsed: time.Since(start),
			})
		}
	}
}

// fail reports the failure on stdout and exits non-zero.
func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
