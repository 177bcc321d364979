package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flexacc/flexacc/internal/flexconfig"
)

func runValidateConfig(args []string) ExitCode {
	fs := flag.NewFlagSet("validate-config", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "flexacc validate-config: provide exactly one config file path")
		return ExitUsageError
	}

	cfg, err := flexconfig.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitConfigInvalid
	}

	fmt.Printf("config is valid: log_level=%s cache_capacity=%d batch_concurrency=%d report_format=%s\n",
		cfg.LogLevel, cfg.CacheCapacity, cfg.BatchConcurrency, cfg.ReportFormat)
	return ExitSuccess
}
