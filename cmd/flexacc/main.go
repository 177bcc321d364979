// Command flexacc scores OCR output against ground truth using flexible
// character accuracy. Grounded on cmd/gofulmen-schema/main.go's
// flag-subcommand dispatch style (stdlib flag, no cobra/urfave — the
// teacher carries neither, so neither is introduced here).
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) ExitCode {
	if len(args) == 0 {
		usage()
		return ExitUsageError
	}

	switch args[0] {
	case "score":
		return runScore(args[1:])
	case "batch":
		return runBatch(args[1:])
	case "validate-config":
		return runValidateConfig(args[1:])
	case "help", "-h", "--help":
		usage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "flexacc: unknown command %q\n", args[0])
		usage()
		return ExitUsageError
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `flexacc computes reading-order-independent OCR accuracy.

Usage:
  flexacc score --gt FILE --ocr FILE [--format text|json] [--config PATH]
  flexacc batch --gt-dir DIR --ocr-dir DIR [--gt-glob PAT] [--ocr-glob PAT] [--bundle PATH]
  flexacc validate-config PATH`)
}
