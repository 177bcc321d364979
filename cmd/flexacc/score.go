package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flexacc/flexacc/internal/flexconfig"
	"github.com/flexacc/flexacc/internal/flexerr"
	"github.com/flexacc/flexacc/internal/flexlog"
	"github.com/flexacc/flexacc/internal/flexreport"
	"github.com/flexacc/flexacc/ocrtext"
	"github.com/flexacc/flexacc/ocrtext/readingorder"
)

func runScore(args []string) ExitCode {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	gtPath := fs.String("gt", "", "ground-truth file (PAGE, ALTO, or plain text)")
	ocrPath := fs.String("ocr", "", "OCR output file (PAGE, ALTO, or plain text)")
	format := fs.String("format", "", "output format: text|json (default from config)")
	configPath := fs.String("config", "", "config file path (default: XDG search)")
	readingOrder := fs.String("reading-order", "", "PAGE reading order strategy: document|reading_order|grid")
	textequivLevel := fs.String("textequiv-level", "", "PAGE text granularity: region|line")
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}
	if *gtPath == "" || *ocrPath == "" {
		fmt.Fprintln(os.Stderr, "flexacc score: --gt and --ocr are required")
		return ExitUsageError
	}

	cfg, err := flexconfig.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitConfigInvalid
	}

	logger, err := flexlog.New(flexlog.Config{Service: "flexacc", DefaultLevel: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitIOOrParse
	}
	defer logger.Sync()

	opts := extractOptions(*readingOrder, *textequivLevel)

	gtDoc, err := ocrtext.Extract(*gtPath, opts)
	if err != nil {
		logger.WithError(err).Error("failed to extract ground truth")
		return ExitIOOrParse
	}
	ocrDoc, err := ocrtext.Extract(*ocrPath, opts)
	if err != nil {
		logger.WithError(err).Error("failed to extract OCR output")
		return ExitIOOrParse
	}

	doc := flexreport.BuildDocument(filepath.Base(*gtPath), gtDoc.Text(), ocrDoc.Text())
	report := flexreport.BuildReport([]flexreport.DocumentResult{doc})

	outputFormat := *format
	if outputFormat == "" {
		outputFormat = cfg.ReportFormat
	}
	return printReport(report, outputFormat)
}

func extractOptions(readingOrderFlag, textequivLevelFlag string) ocrtext.Options {
	opts := ocrtext.Options{}
	if readingOrderFlag != "" {
		opts.ReadingOrderStrategy = readingorder.Strategy(readingOrderFlag)
	}
	if textequivLevelFlag != "" {
		opts.TextEquivLevel = ocrtext.TextEquivLevel(textequivLevelFlag)
	}
	return opts
}

func printReport(report flexreport.Report, format string) ExitCode {
	switch format {
	case "json":
		data, err := flexreport.RenderJSON(report)
		if err != nil {
			fmt.Fprintln(os.Stderr, flexerr.Wrap("flexacc.score.render_json", err))
			return ExitIOOrParse
		}
		fmt.Println(string(data))
	default:
		fmt.Print(flexreport.RenderTable(report))
	}
	return ExitSuccess
}
