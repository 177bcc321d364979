package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/flexacc/flexacc/internal/flexbatch"
	"github.com/flexacc/flexacc/internal/flexconfig"
	"github.com/flexacc/flexacc/internal/flexhash"
	"github.com/flexacc/flexacc/internal/flexlog"
	"github.com/flexacc/flexacc/internal/flexpack"
	"github.com/flexacc/flexacc/internal/flexreport"
	"github.com/flexacc/flexacc/internal/flexsignal"
	"github.com/flexacc/flexacc/ocrtext"
)

// manifestEntry records one scored pair plus the content digests of its
// inputs, so a later run can diff its manifest against this one.
type manifestEntry struct {
	RelPath string  `json:"rel_path"`
	GTHash  string  `json:"gt_hash"`
	OCRHash string  `json:"ocr_hash"`
	Score   float64 `json:"score"`
}

func runBatch(args []string) ExitCode {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	gtDir := fs.String("gt-dir", "", "ground-truth directory")
	ocrDir := fs.String("ocr-dir", "", "OCR output directory")
	gtGlob := fs.String("gt-glob", "", "ground-truth glob pattern (default **/*)")
	ocrGlob := fs.String("ocr-glob", "", "OCR glob pattern (default **/*)")
	bundlePath := fs.String("bundle", "", "archive per-document reports plus manifest into this .tar.gz")
	format := fs.String("format", "", "output format: text|json (default from config)")
	configPath := fs.String("config", "", "config file path")
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}
	if *gtDir == "" || *ocrDir == "" {
		fmt.Fprintln(os.Stderr, "flexacc batch: --gt-dir and --ocr-dir are required")
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

	pairs, unmatchedGT, unmatchedOCR, err := flexbatch.DiscoverPairs(*gtDir, *ocrDir, *gtGlob, *ocrGlob)
	if err != nil {
		logger.WithError(err).Error("failed to discover GT/OCR pairs")
		return ExitIOOrParse
	}
	for _, rel := range unmatchedGT {
		logger.WithComponent(rel).Warn("ground truth file has no matching OCR output")
	}
	for _, rel := range unmatchedOCR {
		logger.WithComponent(rel).Warn("OCR output file has no matching ground truth")
	}

	ctx, cancel := context.WithCancel(context.Background())
	signalMgr := flexsignal.NewManager()
	var manifestMu sync.Mutex
	var manifest []manifestEntry
	var docs []flexreport.DocumentResult
	tmpDir, err := os.MkdirTemp("", "flexacc-batch-")
	if err == nil {
		signalMgr.OnShutdown(func(context.Context) error {
			return writeManifest(tmpDir, manifest)
		})
	}
	go func() {
		_ = signalMgr.Listen(ctx, 10*time.Second)
		// A signal stops scoring new pairs; completed results are still
		// written to the manifest and bundle below.
		cancel()
	}()
	defer cancel()

	hadItemError := scoreBatch(ctx, pairs, cfg.BatchConcurrency, logger, &manifestMu, &manifest, &docs)

	if tmpDir != "" {
		_ = writeManifest(tmpDir, manifest)
		if *bundlePath != "" {
			if err := bundleReports(tmpDir, docs, manifest, *bundlePath); err != nil {
				logger.WithError(err).Error("failed to bundle batch reports")
				return ExitIOOrParse
			}
		}
		_ = os.RemoveAll(tmpDir)
	}

	report := flexreport.BuildReport(docs)
	outputFormat := *format
	if outputFormat == "" {
		outputFormat = cfg.ReportFormat
	}
	code := printReport(report, outputFormat)
	if code == ExitSuccess && hadItemError {
		return ExitItemFlagged
	}
	return code
}

// scoreBatch runs up to concurrency scoring workers over pairs, appending
// results to manifest/docs under manifestMu, and returns whether any
// individual item failed to extract or score.
func scoreBatch(ctx context.Context, pairs []flexbatch.Pair, concurrency int, logger *flexlog.Logger,
	manifestMu *sync.Mutex, manifest *[]manifestEntry, docs *[]flexreport.DocumentResult) bool {
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var hadError bool
	var errorMu sync.Mutex

pairLoop:
	for _, pair := range pairs {
		select {
		case <-ctx.Done():
			break pairLoop
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(pair flexbatch.Pair) {
			defer wg.Done()
			defer func() { <-sem }()

			gtDoc, err := ocrtext.Extract(pair.GTPath, ocrtext.Options{})
			if err != nil {
				logger.WithError(err).WithComponent(pair.RelPath).Error("failed to extract ground truth")
				errorMu.Lock()
				hadError = true
				errorMu.Unlock()
				return
			}
			ocrDoc, err := ocrtext.Extract(pair.OCRPath, ocrtext.Options{})
			if err != nil {
				logger.WithError(err).WithComponent(pair.RelPath).Error("failed to extract OCR output")
				errorMu.Lock()
				hadError = true
				errorMu.Unlock()
				return
			}

			gtText := gtDoc.Text()
			ocrText := ocrDoc.Text()
			doc := flexreport.BuildDocument(pair.RelPath, gtText, ocrText)

			manifestMu.Lock()
			*docs = append(*docs, doc)
			*manifest = append(*manifest, manifestEntry{
				RelPath: pair.RelPath,
				GTHash:  flexhash.HashString(gtText).String(),
				OCRHash: flexhash.HashString(ocrText).String(),
				Score:   doc.Score,
			})
			manifestMu.Unlock()
		}(pair)
	}
	wg.Wait()
	return hadError
}

func writeManifest(dir string, manifest []manifestEntry) error {
	path := filepath.Join(dir, "manifest.json")
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func bundleReports(tmpDir string, docs []flexreport.DocumentResult, manifest []manifestEntry, bundlePath string) error {
	files := []flexpack.ReportFile{{ArchiveName: "manifest.json", SourcePath: filepath.Join(tmpDir, "manifest.json")}}
	for _, doc := range docs {
		name := doc.Name + ".json"
		path := filepath.Join(tmpDir, filepath.Base(name))
		data, err := flexreport.RenderJSON(flexreport.BuildReport([]flexreport.DocumentResult{doc}))
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		files = append(files, flexpack.ReportFile{ArchiveName: name, SourcePath: path})
	}
	return flexpack.Bundle(files, bundlePath)
}
