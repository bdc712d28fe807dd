package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/Devon-White/html-grader/internal/checker"
	"github.com/Devon-White/html-grader/internal/checks"
	"github.com/Devon-White/html-grader/internal/config"
	"github.com/Devon-White/html-grader/internal/extractor"
	"github.com/Devon-White/html-grader/internal/fetcher"
	"github.com/Devon-White/html-grader/internal/source"
	"github.com/Devon-White/html-grader/internal/writer"
)

// Run grades the document named by cfg and writes the report to stdout.
// cfg must already be validated.
func Run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	return Grade(ctx, NewSource(cfg), cfg, stdout)
}

// NewSource picks the document source configured by cfg.
func NewSource(cfg *config.Config) source.Source {
	if cfg.URL != "" {
		return source.NewURL(cfg.URL, fetcher.New(cfg.UserAgent, cfg.Timeout))
	}
	return source.NewFile(cfg.File)
}

// Grade loads the check list, reads the document from src, evaluates every
// selector and reports the result. Nothing is written to stdout unless every
// step succeeds.
func Grade(ctx context.Context, src source.Source, cfg *config.Config, stdout io.Writer) error {
	selectors, err := checks.Load(cfg.ChecksFile)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("Loaded %d checks from %s", len(selectors), cfg.ChecksFile)
		log.Printf("Reading document: %s", src)
	}

	doc, err := src.Document(ctx)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		if title := extractor.Title(doc); title != "" {
			log.Printf("Document title: %s", title)
		}
	}

	result, err := checker.Check(doc, selectors)
	if err != nil {
		return err
	}

	opts := writer.Options{
		Format: cfg.Format,
		Indent: cfg.Indent,
		Color:  !cfg.NoColor,
	}

	if cfg.Output != "" {
		if err := saveReport(cfg.Output, result, opts); err != nil {
			return fmt.Errorf("output: %w", err)
		}
		if cfg.Verbose {
			log.Printf("Report written to %s", cfg.Output)
		}
	}

	if err := writer.Write(stdout, result, opts); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if cfg.Verbose {
		log.Printf("Done. %d/%d selectors present.", result.Passed(), len(result))
	}
	return nil
}

// saveReport writes the file copy of the report. Files never get terminal
// colour codes.
func saveReport(path string, result checker.Result, opts writer.Options) error {
	opts.Color = false
	data, err := writer.Encode(result, opts)
	if err != nil {
		return err
	}
	return writer.WriteFile(path, data)
}
