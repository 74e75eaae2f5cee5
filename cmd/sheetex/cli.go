package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mgirard/sheetex"
	"github.com/mgirard/sheetex/extract"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Analyzer  sheetex.CatalogAnalyzer
	Stamper   sheetex.PageStamper
	Analyses  sheetex.AnalysisWriter
	Extractor *extract.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract technical sheets from a catalog as separate PDFs"`
	Analyze AnalyzeCmd `cmd:"" help:"Stamp page identifiers and write the structural analysis"`
	Stamp   StampCmd   `cmd:"" help:"Write a page-stamped copy of a catalog"`
	Batch   BatchCmd   `cmd:"" help:"Extract technical sheets from every catalog in a directory"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Catalog   string  `arg:"" help:"Path to the catalog PDF"`
	Output    string  `short:"o" default:"output" help:"Output directory"`
	Threshold float64 `short:"t" default:"0.6" help:"Boundary acceptance confidence threshold"`
	Model     string  `short:"m" help:"Gemini model name"`
	Retry     bool    `help:"Retry failed detection calls with backoff"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Catalog string `arg:"" help:"Path to the catalog PDF"`
	Output  string `short:"o" default:"output" help:"Output directory"`
}

// StampCmd is the "stamp" subcommand.
type StampCmd struct {
	Catalog string `arg:"" help:"Path to the catalog PDF"`
	Output  string `short:"o" default:"output" help:"Output directory"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir         string  `arg:"" help:"Directory containing catalog PDFs"`
	Output      string  `short:"o" default:"output" help:"Output directory"`
	Threshold   float64 `short:"t" default:"0.6" help:"Boundary acceptance confidence threshold"`
	Model       string  `short:"m" help:"Gemini model name"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent catalog limit"`
	RPS         float64 `default:"1" help:"Detection requests per second"`
	Retry       bool    `help:"Retry failed detection calls with backoff"`
}
