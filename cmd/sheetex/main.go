package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mgirard/sheetex"
	"github.com/mgirard/sheetex/extract"
	"github.com/mgirard/sheetex/fs"
	"github.com/mgirard/sheetex/gemini"
	"github.com/mgirard/sheetex/pdfcpu"
	sheetexslog "github.com/mgirard/sheetex/slog"
	"github.com/mgirard/sheetex/tabula"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Analyzer: tabula.NewAnalyzer(),
		Stamper:  pdfcpu.NewStamper(),
		Analyses: fs.NewWriter(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sheetex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sheetex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Extraction commands need the Gemini-backed pipeline; analyze and
	// stamp run fully offline.
	if cmd == "extract" || cmd == "batch" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		model := cli.Extract.Model
		threshold := cli.Extract.Threshold
		retry := cli.Extract.Retry
		if cmd == "batch" {
			model = cli.Batch.Model
			threshold = cli.Batch.Threshold
			retry = cli.Batch.Retry
		}

		var detector sheetex.BoundaryDetector = sheetexslog.NewLoggingDetector(gemini.NewDetector(client, model), logger)
		if retry {
			detector = extract.NewRetryDetector(detector, logger)
		}
		if cmd == "batch" && cli.Batch.RPS > 0 {
			detector = extract.NewLimitedDetector(detector, cli.Batch.RPS)
		}

		deps.Extractor = &extract.Extractor{
			Analyzer:     deps.Analyzer,
			Stamper:      deps.Stamper,
			Detector:     detector,
			Materializer: sheetexslog.NewLoggingMaterializer(pdfcpu.NewMaterializer(), logger),
			Analyses:     deps.Analyses,
			Threshold:    threshold,
			Logger:       logger,
		}
	}

	return kongCtx.Run(deps)
}
