package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"pagesum"
	"pagesum/extract"
	"pagesum/gemini"
	psgoquery "pagesum/goquery"
	"pagesum/htmltomarkdown"
	pshttp "pagesum/http"
	"pagesum/readability"
	psslog "pagesum/slog"
	pstoml "pagesum/toml"
	"pagesum/trafilatura"
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

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesum"),
		kong.Description("Summarize a web page's text and images with Gemini."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesum --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := pstoml.Load(cli.Config)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	text, err := newTextExtractor(cli.Mode)
	if err != nil {
		return err
	}

	var imageOpts []psgoquery.ImageOption
	if cfg.Extract.DedupeImages {
		imageOpts = append(imageOpts, psgoquery.WithDedupe())
	}
	if cfg.Extract.MaxImages > 0 {
		imageOpts = append(imageOpts, psgoquery.WithMaxImages(cfg.Extract.MaxImages))
	}

	extractor := &extract.Service{
		Fetcher: pshttp.NewFetcher(),
		Text:    text,
		Images:  psgoquery.NewImageExtractor(imageOpts...),
	}
	deps.Extractor = psslog.NewLoggingExtractor(extractor, logger)

	// A missing API key does not abort wiring: extraction still runs and
	// the summarizer reports the missing key in place of a summary.
	summarizer, err := gemini.NewSummarizer(ctx, cfg.Gemini.APIKey,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithMaxPromptLen(cfg.Summarize.MaxPromptLen),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: check your GEMINI_API_KEY is valid")
		return err
	}
	deps.Summarizer = psslog.NewLoggingSummarizer(summarizer, logger)

	return kongCtx.Run(deps)
}

// newTextExtractor selects the text extraction implementation for the
// given mode.
func newTextExtractor(mode string) (pagesum.TextExtractor, error) {
	switch mode {
	case "strip":
		return psgoquery.NewStripExtractor(), nil
	case "readability":
		return readability.NewExtractor(htmltomarkdown.NewConverter()), nil
	case "article":
		return trafilatura.NewExtractor(htmltomarkdown.NewConverter()), nil
	default:
		return nil, pagesum.Errorf(pagesum.EINVALID, "unknown extraction mode %q", mode)
	}
}
