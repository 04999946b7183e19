package main

import (
	"context"
	"io"
	"log/slog"

	"pagesum"
)

// Dependencies holds all services for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Extractor  pagesum.Extractor
	Summarizer pagesum.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to the config file." default:"config.toml" env:"PAGESUM_CONFIG"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
	Mode    string `help:"Text extraction mode." enum:"strip,readability,article" default:"strip"`

	Summarize SummarizeCmd `cmd:"" help:"Fetch a page, extract its content, and print a Gemini summary"`
	Serve     ServeCmd     `cmd:"" help:"Serve a single-page form for interactive summarization"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"URL of the page to summarize"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address." default:":8080"`
}
