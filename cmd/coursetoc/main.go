package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pbialon/coursetoc"
	"github.com/pbialon/coursetoc/fs"
	"github.com/pbialon/coursetoc/goquery"
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
type Main struct {
	// Components for end-to-end testing.
	Loader    coursetoc.Loader
	Extractor coursetoc.Extractor
	Writer    coursetoc.Writer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Loader:    fs.NewLoader(),
		Extractor: goquery.NewExtractor(),
		Writer:    fs.NewTextWriter(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursetoc"),
		kong.Description("Extract section titles and durations from a saved course page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	content, err := m.Loader.Load(ctx, cli.Input)
	if err != nil {
		return err
	}

	sections, err := m.Extractor.Extract(content)
	if err != nil {
		return err
	}

	if err := m.Writer.Write(ctx, cli.Output, sections); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Extracted sections have been saved to '%s'.\n", cli.Output)
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `arg:"" optional:"" default:"input.html" help:"Saved course page to read"`
	Output string `arg:"" optional:"" default:"sections.tsv" help:"File the section listing is written to"`
}
