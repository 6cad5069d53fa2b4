package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shoplens"
	"github.com/fwojciec/shoplens/goquery"
	shophttp "github.com/fwojciec/shoplens/http"
	"github.com/fwojciec/shoplens/readability"
	"github.com/fwojciec/shoplens/scrape"
	shopslog "github.com/fwojciec/shoplens/slog"
	"github.com/fwojciec/shoplens/trafilatura"

	"github.com/fwojciec/shoplens/htmltomarkdown"
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
	// Fetcher override for end-to-end testing. When nil, Run constructs
	// the real HTTP fetcher.
	Fetcher shoplens.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shoplens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shoplens --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = shophttp.NewFetcher(shophttp.WithTimeout(time.Duration(cli.Timeout) * time.Second))
	}
	defer fetcher.Close()
	fetcher = shopslog.NewLoggingFetcher(fetcher, logger)

	var detector shoplens.PlatformDetector = goquery.NewDetector()
	detector = shopslog.NewLoggingDetector(detector, logger)

	deps.Insights = &scrape.Scraper{
		Fetcher:       fetcher,
		Detector:      detector,
		Scanner:       goquery.NewScanner(),
		Prose:         []shoplens.ProseExtractor{trafilatura.NewExtractor(), readability.NewExtractor()},
		Converter:     htmltomarkdown.NewConverter(),
		NavSelectors:  goquery.NavSelectors(),
		CardSelectors: goquery.CardSelectors(),
		Products:      shophttp.NewProductSitemap(fetcher),
		Limiter:       scrape.NewDomainLimiter(cli.Rate, 4),
	}

	return kongCtx.Run(deps)
}
