package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/shoplens"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Insights shoplens.InsightService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan  ScanCmd  `cmd:"" help:"Scan a storefront and print its insight as JSON"`
	Serve ServeCmd `cmd:"" help:"Serve the insight API over HTTP"`

	Timeout int     `default:"10" env:"SHOPLENS_TIMEOUT" help:"Per-request fetch timeout in seconds"`
	Rate    float64 `default:"4" env:"SHOPLENS_RATE" help:"Outbound requests per second per store"`
	Verbose bool    `short:"v" help:"Log every fetch and detection step"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL         string `arg:"" help:"Storefront URL"`
	Fingerprint bool   `short:"f" help:"Also print the insight fingerprint"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":5000" env:"SHOPLENS_ADDR" help:"Listen address"`
}
