// Command planpdf-mcp is an MCP (Model Context Protocol) server that lets AI
// assistants render generated fitness plans into PDFs.
//
// # Installation
//
//	go install github.com/lvillar/planpdf/cmd/planpdf-mcp@latest
//
// # Flags
//
//	-config  YAML configuration file (theme, branding, archive)
//	-out     directory that receives PDFs saved by render_plan_pdf
//
// # Available Tools
//
//   - render_plan_pdf: Render plan HTML into a PDF, inline or saved to -out
//   - preview_plan: Lay a plan out and return the per-page text
//   - compute_stats: Compute BMI, category and recommended plan type
//   - verify_pdf: Validate a PDF and count its pages
//
// # Available Resources
//
//   - planpdf://theme/default : the default theme as YAML
//   - planpdf://tags : the data-plan-tag vocabulary
//
// Logs are written as JSON to stderr; stdout carries the protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/archive"
	"github.com/lvillar/planpdf/internal/config"
	"github.com/lvillar/planpdf/mcp"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	outDir := flag.String("out", "", "directory for saved PDFs")
	flag.Parse()

	if err := run(*configPath, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "planpdf-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, outDir string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	cfg.ApplyEnv(os.Getenv)
	logger := cfg.Logger(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mcfg := mcp.Config{
		ProductName: cfg.ProductName,
		RenderOptions: func() ([]planpdf.Option, error) {
			return cfg.RenderOptions(nil)
		},
		OutputDir: outDir,
		Logger:    logger,
	}
	if cfg.Archive.Path != "" {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		mcfg.Archive = store
	}

	logger.Info("planpdf-mcp starting", "version", mcp.Version, "out", outDir, "archive", cfg.Archive.Path)
	return mcp.Run(ctx, mcp.NewServer(mcfg))
}
