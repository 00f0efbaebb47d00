// Command planpdf renders generated fitness plans into PDFs.
//
//	planpdf render  [flags] <plan.html|payload.json|->
//	planpdf preview [flags] <plan.html|payload.json|->
//	planpdf serve   [-config file]
//	planpdf verify  <file.pdf>...
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/archive"
	"github.com/lvillar/planpdf/content"
	"github.com/lvillar/planpdf/internal/config"
	"github.com/lvillar/planpdf/internal/httpapi"
	"github.com/lvillar/planpdf/stats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = cmdRender(os.Args[2:])
	case "preview":
		err = cmdPreview(os.Args[2:])
	case "serve":
		err = cmdServe(os.Args[2:])
	case "verify":
		err = cmdVerify(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "planpdf %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `planpdf renders generated fitness plans into PDFs

usage:
  planpdf render  [flags] <plan.html|payload.json|->
  planpdf preview [flags] <plan.html|payload.json|->
  planpdf serve   [-config file]
  planpdf verify  <file.pdf>...

render   Writes the PDF (default %s), and archives it when configured.
preview  Prints the text of every page without producing a PDF.
serve    Starts the HTTP endpoint (POST /plans/pdf).
verify   Validates PDF files and prints their page counts.

Input ending in .json is read as a plan service response.
`, planpdf.DefaultFilename)
}

// planFlags are shared by render and preview.
type planFlags struct {
	config   string
	product  string
	bmi      string
	category string
	goal     string
	strategy string
	height   float64
	weight   float64
	activity string
}

func (p *planFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.config, "config", "", "YAML configuration file")
	fs.StringVar(&p.product, "product", "", "product name shown in the footer")
	fs.StringVar(&p.bmi, "bmi", "", "BMI shown in the stats box")
	fs.StringVar(&p.category, "category", "", "BMI category")
	fs.StringVar(&p.goal, "goal", "", "fitness goal, shown as \"<goal> Focus\"")
	fs.StringVar(&p.strategy, "strategy", "", "recommended plan type")
	fs.Float64Var(&p.height, "height", 0, "height in cm; with -weight, computes the stats")
	fs.Float64Var(&p.weight, "weight", 0, "weight in kg")
	fs.StringVar(&p.activity, "activity", "", "activity level, used with -height and -weight")
}

func (p *planFlags) loadConfig() (*config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if p.config != "" {
		var err error
		if cfg, err = config.LoadFile(p.config); err != nil {
			return nil, nil, err
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if p.product != "" {
		cfg.ProductName = p.product
	}
	return cfg, cfg.Logger(os.Stderr), nil
}

// load reads the plan from path and returns the document and stats to
// render. Flags override values carried by a payload.
func (p *planFlags) load(path string) (*content.Document, stats.Summary, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, stats.Summary{}, err
	}

	var (
		doc *content.Document
		sum stats.Summary
	)
	if strings.HasSuffix(path, ".json") {
		payload, err := planpdf.ParsePayload(bytes.NewReader(data))
		if err != nil {
			return nil, sum, err
		}
		payload.Goal = p.goal
		if doc, err = payload.Document(); err != nil {
			return nil, sum, err
		}
		sum = payload.Summary()
	} else {
		if doc, err = content.Parse(bytes.NewReader(data)); err != nil {
			return nil, sum, err
		}
	}

	if p.height > 0 || p.weight > 0 {
		sum = stats.Compute(stats.Profile{HeightCM: p.height, WeightKG: p.weight, Goal: p.goal, Activity: p.activity})
	}
	if p.goal != "" && sum.Focus == "" {
		sum.Focus = p.goal + " Focus"
	}
	for _, o := range []struct {
		dst *string
		v   string
	}{{&sum.BMI, p.bmi}, {&sum.Category, p.category}, {&sum.Strategy, p.strategy}} {
		if o.v != "" {
			*o.dst = o.v
		}
	}
	return doc, sum, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var pf planFlags
	pf.register(fs)
	out := fs.String("o", "", "output file (default from configuration)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("render requires one input file")
	}

	cfg, logger, err := pf.loadConfig()
	if err != nil {
		return err
	}
	doc, sum, err := pf.load(fs.Arg(0))
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions(logger)
	if err != nil {
		return err
	}
	art, err := planpdf.Render(doc, sum, cfg.ProductName, opts...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.Archive.Path != "" {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		rec, err := store.SaveArtifact(ctx, art, cfg.OutputName)
		if err != nil {
			return err
		}
		logger.Info("plan archived", "id", rec.ID, "archive", cfg.Archive.Path)
	}

	path := *out
	if path == "" {
		path = cfg.OutputName
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := art.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("plan rendered", "id", art.ID(), "pages", art.PageCount(), "bytes", art.Len(), "path", path)
	return nil
}

func cmdPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var pf planFlags
	pf.register(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("preview requires one input file")
	}

	cfg, logger, err := pf.loadConfig()
	if err != nil {
		return err
	}
	doc, sum, err := pf.load(fs.Arg(0))
	if err != nil {
		return err
	}
	pages, err := planpdf.Preview(os.Stdout, doc, sum, cfg.ProductName,
		planpdf.WithTitle(cfg.DocumentTitle),
		planpdf.WithTheme(cfg.Theme),
		planpdf.WithPageSize(cfg.PageSize),
		planpdf.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("preview done", "pages", pages)
	return nil
}

func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	fs.Parse(args)

	pf := planFlags{config: *configPath}
	cfg, logger, err := pf.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var store httpapi.Archive
	if cfg.Archive.Path != "" {
		st, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer st.Close()
		store = st
	}

	srv := httpapi.New(cfg, store, logger).HTTPServer()
	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "archive", cfg.Archive.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func cmdVerify(args []string) error {
	if len(args) == 0 {
		return errors.New("verify requires at least one file")
	}
	var failed int
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err == nil {
			var pages int
			if pages, err = planpdf.Verify(data); err == nil {
				fmt.Printf("%s: ok, %d pages\n", path, pages)
				continue
			}
		}
		fmt.Printf("%s: %v\n", path, err)
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}
