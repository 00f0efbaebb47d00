package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/layout"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProductName != planpdf.DefaultProductName || cfg.OutputName != "Elite_Fitness_Plan.pdf" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Theme != layout.DefaultTheme() {
		t.Error("theme differs from the default")
	}
	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.MaxBodyBytes != 4<<20 {
		t.Errorf("http defaults: %+v", cfg.HTTP)
	}
}

func TestLoadFilePartialTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planpdf.yaml")
	data := `
product_name: Elite Coach
log_level: debug
theme:
  accent: {r: 10, g: 20, b: 30}
  card_threshold: 240
brand:
  qr_payload: https://example.com
http:
  addr: 127.0.0.1:9000
  read_timeout: 5s
archive:
  path: /tmp/plans.db
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	def := layout.DefaultTheme()
	if cfg.Theme.Accent != (layout.RGB{R: 10, G: 20, B: 30}) || cfg.Theme.CardThreshold != 240 {
		t.Errorf("theme overrides lost: %+v", cfg.Theme)
	}
	if cfg.Theme.QuoteThreshold != def.QuoteThreshold || cfg.Theme.MindsetTitle != def.MindsetTitle {
		t.Error("unset theme fields lost their defaults")
	}
	if cfg.ProductName != "Elite Coach" || cfg.DocumentTitle != planpdf.DefaultTitle {
		t.Errorf("names: %q, %q", cfg.ProductName, cfg.DocumentTitle)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9000" || cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Errorf("http: %+v", cfg.HTTP)
	}
	if cfg.Archive.Path != "/tmp/plans.db" || cfg.Brand.QRPayload != "https://example.com" {
		t.Errorf("archive/brand: %+v %+v", cfg.Archive, cfg.Brand)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("prodcut_name: typo\n")); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{"LOG_LEVEL": "warn", "PLANPDF_ADDR": ":7000"}
	cfg.ApplyEnv(func(k string) string { return env[k] })
	if cfg.LogLevel != "warn" || cfg.HTTP.Addr != ":7000" || cfg.Archive.Path != "" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]string{"debug": "DEBUG", "WARN": "WARN", "error": "ERROR", "loud": "INFO"} {
		cfg := &Config{LogLevel: in}
		if got := cfg.Level().String(); got != want {
			t.Errorf("Level(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	opts, err := cfg.RenderOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 3 {
		t.Errorf("got %d options, want 3", len(opts))
	}

	cfg.Brand.Logo = filepath.Join(t.TempDir(), "missing.png")
	if _, err := cfg.RenderOptions(nil); err == nil {
		t.Error("expected an error for a missing logo")
	}
}
