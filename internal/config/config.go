// Package config loads planpdf settings from YAML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/layout"
)

// Config is the top-level planpdf configuration.
type Config struct {
	ProductName   string        `yaml:"product_name"`
	DocumentTitle string        `yaml:"document_title"`
	OutputName    string        `yaml:"output_name"`
	PageSize      string        `yaml:"page_size"`
	Watermark     string        `yaml:"watermark"`
	LogLevel      string        `yaml:"log_level"` // debug | info | warn | error
	Theme         layout.Theme  `yaml:"theme"`
	Brand         BrandConfig   `yaml:"brand"`
	HTTP          HTTPConfig    `yaml:"http"`
	Archive       ArchiveConfig `yaml:"archive"`
}

// BrandConfig holds optional decorations of the first page and every page.
type BrandConfig struct {
	Logo       string `yaml:"logo"`       // PNG, JPEG or GIF file
	Letterhead string `yaml:"letterhead"` // PDF whose first page is drawn under every page
	QRPayload  string `yaml:"qr_payload"`
}

// HTTPConfig controls the download endpoint.
type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ArchiveConfig locates the SQLite export archive. An empty path disables it.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Theme: layout.DefaultTheme()}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file. Keys missing from the file keep
// their defaults, including individual theme fields.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Theme: layout.DefaultTheme()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ProductName == "" {
		c.ProductName = planpdf.DefaultProductName
	}
	if c.DocumentTitle == "" {
		c.DocumentTitle = planpdf.DefaultTitle
	}
	if c.OutputName == "" {
		c.OutputName = planpdf.DefaultFilename
	}
	if c.PageSize == "" {
		c.PageSize = "A4"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.ReadTimeout <= 0 {
		c.HTTP.ReadTimeout = 30 * time.Second
	}
	if c.HTTP.WriteTimeout <= 0 {
		c.HTTP.WriteTimeout = 60 * time.Second
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 4 << 20
	}
}

// ApplyEnv overrides settings from LOG_LEVEL, PLANPDF_ADDR and
// PLANPDF_ARCHIVE when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("PLANPDF_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := getenv("PLANPDF_ARCHIVE"); v != "" {
		c.Archive.Path = v
	}
}

// Level maps LogLevel to a slog level. Unknown names mean info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns a JSON logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// RenderOptions builds the render options described by the configuration.
// The logo option holds a reader that a render consumes, so call it once per
// render.
func (c *Config) RenderOptions(logger *slog.Logger) ([]planpdf.Option, error) {
	opts := []planpdf.Option{
		planpdf.WithTitle(c.DocumentTitle),
		planpdf.WithTheme(c.Theme),
		planpdf.WithPageSize(c.PageSize),
	}
	if logger != nil {
		opts = append(opts, planpdf.WithLogger(logger))
	}
	if c.Brand.Logo != "" {
		data, err := os.ReadFile(c.Brand.Logo)
		if err != nil {
			return nil, fmt.Errorf("config: logo: %w", err)
		}
		opts = append(opts, planpdf.WithLogo(bytes.NewReader(data)))
	}
	if c.Brand.Letterhead != "" {
		if _, err := os.Stat(c.Brand.Letterhead); err != nil {
			return nil, fmt.Errorf("config: letterhead: %w", err)
		}
		opts = append(opts, planpdf.WithLetterhead(c.Brand.Letterhead))
	}
	if c.Brand.QRPayload != "" {
		opts = append(opts, planpdf.WithQRCode(c.Brand.QRPayload))
	}
	if c.Watermark != "" {
		opts = append(opts, planpdf.WithWatermark(c.Watermark))
	}
	return opts, nil
}
