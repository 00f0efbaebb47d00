// Package mcp exposes plan rendering to AI assistants as Model Context
// Protocol tools and resources.
//
// # Usage with Claude Desktop
//
// Add to your claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "planpdf": {
//	      "command": "planpdf-mcp",
//	      "args": ["-out", "/home/me/plans"]
//	    }
//	  }
//	}
package mcp

import (
	"context"
	"log/slog"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lvillar/planpdf"
)

// ServerName is reported to clients during initialization.
const ServerName = "planpdf-mcp"

// Version is the server version reported to clients.
const Version = "0.1.0"

// Config controls what the tools render and where they write.
type Config struct {
	// ProductName is used when a call does not name a product.
	ProductName string
	// RenderOptions is called once per render to build fresh options.
	RenderOptions func() ([]planpdf.Option, error)
	// OutputDir receives files saved by render_plan_pdf. When empty,
	// documents are only returned inline.
	OutputDir string
	// Archive, when set, also receives every rendered document.
	Archive planpdf.Exporter
	Logger  *slog.Logger
}

// NewServer returns an MCP server with every plan tool and resource
// registered.
func NewServer(cfg Config) *gomcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ProductName == "" {
		cfg.ProductName = planpdf.DefaultProductName
	}
	srv := gomcp.NewServer(&gomcp.Implementation{Name: ServerName, Version: Version}, nil)
	h := &handlers{cfg: cfg}
	h.registerTools(srv)
	registerResources(srv)
	return srv
}

// Run serves srv over stdin and stdout until ctx is done or the client
// disconnects.
func Run(ctx context.Context, srv *gomcp.Server) error {
	return srv.Run(ctx, &gomcp.StdioTransport{})
}
