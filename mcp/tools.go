package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/content"
	"github.com/lvillar/planpdf/stats"
)

type handlers struct {
	cfg Config
}

type endpoint func(ctx context.Context, args json.RawMessage) (any, error)

func (h *handlers) registerTools(srv *gomcp.Server) {
	addTool(srv, &gomcp.Tool{
		Name:        "render_plan_pdf",
		Description: "Render a generated fitness plan (HTML) into a paginated PDF. Returns the page count and either the saved path or the PDF as base64.",
		InputSchema: inputSchema(planProperties(map[string]any{
			"filename": prop("string", "Optional file name. When set and the server has an output directory, the PDF is saved there instead of returned inline."),
		}), []string{"html"}),
	}, h.renderPlan)

	addTool(srv, &gomcp.Tool{
		Name:        "preview_plan",
		Description: "Lay out a generated fitness plan without producing a PDF and return the text of every page with its vertical position.",
		InputSchema: inputSchema(planProperties(nil), []string{"html"}),
	}, h.previewPlan)

	addTool(srv, &gomcp.Tool{
		Name:        "compute_stats",
		Description: "Compute BMI, BMI category, focus and recommended plan type from height, weight, goal and activity level.",
		InputSchema: inputSchema(map[string]any{
			"height_cm": prop("number", "Height in centimetres"),
			"weight_kg": prop("number", "Weight in kilograms"),
			"goal":      prop("string", "Fitness goal, e.g. Muscle Gain"),
			"activity":  prop("string", "Activity level, e.g. Moderately Active"),
		}, []string{"height_cm", "weight_kg"}),
	}, h.computeStats)

	addTool(srv, &gomcp.Tool{
		Name:        "verify_pdf",
		Description: "Validate a PDF file and report its page count.",
		InputSchema: inputSchema(map[string]any{
			"path": prop("string", "Path of the PDF file"),
		}, []string{"path"}),
	}, h.verifyPDF)
}

// addTool registers fn as a tool whose JSON result is returned as text.
// Failures become tool errors rather than protocol errors.
func addTool(srv *gomcp.Server, tool *gomcp.Tool, fn endpoint) {
	srv.AddTool(tool, func(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		out, err := fn(ctx, req.Params.Arguments)
		if err == nil {
			var data []byte
			if data, err = json.Marshal(out); err == nil {
				return &gomcp.CallToolResult{
					Content: []gomcp.Content{&gomcp.TextContent{Text: string(data)}},
				}, nil
			}
		}
		var res gomcp.CallToolResult
		res.SetError(err)
		return &res, nil
	})
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func planProperties(extra map[string]any) map[string]any {
	props := map[string]any{
		"html":         prop("string", "Plan markup as produced by the plan generator"),
		"bmi":          prop("string", "BMI shown in the stats box"),
		"category":     prop("string", "BMI category"),
		"focus":        prop("string", "Plan focus, e.g. Muscle Gain Focus"),
		"strategy":     prop("string", "Recommended plan type"),
		"product_name": prop("string", "Product name used in the footer"),
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

type planArgs struct {
	HTML        string `json:"html"`
	BMI         string `json:"bmi"`
	Category    string `json:"category"`
	Focus       string `json:"focus"`
	Strategy    string `json:"strategy"`
	ProductName string `json:"product_name"`
	Filename    string `json:"filename"`
}

func (a planArgs) summary() stats.Summary {
	return stats.Summary{BMI: a.BMI, Category: a.Category, Focus: a.Focus, Strategy: a.Strategy}
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("missing arguments")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (h *handlers) document(raw json.RawMessage) (planArgs, *content.Document, []planpdf.Option, error) {
	var args planArgs
	if err := decode(raw, &args); err != nil {
		return args, nil, nil, err
	}
	if strings.TrimSpace(args.HTML) == "" {
		return args, nil, nil, errors.New("html is required")
	}
	doc, err := content.ParseString(args.HTML)
	if err != nil {
		return args, nil, nil, err
	}
	var opts []planpdf.Option
	if h.cfg.RenderOptions != nil {
		if opts, err = h.cfg.RenderOptions(); err != nil {
			return args, nil, nil, err
		}
	}
	opts = append(opts, planpdf.WithLogger(h.cfg.Logger))
	if args.ProductName == "" {
		args.ProductName = h.cfg.ProductName
	}
	return args, doc, opts, nil
}

type renderResult struct {
	ID        string `json:"id"`
	Pages     int    `json:"pages"`
	Size      int    `json:"size"`
	Path      string `json:"path,omitempty"`
	PDFBase64 string `json:"pdf_base64,omitempty"`
}

func (h *handlers) renderPlan(ctx context.Context, raw json.RawMessage) (any, error) {
	args, doc, opts, err := h.document(raw)
	if err != nil {
		return nil, err
	}
	art, err := planpdf.Render(doc, args.summary(), args.ProductName, opts...)
	if err != nil {
		return nil, err
	}
	h.cfg.Logger.Info("plan rendered", "id", art.ID(), "pages", art.PageCount())

	if h.cfg.Archive != nil {
		if err := art.Save(ctx, h.cfg.Archive, args.Filename); err != nil {
			return nil, err
		}
	}

	res := renderResult{ID: art.ID(), Pages: art.PageCount(), Size: art.Len()}
	if args.Filename != "" && h.cfg.OutputDir != "" {
		if err := art.Save(ctx, planpdf.FileExporter{Dir: h.cfg.OutputDir}, args.Filename); err != nil {
			return nil, err
		}
		res.Path = filepath.Join(h.cfg.OutputDir, filepath.Base(args.Filename))
		return res, nil
	}
	res.PDFBase64 = base64.StdEncoding.EncodeToString(art.Bytes())
	return res, nil
}

type previewResult struct {
	Pages      int    `json:"pages"`
	Transcript string `json:"transcript"`
}

func (h *handlers) previewPlan(_ context.Context, raw json.RawMessage) (any, error) {
	args, doc, opts, err := h.document(raw)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	pages, err := planpdf.Preview(&b, doc, args.summary(), args.ProductName, opts...)
	if err != nil {
		return nil, err
	}
	return previewResult{Pages: pages, Transcript: b.String()}, nil
}

type statsArgs struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	Goal     string  `json:"goal"`
	Activity string  `json:"activity"`
}

type statsResult struct {
	stats.Summary
	Line string `json:"line"`
}

func (h *handlers) computeStats(_ context.Context, raw json.RawMessage) (any, error) {
	var args statsArgs
	if err := decode(raw, &args); err != nil {
		return nil, err
	}
	sum := stats.Compute(stats.Profile{
		HeightCM: args.HeightCM,
		WeightKG: args.WeightKG,
		Goal:     args.Goal,
		Activity: args.Activity,
	})
	return statsResult{Summary: sum, Line: sum.Line()}, nil
}

func (h *handlers) verifyPDF(_ context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Path string `json:"path"`
	}
	if err := decode(raw, &args); err != nil {
		return nil, err
	}
	if args.Path == "" {
		return nil, errors.New("path is required")
	}
	data, err := os.ReadFile(args.Path)
	if err != nil {
		return nil, err
	}
	pages, err := planpdf.Verify(data)
	if err != nil {
		return nil, err
	}
	return map[string]any{"path": args.Path, "pages": pages, "size": len(data)}, nil
}
