package mcp

import (
	"context"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"github.com/lvillar/planpdf/content"
	"github.com/lvillar/planpdf/layout"
)

const (
	themeURI      = "planpdf://theme/default"
	vocabularyURI = "planpdf://tags"
)

// registerResources adds the read-only reference documents: the default
// theme as YAML and the explicit tag vocabulary.
func registerResources(srv *gomcp.Server) {
	srv.AddResource(&gomcp.Resource{
		URI:         themeURI,
		Name:        "Default theme",
		Description: "The default page geometry, colors and section titles, in the YAML form accepted under the theme key of the configuration file.",
		MIMEType:    "application/yaml",
	}, handleTheme)

	srv.AddResource(&gomcp.Resource{
		URI:         vocabularyURI,
		Name:        "Plan tag vocabulary",
		Description: "Values accepted in the data-plan-tag attribute of plan markup.",
		MIMEType:    "text/plain",
	}, handleVocabulary)
}

func handleTheme(_ context.Context, req *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
	data, err := yaml.Marshal(layout.DefaultTheme())
	if err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	return &gomcp.ReadResourceResult{Contents: []*gomcp.ResourceContents{{
		URI:      req.Params.URI,
		MIMEType: "application/yaml",
		Text:     string(data),
	}}}, nil
}

func handleVocabulary(_ context.Context, req *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s vocabulary %s\n", content.TagAttr, content.VocabularyVersion)
	for _, t := range content.Tags() {
		fmt.Fprintf(&b, "%s\t%s:%s\n", t, content.VocabularyVersion, t)
	}
	return &gomcp.ReadResourceResult{Contents: []*gomcp.ResourceContents{{
		URI:      req.Params.URI,
		MIMEType: "text/plain",
		Text:     b.String(),
	}}}, nil
}
