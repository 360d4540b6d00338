package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
)

// registerResources exposes each report of the server's spec as Markdown.
func registerResources(s *server.MCPServer, d Deps) {
	for _, kind := range domain.ValidDocumentKinds {
		uri := "transformspec://" + string(kind)
		s.AddResource(
			mcplib.NewResource(
				uri,
				kindTitle(kind),
				mcplib.WithResourceDescription(fmt.Sprintf("The %s report of the transformation spec as Markdown", kind)),
				mcplib.WithMIMEType("text/markdown"),
			),
			handleReportResource(d, kind, uri),
		)
	}
}

func handleReportResource(d Deps, kind domain.DocumentKind, uri string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		if d.SpecPath == "" {
			return nil, fmt.Errorf("no spec file configured")
		}
		spec, err := d.Specs.Load(d.SpecPath)
		if err != nil {
			return nil, err
		}
		a, err := d.Renders.Render(kind, application.FormatMarkdown, spec)
		if err != nil {
			return nil, fmt.Errorf("render failed: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     string(a.Data),
			},
		}, nil
	}
}

func kindTitle(kind domain.DocumentKind) string {
	if kind == domain.KindTechnical {
		return "Technical Details"
	}
	return "Requirements Specification"
}
