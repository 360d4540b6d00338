package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
)

// registerTools registers all transformspec MCP tools on the given server.
func registerTools(s *server.MCPServer, d Deps) {
	specArg := mcplib.WithString("spec", mcplib.Description("Path to the spec file (defaults to the server's spec)"))
	kindArg := mcplib.WithString("kind",
		mcplib.Required(),
		mcplib.Enum(string(domain.KindRequirements), string(domain.KindTechnical)),
		mcplib.Description("Report to render: requirements or technical"),
	)

	// 1. transformspec_render_markdown
	s.AddTool(
		mcplib.NewTool("transformspec_render_markdown",
			mcplib.WithDescription("Renders a report of the transformation spec as Markdown"),
			kindArg, specArg,
		),
		handleRenderMarkdown(d),
	)

	// 2. transformspec_render_pdf
	s.AddTool(
		mcplib.NewTool("transformspec_render_pdf",
			mcplib.WithDescription("Renders a report as a paginated A4 PDF. Writes it to output when given, otherwise returns a data URI"),
			kindArg, specArg,
			mcplib.WithString("output", mcplib.Description("File to write the PDF to")),
		),
		handleRenderPDF(d),
	)

	// 3. transformspec_instructions
	s.AddTool(
		mcplib.NewTool("transformspec_instructions",
			mcplib.WithDescription("Returns the code-generation instructions that reference the exported reports"),
			specArg,
			mcplib.WithString("dir", mcplib.Description("Artifact directory used in file references (default .kiro)")),
		),
		handleInstructions(d),
	)

	// 4. transformspec_validate
	s.AddTool(
		mcplib.NewTool("transformspec_validate",
			mcplib.WithDescription("Checks the spec's required fields and value ranges"),
			specArg,
		),
		handleValidate(d),
	)

	// 5. transformspec_outline
	s.AddTool(
		mcplib.NewTool("transformspec_outline",
			mcplib.WithDescription("Returns the numbered section and subsection headings of a report as JSON"),
			kindArg, specArg,
		),
		handleOutline(d),
	)
}

// loadSpec reads the spec named by the request or the server default.
func loadSpec(d Deps, request mcplib.CallToolRequest) (*domain.TransformationSpec, error) {
	path := request.GetString("spec", d.SpecPath)
	if path == "" {
		return nil, fmt.Errorf("no spec file given")
	}
	return d.Specs.Load(path)
}

func requireKind(request mcplib.CallToolRequest) (domain.DocumentKind, error) {
	name, err := request.RequireString("kind")
	if err != nil {
		return "", err
	}
	return application.ParseKind(name)
}

func handleRenderMarkdown(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, err := requireKind(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		spec, err := loadSpec(d, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		a, err := d.Renders.Render(kind, application.FormatMarkdown, spec)
		if err != nil {
			return errorResult(fmt.Sprintf("render failed: %v", err)), nil
		}
		return textResult(string(a.Data)), nil
	}
}

type pdfResult struct {
	Name    string `json:"name"`
	Pages   int    `json:"pages"`
	Bytes   int    `json:"bytes"`
	Path    string `json:"path,omitempty"`
	DataURI string `json:"data_uri,omitempty"`
}

func handleRenderPDF(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, err := requireKind(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		spec, err := loadSpec(d, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		a, err := d.Renders.Render(kind, application.FormatPDF, spec)
		if err != nil {
			return errorResult(fmt.Sprintf("render failed: %v", err)), nil
		}

		res := pdfResult{Name: a.Name, Pages: a.Pages, Bytes: len(a.Data)}
		if out := request.GetString("output", ""); out != "" {
			if err := os.WriteFile(out, a.Data, 0644); err != nil {
				return errorResult(fmt.Sprintf("writing %s: %v", out, err)), nil
			}
			res.Path = out
		} else {
			res.DataURI = dataURI(a)
		}
		return jsonResult(res)
	}
}

func handleInstructions(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		spec, err := loadSpec(d, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		dir := request.GetString("dir", d.ArtifactDir)
		payload, err := d.Renders.Instructions(spec, domain.DefaultArtifactNames(dir))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(payload), nil
	}
}

type validateResult struct {
	Valid  bool                     `json:"valid"`
	Issues []domain.ValidationIssue `json:"issues"`
}

func handleValidate(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		spec, err := loadSpec(d, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		issues := d.Specs.Validate(spec)
		if issues == nil {
			issues = []domain.ValidationIssue{}
		}
		return jsonResult(validateResult{Valid: len(issues) == 0, Issues: issues})
	}
}

type outlineResult struct {
	Title    string   `json:"title"`
	Headings []string `json:"headings"`
	Footer   string   `json:"footer"`
}

func handleOutline(d Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, err := requireKind(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		spec, err := loadSpec(d, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		doc, err := d.Renders.Compose(kind, spec)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(outlineResult{Title: doc.Title, Headings: doc.Headings(), Footer: doc.FooterText()})
	}
}

func dataURI(a *application.Artifact) string {
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
