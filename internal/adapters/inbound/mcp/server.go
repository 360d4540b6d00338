// Package mcp exposes report rendering to AI coding assistants over the
// Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/transformspec/internal/application"
)

// Deps are the services behind the MCP tools. SpecPath is the spec file used
// when a tool call does not name one.
type Deps struct {
	Specs       *application.SpecService
	Renders     *application.RenderService
	SpecPath    string
	ArtifactDir string
}

// NewServer creates an MCP server with all transformspec tools and resources
// registered.
func NewServer(d Deps, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"transformspec",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, d)
	registerResources(s, d)

	return s
}
