package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/generator"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the character catalog and the
// generator.
type Server struct {
	cat *catalog.Catalog
	sim *generator.Simulator
	mcp *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(cat *catalog.Catalog, sim *generator.Simulator) *Server {
	s := &Server{
		cat: cat,
		sim: sim,
	}

	s.mcp = server.NewMCPServer(
		"heroes",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listCharactersTool, s.handleListCharacters)
	s.mcp.AddTool(getCharacterTool, s.handleGetCharacter)
	s.mcp.AddTool(generateCharacterTool, s.handleGenerateCharacter)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
