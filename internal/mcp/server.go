package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the landing page generator as tools.
type Server struct {
	drafts  *drafts.Store
	history *history.Store
	opts    page.Options
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server. Both stores may be nil: without drafts
// the draft tools are not registered, without history nothing is logged.
func NewServer(d *drafts.Store, hist *history.Store, opts page.Options) *Server {
	s := &Server{
		drafts:  d,
		history: hist,
		opts:    opts,
	}

	s.mcp = server.NewMCPServer(
		"easylanding",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateLandingPageTool, s.handleGenerateLandingPage)
	s.mcp.AddTool(resolveStyleTool, s.handleResolveStyle)
	s.mcp.AddTool(listTemplatesTool, s.handleListTemplates)
	if s.drafts != nil {
		s.mcp.AddTool(listDraftsTool, s.handleListDrafts)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
