// Package mcp serves the generated manifests to MCP clients over stdio.
// All tools are read-only.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/mcplog"
)

// Server exposes manifest query tools.
type Server struct {
	mcpServer *server.MCPServer
	query     *manifest.QueryService
	calls     *mcplog.Logger // nil disables the call log
	log       *slog.Logger
}

// NewServer creates a server over qs. callLog may be nil.
func NewServer(qs *manifest.QueryService, version string, callLog *mcplog.Logger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{query: qs, calls: callLog, log: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if callLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("uimanifest", version, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: getComponentTool(), Handler: s.handleGetComponent},
		server.ServerTool{Tool: getTokensTool(), Handler: s.handleGetTokens},
		server.ServerTool{Tool: getStatsTool(), Handler: s.handleGetStats},
	)

	return s
}

// MCPServer returns the underlying server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Info("serving manifests over stdio",
		"components", len(s.query.ListComponents("", "")),
		"tokens", len(s.query.GetTokens("")))
	return server.ServeStdio(s.mcpServer)
}
