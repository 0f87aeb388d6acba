package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware returns a ToolHandlerMiddleware that records every tool
// call as a JSONL entry via the server's call log. Only installed when the
// call log is non-nil.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := s.calls.Now()
			result, err := next(ctx, req)

			if logErr := s.calls.Record(req.Params.Name, req.GetArguments(), start, result, err); logErr != nil {
				s.log.Debug("failed to write call log", "tool", req.Params.Name, "error", logErr)
			}

			return result, err
		}
	}
}
