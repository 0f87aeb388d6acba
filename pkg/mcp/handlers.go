package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/scanner"
)

type listComponentsResponse struct {
	Components []manifest.ComponentMetadata `json:"components"`
	Total      int                          `json:"total"`
}

type getTokensResponse struct {
	Tokens []manifest.Token `json:"tokens"`
	Total  int              `json:"total"`
}

type categoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type statsResponse struct {
	Package     string `json:"package"`
	Version     string `json:"version"`
	GeneratedAt string `json:"generatedAt"`
	Components  struct {
		Total        int             `json:"total"`
		WithTests    int             `json:"withTests"`
		WithStories  int             `json:"withStories"`
		WithReadme   int             `json:"withReadme"`
		WithVariants int             `json:"withVariants"`
		Completeness float64         `json:"completeness"`
		ByCategory   []categoryCount `json:"byCategory"`
	} `json:"components"`
	Tokens struct {
		Total   int            `json:"total"`
		Buckets map[string]int `json:"buckets"`
		ByType  map[string]int `json:"byType"`
	} `json:"tokens"`
}

func (s *Server) handleListComponents(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	category, err := parseStringArg(args, "category", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if category != "" && !catalog.Category(category).IsKnown() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", category)), nil
	}
	keyword, err := parseStringArg(args, "keyword", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comps := s.query.ListComponents(category, keyword)
	if comps == nil {
		comps = []manifest.ComponentMetadata{}
	}
	return jsonResult(listComponentsResponse{Components: comps, Total: len(comps)})
}

func (s *Server) handleGetComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := parseStringArg(req.GetArguments(), "name", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comp, ok := s.query.GetComponent(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("component %q not found", name)), nil
	}
	return jsonResult(comp)
}

func (s *Server) handleGetTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tokenType, err := parseStringArg(req.GetArguments(), "type", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if tokenType != "" && !isTokenType(tokenType) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown token type %q", tokenType)), nil
	}

	tokens := s.query.GetTokens(tokenType)
	return jsonResult(getTokensResponse{Tokens: tokens, Total: len(tokens)})
}

func (s *Server) handleGetStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var resp statsResponse

	if m := s.query.Components; m != nil {
		resp.Package = m.Name
		resp.Version = m.Version
		resp.GeneratedAt = m.GeneratedAt

		cs := scanner.ComputeComponentStats(m.Components)
		resp.Components.Total = cs.Total
		resp.Components.WithTests = cs.WithTests
		resp.Components.WithStories = cs.WithStories
		resp.Components.WithReadme = cs.WithReadme
		resp.Components.WithVariants = cs.WithVariants
		resp.Components.Completeness = cs.Completeness
		for _, c := range cs.ByCategory {
			resp.Components.ByCategory = append(resp.Components.ByCategory, categoryCount{Category: c.Category, Count: c.Count})
		}
	}
	if resp.Components.ByCategory == nil {
		resp.Components.ByCategory = []categoryCount{}
	}

	resp.Tokens.Buckets = map[string]int{}
	resp.Tokens.ByType = map[string]int{}
	if m := s.query.Tokens; m != nil {
		ts := scanner.ComputeTokenStats(m.Tokens)
		resp.Tokens.Total = ts.Total
		resp.Tokens.Buckets = map[string]int{
			"colors":     ts.Colors,
			"spacing":    ts.Spacing,
			"radius":     ts.Radius,
			"typography": ts.Typography,
			"other":      ts.Other,
		}
		for typ, n := range ts.ByType {
			resp.Tokens.ByType[string(typ)] = n
		}
	}

	return jsonResult(resp)
}

func isTokenType(s string) bool {
	switch manifest.TokenType(s) {
	case manifest.TokenColor, manifest.TokenSpacing, manifest.TokenRadius,
		manifest.TokenTypography, manifest.TokenShadow, manifest.TokenOther:
		return true
	}
	return false
}

// parseStringArg extracts a string argument from an MCP arguments map.
// Returns an error if the argument is required but missing or invalid.
func parseStringArg(args map[string]any, key string, required bool) (string, error) {
	val, ok := args[key]
	if !ok || val == nil {
		if required {
			return "", fmt.Errorf("%s parameter is required", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	if required && str == "" {
		return "", fmt.Errorf("%s cannot be empty", key)
	}
	return str, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
