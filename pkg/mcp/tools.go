package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
)

// Tool names exposed by the server.
const (
	ToolListComponents = "list_components"
	ToolGetComponent   = "get_component"
	ToolGetTokens      = "get_tokens"
	ToolGetStats       = "get_stats"
)

func categoryNames() []string {
	known := catalog.KnownCategories()
	names := make([]string, len(known))
	for i, c := range known {
		names[i] = string(c)
	}
	return names
}

func listComponentsTool() mcp.Tool {
	return mcp.NewTool(ToolListComponents,
		mcp.WithDescription("List published components from manifest.json with their capability flags and exports. Filter by category and/or a case-insensitive keyword matched against names and exports."),
		mcp.WithString("category",
			mcp.Description("Only components in this category"),
			mcp.Enum(categoryNames()...)),
		mcp.WithString("keyword",
			mcp.Description("Substring matched against component names and exported symbols")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func getComponentTool() mcp.Tool {
	return mcp.NewTool(ToolGetComponent,
		mcp.WithDescription("Get one component's manifest entry. Accepts a component name or any symbol it exports (e.g. buttonVariants resolves to Button)."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name or exported symbol")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func getTokensTool() mcp.Tool {
	return mcp.NewTool(ToolGetTokens,
		mcp.WithDescription("List design tokens from tokens.json with their values and var() references, optionally filtered by type."),
		mcp.WithString("type",
			mcp.Description("Only tokens of this type"),
			mcp.Enum(
				string(manifest.TokenColor),
				string(manifest.TokenSpacing),
				string(manifest.TokenRadius),
				string(manifest.TokenTypography),
				string(manifest.TokenShadow),
				string(manifest.TokenOther),
			)),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func getStatsTool() mcp.Tool {
	return mcp.NewTool(ToolGetStats,
		mcp.WithDescription("Summary counts for both manifests: components per category, test/story/readme coverage and completeness, tokens per bucket and type."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
}
