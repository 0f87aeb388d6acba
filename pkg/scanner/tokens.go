package scanner

import (
	"strings"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
)

// ExtractTokens scans stylesheet text line by line and returns one token per
// custom-property declaration, in source order. Duplicate names yield
// duplicate tokens. Declarations without a terminating ";" on the same line,
// or with an empty value, produce nothing.
//
// Selectors are ignored: a property redeclared under .dark is reported a
// second time with its dark value. Line length is unbounded, so a minified
// stylesheet on a single line is read in full.
func ExtractTokens(src string, rules catalog.TokenRules) []manifest.Token {
	tokens := []manifest.Token{}

	for line := range strings.Lines(src) {
		line = strings.TrimRight(line, "\r\n")
		for _, m := range CustomPropertyPattern.FindAllStringSubmatch(line, -1) {
			name, value := m[1], strings.TrimSpace(m[2])
			if value == "" {
				continue
			}
			tokens = append(tokens, manifest.Token{
				Name:   name,
				Value:  value,
				Type:   ClassifyToken(name, rules),
				CSSVar: manifest.CSSVar(name),
			})
		}
	}

	return tokens
}

// ClassifyToken assigns a semantic type from name keywords. The first group
// that matches wins: color, radius, typography, shadow, spacing. So
// "border-radius" is a color (border) and "font-shadow" is typography.
// Matching is case-insensitive substring containment.
func ClassifyToken(name string, rules catalog.TokenRules) manifest.TokenType {
	lower := strings.ToLower(name)

	groups := []struct {
		keywords []string
		typ      manifest.TokenType
	}{
		{rules.Color, manifest.TokenColor},
		{rules.Radius, manifest.TokenRadius},
		{rules.Typography, manifest.TokenTypography},
		{rules.Shadow, manifest.TokenShadow},
		{rules.Spacing, manifest.TokenSpacing},
	}
	for _, g := range groups {
		for _, kw := range g.keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return g.typ
			}
		}
	}

	return manifest.TokenOther
}
