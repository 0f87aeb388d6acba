package manifest

import (
	"time"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t the way generatedAt is written.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// BuildComponentManifest assembles manifest.json. TotalComponents is always
// derived from the component list.
func BuildComponentManifest(meta PackageMeta, components []ComponentMetadata, now time.Time) *ComponentManifest {
	if components == nil {
		components = []ComponentMetadata{}
	}
	for i := range components {
		if components[i].Exports == nil {
			components[i].Exports = []string{}
		}
	}

	return &ComponentManifest{
		Name:            meta.Name,
		Version:         meta.Version,
		Description:     meta.Description,
		GeneratedAt:     FormatTimestamp(now),
		TotalComponents: len(components),
		Components:      components,
	}
}

// BuildTokensManifest buckets tokens by type and assembles tokens.json.
// Token order inside each bucket follows declaration order.
func BuildTokensManifest(version string, tokens []Token, now time.Time) *TokensManifest {
	buckets := Bucket(tokens)
	return &TokensManifest{
		GeneratedAt: FormatTimestamp(now),
		Version:     version,
		Tokens:      buckets,
		TotalTokens: buckets.Len(),
	}
}

// Bucket splits tokens into the five manifest buckets. Every bucket is
// non-nil so it serializes as [] rather than null.
func Bucket(tokens []Token) TokenBuckets {
	b := TokenBuckets{
		Colors:     []Token{},
		Spacing:    []Token{},
		Radius:     []Token{},
		Typography: []Token{},
		Other:      []Token{},
	}
	for _, tok := range tokens {
		switch tok.Type {
		case TokenColor:
			b.Colors = append(b.Colors, tok)
		case TokenSpacing:
			b.Spacing = append(b.Spacing, tok)
		case TokenRadius:
			b.Radius = append(b.Radius, tok)
		case TokenTypography:
			b.Typography = append(b.Typography, tok)
		default:
			b.Other = append(b.Other, tok)
		}
	}
	return b
}
