// Package manifest defines the component and token manifest documents and
// assembles, writes, and reloads them.
package manifest

// Output file names under the output directory.
const (
	ComponentManifestFile = "manifest.json"
	TokensManifestFile    = "tokens.json"
)

// TokenType is the semantic class of a design token.
type TokenType string

const (
	TokenColor      TokenType = "color"
	TokenSpacing    TokenType = "spacing"
	TokenRadius     TokenType = "radius"
	TokenTypography TokenType = "typography"
	TokenShadow     TokenType = "shadow"
	TokenOther      TokenType = "other"
)

// Token is one stylesheet custom property.
type Token struct {
	// Name is the property name without the leading "--".
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Type  TokenType `json:"type"`
	// CSSVar is the var() reference to Name, e.g. "var(--primary)".
	CSSVar string `json:"cssVar,omitempty"`
}

// ComponentMetadata describes one accepted root component.
type ComponentMetadata struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Path        string   `json:"path"`
	HasVariants bool     `json:"hasVariants"`
	HasTests    bool     `json:"hasTests"`
	HasStories  bool     `json:"hasStories"`
	HasReadme   bool     `json:"hasReadme"`
	Exports     []string `json:"exports"`
}

// ComponentManifest is the document written to manifest.json.
type ComponentManifest struct {
	Name            string              `json:"name"`
	Version         string              `json:"version"`
	Description     string              `json:"description"`
	GeneratedAt     string              `json:"generatedAt"`
	TotalComponents int                 `json:"totalComponents"`
	Components      []ComponentMetadata `json:"components"`
}

// TokenBuckets groups tokens for the tokens.json document. Shadow tokens
// have no bucket of their own and land in Other.
type TokenBuckets struct {
	Colors     []Token `json:"colors"`
	Spacing    []Token `json:"spacing"`
	Radius     []Token `json:"radius"`
	Typography []Token `json:"typography"`
	Other      []Token `json:"other"`
}

// Len returns the total number of tokens across all buckets.
func (b TokenBuckets) Len() int {
	return len(b.Colors) + len(b.Spacing) + len(b.Radius) + len(b.Typography) + len(b.Other)
}

// TokensManifest is the document written to tokens.json.
type TokensManifest struct {
	GeneratedAt string       `json:"generatedAt"`
	Version     string       `json:"version"`
	Tokens      TokenBuckets `json:"tokens"`
	TotalTokens int          `json:"totalTokens"`
}

// PackageMeta is the subset of package.json copied into the manifest header.
type PackageMeta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}
