package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gnana997/uimanifest/pkg/catalog"
)

// Validate checks manifest.json invariants.
// Returns a slice of validation errors (empty slice if valid).
func (m *ComponentManifest) Validate() []error {
	var errs []error

	if m.Name == "" {
		errs = append(errs, fmt.Errorf("manifest name is required"))
	}
	if m.Version == "" {
		errs = append(errs, fmt.Errorf("manifest version is required"))
	}
	if _, err := time.Parse(time.RFC3339, m.GeneratedAt); err != nil {
		errs = append(errs, fmt.Errorf("generatedAt %q is not an ISO-8601 timestamp", m.GeneratedAt))
	}
	if m.Components == nil {
		errs = append(errs, fmt.Errorf("components is required"))
	}
	if m.TotalComponents != len(m.Components) {
		errs = append(errs, fmt.Errorf("totalComponents is %d but %d components are listed", m.TotalComponents, len(m.Components)))
	}

	seen := make(map[string]bool, len(m.Components))
	for i, c := range m.Components {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("components[%d]: name is required", i))
			continue
		}
		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("component %q: duplicate component name", c.Name))
		}
		seen[c.Name] = true

		switch {
		case c.Category == "":
			errs = append(errs, fmt.Errorf("component %q: category is required", c.Name))
		case !catalog.Category(c.Category).IsKnown():
			errs = append(errs, fmt.Errorf("component %q: unknown category %q", c.Name, c.Category))
		}
		if want := "./components/" + c.Name; c.Path != want {
			errs = append(errs, fmt.Errorf("component %q: path %q, want %q", c.Name, c.Path, want))
		}
		if c.Exports == nil {
			errs = append(errs, fmt.Errorf("component %q: exports is required", c.Name))
		}
	}

	return errs
}

// Validate checks tokens.json invariants.
func (m *TokensManifest) Validate() []error {
	var errs []error

	if m.Version == "" {
		errs = append(errs, fmt.Errorf("tokens version is required"))
	}
	if _, err := time.Parse(time.RFC3339, m.GeneratedAt); err != nil {
		errs = append(errs, fmt.Errorf("generatedAt %q is not an ISO-8601 timestamp", m.GeneratedAt))
	}

	b := m.Tokens
	if b.Colors == nil || b.Spacing == nil || b.Radius == nil || b.Typography == nil || b.Other == nil {
		errs = append(errs, fmt.Errorf("tokens must contain colors, spacing, radius, typography and other"))
	}
	if m.TotalTokens != b.Len() {
		errs = append(errs, fmt.Errorf("totalTokens is %d but buckets hold %d tokens", m.TotalTokens, b.Len()))
	}

	check := func(bucket string, tokens []Token, allowed ...TokenType) {
		for i, tok := range tokens {
			if tok.Name == "" || strings.HasPrefix(tok.Name, "--") {
				errs = append(errs, fmt.Errorf("tokens.%s[%d]: invalid name %q", bucket, i, tok.Name))
			}
			if tok.CSSVar != "" && tok.CSSVar != CSSVar(tok.Name) {
				errs = append(errs, fmt.Errorf("tokens.%s[%d]: cssVar %q does not reference %q", bucket, i, tok.CSSVar, tok.Name))
			}
			ok := false
			for _, a := range allowed {
				if tok.Type == a {
					ok = true
					break
				}
			}
			if !ok {
				errs = append(errs, fmt.Errorf("tokens.%s[%d]: type %q does not belong in this bucket", bucket, i, tok.Type))
			}
		}
	}
	check("colors", b.Colors, TokenColor)
	check("spacing", b.Spacing, TokenSpacing)
	check("radius", b.Radius, TokenRadius)
	check("typography", b.Typography, TokenTypography)
	check("other", b.Other, TokenShadow, TokenOther)

	return errs
}

// CSSVar returns the var() reference for a token name.
func CSSVar(name string) string {
	return "var(--" + name + ")"
}

// LoadComponentManifest reads and validates a manifest.json file.
func LoadComponentManifest(path string) (*ComponentManifest, error) {
	var m ComponentManifest
	if err := loadJSON(path, &m); err != nil {
		return nil, err
	}
	if errs := m.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("manifest validation failed: %w", errors.Join(errs...))
	}
	return &m, nil
}

// LoadTokensManifest reads and validates a tokens.json file.
func LoadTokensManifest(path string) (*TokensManifest, error) {
	var m TokensManifest
	if err := loadJSON(path, &m); err != nil {
		return nil, err
	}
	if errs := m.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("tokens validation failed: %w", errors.Join(errs...))
	}
	return &m, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
