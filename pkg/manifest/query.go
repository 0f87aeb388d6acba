package manifest

import (
	"path/filepath"
	"strings"
)

// QueryService provides read-only query methods over a loaded pair of manifests.
type QueryService struct {
	Components *ComponentManifest
	Tokens     *TokensManifest

	byName     map[string]*ComponentMetadata
	byCategory map[string][]*ComponentMetadata
	byExport   map[string]*ComponentMetadata
}

// NewQueryService indexes the given manifests. Either may be nil.
func NewQueryService(components *ComponentManifest, tokens *TokensManifest) *QueryService {
	q := &QueryService{
		Components: components,
		Tokens:     tokens,
		byName:     make(map[string]*ComponentMetadata),
		byCategory: make(map[string][]*ComponentMetadata),
		byExport:   make(map[string]*ComponentMetadata),
	}
	if components != nil {
		for i := range components.Components {
			c := &components.Components[i]
			q.byName[c.Name] = c
			q.byCategory[c.Category] = append(q.byCategory[c.Category], c)
			for _, e := range c.Exports {
				if _, taken := q.byExport[e]; !taken {
					q.byExport[e] = c
				}
			}
		}
	}
	return q
}

// LoadAndQuery loads manifest.json and tokens.json from dir and returns a
// ready-to-use QueryService.
func LoadAndQuery(dir string) (*QueryService, error) {
	comps, err := LoadComponentManifest(filepath.Join(dir, ComponentManifestFile))
	if err != nil {
		return nil, err
	}
	tokens, err := LoadTokensManifest(filepath.Join(dir, TokensManifestFile))
	if err != nil {
		return nil, err
	}
	return NewQueryService(comps, tokens), nil
}

// ListComponents returns components filtered by category and/or keyword.
// Both filters are optional (pass "" to skip). When both are provided, they combine with AND logic.
// The keyword matches case-insensitively against the component name and its exports.
func (q *QueryService) ListComponents(category, keyword string) []ComponentMetadata {
	var candidates []*ComponentMetadata

	if category != "" {
		candidates = q.byCategory[category]
	} else if q.Components != nil {
		candidates = make([]*ComponentMetadata, 0, len(q.Components.Components))
		for i := range q.Components.Components {
			candidates = append(candidates, &q.Components.Components[i])
		}
	}

	keyword = strings.ToLower(keyword)
	result := make([]ComponentMetadata, 0)

	for _, comp := range candidates {
		if keyword != "" && !matchesKeyword(comp, keyword) {
			continue
		}
		result = append(result, *comp)
	}

	return result
}

func matchesKeyword(comp *ComponentMetadata, keyword string) bool {
	if strings.Contains(strings.ToLower(comp.Name), keyword) {
		return true
	}
	for _, e := range comp.Exports {
		if strings.Contains(strings.ToLower(e), keyword) {
			return true
		}
	}
	return false
}

// GetComponent looks up a component by name. It first checks component
// names, then falls back to exported symbols (e.g. "ButtonProps" resolves
// to Button). The bool indicates whether the component was found.
func (q *QueryService) GetComponent(name string) (*ComponentMetadata, bool) {
	if comp, ok := q.byName[name]; ok {
		return comp, true
	}
	if comp, ok := q.byExport[name]; ok {
		return comp, true
	}
	return nil, false
}

// GetTokens returns design tokens in bucket order, optionally filtered by type.
// Pass "" to return all tokens.
func (q *QueryService) GetTokens(tokenType string) []Token {
	result := make([]Token, 0)
	if q.Tokens == nil {
		return result
	}
	b := q.Tokens.Tokens
	for _, bucket := range [][]Token{b.Colors, b.Spacing, b.Radius, b.Typography, b.Other} {
		for _, t := range bucket {
			if tokenType == "" || string(t.Type) == tokenType {
				result = append(result, t)
			}
		}
	}
	return result
}
