package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func minimalValidCatalog() *Catalog {
	return &Catalog{
		Categories: []CategoryEntry{
			{Name: CategoryForms, Components: []string{"Button", "Label"}},
			{Name: CategoryOverlay, Components: []string{"Dialog", "DialogContent", "DialogTrigger"}},
		},
		Roots:             []string{"Button", "Label", "Dialog"},
		SubPartPatterns:   []string{"*Content", "*Trigger", "*Label"},
		SubPartExceptions: []string{"Label"},
		Tokens:            DefaultTokenRules(),
	}
}

// --- Validate ---

func TestValidate_ValidCatalog(t *testing.T) {
	errs := minimalValidCatalog().Validate()
	assert.Empty(t, errs)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:    "no categories",
			mutate:  func(c *Catalog) { c.Categories = nil; c.Roots = nil },
			wantErr: "at least one category",
		},
		{
			name: "unknown category",
			mutate: func(c *Catalog) {
				c.Categories = append(c.Categories, CategoryEntry{Name: "widgets", Components: []string{"Gizmo"}})
			},
			wantErr: `unknown category "widgets"`,
		},
		{
			name: "duplicate category",
			mutate: func(c *Catalog) {
				c.Categories = append(c.Categories, CategoryEntry{Name: CategoryForms})
			},
			wantErr: `duplicate category "forms"`,
		},
		{
			name: "component declared twice",
			mutate: func(c *Catalog) {
				c.Categories = append(c.Categories, CategoryEntry{Name: CategoryLayout, Components: []string{"Button"}})
			},
			wantErr: `component "Button" already declared under "forms"`,
		},
		{
			name: "empty component name",
			mutate: func(c *Catalog) {
				c.Categories[0].Components = append(c.Categories[0].Components, "")
			},
			wantErr: "name is required",
		},
		{
			name:    "invalid pattern",
			mutate:  func(c *Catalog) { c.SubPartPatterns = append(c.SubPartPatterns, "[invalid") },
			wantErr: "invalid sub-part pattern",
		},
		{
			name:    "orphan root",
			mutate:  func(c *Catalog) { c.Roots = append(c.Roots, "Carousel") },
			wantErr: `root "Carousel" is not declared in any category`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimalValidCatalog()
			tt.mutate(c)
			errs := c.Validate()
			require.NotEmpty(t, errs)

			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.wantErr, errs)
		})
	}
}

// --- Acceptance filter ---

func TestAccept(t *testing.T) {
	c := minimalValidCatalog()
	c.BuildIndex()

	tests := []struct {
		name      string
		accepted  bool
		rejection Rejection
	}{
		{"Dialog", true, RejectNone},
		{"DialogContent", false, RejectSubPart},
		{"DialogTrigger", false, RejectSubPart},
		{"Label", true, RejectNone},
		{"Button", true, RejectNone},
		{"Carousel", false, RejectNotRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, why := c.Accept(tt.name)
			assert.Equal(t, tt.accepted, ok)
			assert.Equal(t, tt.rejection, why)
		})
	}
}

func TestIsSubPart_ExceptionWins(t *testing.T) {
	c := minimalValidCatalog()
	assert.True(t, c.IsSubPart("FormLabel"))
	assert.False(t, c.IsSubPart("Label"), "exception list should override the *Label pattern")
}

func TestSize(t *testing.T) {
	assert.Equal(t, 5, minimalValidCatalog().Size())
}

// --- Loading ---

func TestLoadFromBytes_Valid(t *testing.T) {
	data := []byte(`
categories:
  - name: overlay
    components: [Dialog, DialogContent]
roots: [Dialog]
subpart_patterns: ["*Content"]
`)
	c, err := LoadFromBytes(data)
	require.NoError(t, err)

	require.Len(t, c.Categories, 1)
	assert.Equal(t, []string{"Dialog", "DialogContent"}, c.Categories[0].Components)
	assert.True(t, c.IsRoot("Dialog"))

	// Missing tokens section falls back to the stock rules.
	assert.Equal(t, DefaultTokenRules(), c.Tokens)
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("categories: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog YAML")
}

func TestLoadFromBytes_ValidationFails(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
categories:
  - name: gadgets
    components: [Thing]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed")
	assert.Contains(t, err.Error(), "gadgets")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: icons
    components: [Icon]
roots: [Icon]
`), 0644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, c.IsRoot("Icon"))
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	// Categories are declared in canonical order.
	var names []Category
	for _, entry := range c.Categories {
		names = append(names, entry.Name)
	}
	assert.Equal(t, KnownCategories(), names)

	ok, _ := c.Accept("Dialog")
	assert.True(t, ok)
	ok, why := c.Accept("DialogContent")
	assert.False(t, ok)
	assert.Equal(t, RejectSubPart, why)

	assert.Empty(t, c.Tokens.Spacing, "no spacing keywords are shipped by default")
}

func TestLoadDefault_Filter(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	tests := []struct {
		name      string
		accepted  bool
		rejection Rejection
	}{
		{"Dialog", true, RejectNone},
		{"Label", true, RejectNone},
		{"Separator", true, RejectNone},
		{"RadioGroup", true, RejectNone},
		{"ToggleGroup", true, RejectNone},
		{"DialogContent", false, RejectSubPart},
		{"FormLabel", false, RejectSubPart},
		{"AccordionItem", false, RejectSubPart},
		{"SelectTrigger", false, RejectSubPart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, why := c.Accept(tt.name)
			assert.Equal(t, tt.accepted, ok)
			assert.Equal(t, tt.rejection, why)
		})
	}
}

func TestLoadDefault_EveryRootAccepted(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)
	require.NotEmpty(t, c.Roots)

	for _, root := range c.Roots {
		ok, why := c.Accept(root)
		assert.True(t, ok, "root %s rejected: %v", root, why)
	}
}
