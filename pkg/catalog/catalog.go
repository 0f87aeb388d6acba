package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/gnana997/uimanifest/catalogs"
)

// Catalog is the hand-maintained description of a component library: which
// directories belong to which category, which names are publishable roots,
// and which names are compound sub-parts.
type Catalog struct {
	Categories []CategoryEntry `yaml:"categories"`

	// Roots is the allow-list of top-level component names.
	Roots []string `yaml:"roots"`

	// SubPartPatterns are glob patterns (e.g. "*Content") matching compound
	// sub-part names such as DialogContent or TabsTrigger.
	SubPartPatterns []string `yaml:"subpart_patterns"`

	// SubPartExceptions are names that match a sub-part pattern but are
	// themselves roots (e.g. "Label", "RadioGroup").
	SubPartExceptions []string `yaml:"subpart_exceptions"`

	Tokens TokenRules `yaml:"tokens"`

	index *catalogIndex
}

// catalogIndex provides O(1) membership checks. Built by BuildIndex.
type catalogIndex struct {
	roots      map[string]bool
	exceptions map[string]bool
}

// Validate checks the catalog for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (c *Catalog) Validate() []error {
	var errs []error

	if len(c.Categories) == 0 {
		errs = append(errs, fmt.Errorf("catalog must declare at least one category"))
	}

	seenCategory := make(map[Category]bool, len(c.Categories))
	seenName := make(map[string]Category)
	for i, entry := range c.Categories {
		if !entry.Name.IsKnown() {
			errs = append(errs, fmt.Errorf("categories[%d]: unknown category %q", i, entry.Name))
			continue
		}
		if seenCategory[entry.Name] {
			errs = append(errs, fmt.Errorf("categories[%d]: duplicate category %q", i, entry.Name))
			continue
		}
		seenCategory[entry.Name] = true

		for j, name := range entry.Components {
			if name == "" {
				errs = append(errs, fmt.Errorf("category %q components[%d]: name is required", entry.Name, j))
				continue
			}
			if prev, ok := seenName[name]; ok {
				errs = append(errs, fmt.Errorf("category %q: component %q already declared under %q", entry.Name, name, prev))
				continue
			}
			seenName[name] = entry.Name
		}
	}

	for _, pattern := range c.SubPartPatterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid sub-part pattern: %s", pattern))
		}
	}

	// Every root must be reachable through some category, otherwise it can
	// never appear in the manifest.
	for _, root := range c.Roots {
		if _, ok := seenName[root]; !ok {
			errs = append(errs, fmt.Errorf("root %q is not declared in any category", root))
		}
	}

	return errs
}

// BuildIndex creates lookup maps for fast access.
// Should be called after Validate() passes.
func (c *Catalog) BuildIndex() {
	idx := &catalogIndex{
		roots:      make(map[string]bool, len(c.Roots)),
		exceptions: make(map[string]bool, len(c.SubPartExceptions)),
	}
	for _, r := range c.Roots {
		idx.roots[r] = true
	}
	for _, e := range c.SubPartExceptions {
		idx.exceptions[e] = true
	}
	c.index = idx
}

func (c *Catalog) idx() *catalogIndex {
	if c.index == nil {
		c.BuildIndex()
	}
	return c.index
}

// IsRoot reports whether name is on the root allow-list.
func (c *Catalog) IsRoot(name string) bool {
	return c.idx().roots[name]
}

// IsSubPart reports whether name looks like a compound sub-part.
// Names on the exception list never count as sub-parts.
func (c *Catalog) IsSubPart(name string) bool {
	if c.idx().exceptions[name] {
		return false
	}
	for _, pattern := range c.SubPartPatterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Accept applies the two-stage filter: sub-part exclusion first, then the
// root allow-list.
func (c *Catalog) Accept(name string) (bool, Rejection) {
	if c.IsSubPart(name) {
		return false, RejectSubPart
	}
	if !c.IsRoot(name) {
		return false, RejectNotRoot
	}
	return true, RejectNone
}

// Size returns the number of (category, name) pairs in the catalog.
func (c *Catalog) Size() int {
	n := 0
	for _, entry := range c.Categories {
		n += len(entry.Components)
	}
	return n
}

// LoadFromFile loads a catalog from a YAML file, validates it, and builds the index.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a catalog from raw YAML bytes, validates it, and builds the index.
func LoadFromBytes(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if cat.Tokens.isZero() {
		cat.Tokens = DefaultTokenRules()
	}

	if errs := cat.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}

	cat.BuildIndex()
	return &cat, nil
}

// LoadDefault returns the catalog bundled with the binary.
func LoadDefault() (*Catalog, error) {
	return LoadFromBytes(catalogs.DefaultYAML)
}
