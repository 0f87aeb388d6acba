package catalog

// Category is one of the fixed component categories a catalog may declare.
type Category string

const (
	CategoryLayout     Category = "layout"
	CategoryForms      Category = "forms"
	CategoryDisplay    Category = "display"
	CategoryFeedback   Category = "feedback"
	CategoryOverlay    Category = "overlay"
	CategoryNavigation Category = "navigation"
	CategoryTheme      Category = "theme"
	CategoryIcons      Category = "icons"
)

// KnownCategories lists every valid category in canonical order.
func KnownCategories() []Category {
	return []Category{
		CategoryLayout,
		CategoryForms,
		CategoryDisplay,
		CategoryFeedback,
		CategoryOverlay,
		CategoryNavigation,
		CategoryTheme,
		CategoryIcons,
	}
}

// IsKnown reports whether c is one of the fixed categories.
func (c Category) IsKnown() bool {
	for _, k := range KnownCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// CategoryEntry lists the component directory names declared under one category.
// Order is significant: discovery preserves it.
type CategoryEntry struct {
	Name       Category `yaml:"name" json:"name"`
	Components []string `yaml:"components" json:"components"`
}

// TokenRules holds the name keywords used to classify stylesheet variables.
// Groups are checked in a fixed precedence: color, radius, typography,
// shadow, spacing. A name that matches nothing is "other".
type TokenRules struct {
	Color      []string `yaml:"color" json:"color"`
	Radius     []string `yaml:"radius" json:"radius"`
	Typography []string `yaml:"typography" json:"typography"`
	Shadow     []string `yaml:"shadow" json:"shadow"`
	// Spacing is empty by default, so the spacing bucket stays empty unless
	// a project opts in with its own keywords.
	Spacing []string `yaml:"spacing" json:"spacing"`
}

// DefaultTokenRules returns the stock keyword groups.
func DefaultTokenRules() TokenRules {
	return TokenRules{
		Color: []string{
			"color", "background", "foreground", "border", "primary",
			"secondary", "accent", "destructive", "muted", "card",
			"popover", "success", "warning", "error", "info",
		},
		Radius:     []string{"radius"},
		Typography: []string{"font", "line-height", "letter-spacing"},
		Shadow:     []string{"shadow"},
	}
}

func (r TokenRules) isZero() bool {
	return len(r.Color) == 0 && len(r.Radius) == 0 && len(r.Typography) == 0 &&
		len(r.Shadow) == 0 && len(r.Spacing) == 0
}

// Rejection explains why a catalog entry was not accepted as a root component.
type Rejection string

const (
	// RejectNone means the entry was accepted.
	RejectNone Rejection = ""
	// RejectSubPart means the name matches a compound sub-part pattern.
	RejectSubPart Rejection = "sub-part"
	// RejectNotRoot means the name is absent from the root allow-list.
	RejectNotRoot Rejection = "not-root"
)
