package scanner

import (
	"github.com/gnana997/uimanifest/pkg/manifest"
)

// CategoryCount is the number of accepted components in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// ComponentStats summarizes a component manifest.
type ComponentStats struct {
	Total        int
	WithTests    int
	WithStories  int
	WithReadme   int
	WithVariants int
	// ByCategory lists categories in first-seen order.
	ByCategory []CategoryCount
	// Completeness is (tests + stories + readme) / (total * 3) * 100,
	// or 0 when there are no components.
	Completeness float64
}

// ComputeComponentStats counts flags across components.
func ComputeComponentStats(components []manifest.ComponentMetadata) ComponentStats {
	stats := ComponentStats{Total: len(components)}
	index := make(map[string]int)

	for _, c := range components {
		if c.HasTests {
			stats.WithTests++
		}
		if c.HasStories {
			stats.WithStories++
		}
		if c.HasReadme {
			stats.WithReadme++
		}
		if c.HasVariants {
			stats.WithVariants++
		}

		i, ok := index[c.Category]
		if !ok {
			i = len(stats.ByCategory)
			index[c.Category] = i
			stats.ByCategory = append(stats.ByCategory, CategoryCount{Category: c.Category})
		}
		stats.ByCategory[i].Count++
	}

	if stats.Total > 0 {
		covered := stats.WithTests + stats.WithStories + stats.WithReadme
		stats.Completeness = float64(covered) / float64(stats.Total*3) * 100
	}

	return stats
}

// TokenStats summarizes a tokens manifest.
type TokenStats struct {
	Total      int
	Colors     int
	Spacing    int
	Radius     int
	Typography int
	Other      int
	// ByType counts token types; shadow is reported here even though shadow
	// tokens share the other bucket.
	ByType map[manifest.TokenType]int
}

// ComputeTokenStats counts tokens per bucket and per type.
func ComputeTokenStats(b manifest.TokenBuckets) TokenStats {
	stats := TokenStats{
		Total:      b.Len(),
		Colors:     len(b.Colors),
		Spacing:    len(b.Spacing),
		Radius:     len(b.Radius),
		Typography: len(b.Typography),
		Other:      len(b.Other),
		ByType:     make(map[manifest.TokenType]int),
	}
	for _, bucket := range [][]manifest.Token{b.Colors, b.Spacing, b.Radius, b.Typography, b.Other} {
		for _, tok := range bucket {
			stats.ByType[tok.Type]++
		}
	}
	return stats
}
