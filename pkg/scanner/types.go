// Package scanner discovers the components declared in a catalog, decides
// which ones are published roots, probes their capability flags, and
// extracts exports and stylesheet tokens.
package scanner

import (
	"path/filepath"
	"time"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
)

// Options configures one pipeline run. Relative paths are resolved against
// Root.
type Options struct {
	// Root is the UI package directory (the one holding package.json).
	Root string
	// ComponentsRoot holds one directory per component.
	ComponentsRoot string
	// StoriesRoot is the stories package source dir; story files live under
	// its components/ subdirectory.
	StoriesRoot string
	// Stylesheet declares the design tokens as custom properties.
	Stylesheet string

	// MaxCachedFiles bounds the file cache. Zero uses the cache default.
	MaxCachedFiles int

	// Now stamps generatedAt. Nil uses time.Now.
	Now func() time.Time

	// OnEntity is called after each discovered entity is classified.
	OnEntity func(done, total int, name string)
}

// DefaultOptions returns the conventional layout of a UI package.
func DefaultOptions() Options {
	return Options{
		Root:           ".",
		ComponentsRoot: "src/components",
		StoriesRoot:    "../stories/src",
		Stylesheet:     "src/styles/globals.css",
	}
}

func (o Options) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Root, p)
}

// ComponentsDir returns ComponentsRoot resolved against Root.
func (o Options) ComponentsDir() string { return o.resolve(o.ComponentsRoot) }

// StoriesDir returns StoriesRoot resolved against Root.
func (o Options) StoriesDir() string { return o.resolve(o.StoriesRoot) }

// StylesheetPath returns Stylesheet resolved against Root.
func (o Options) StylesheetPath() string { return o.resolve(o.Stylesheet) }

// PackageJSONPath returns the package.json inside Root.
func (o Options) PackageJSONPath() string { return o.resolve("package.json") }

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Entity is a catalog entry whose directory exists on disk.
type Entity struct {
	Category catalog.Category
	Name     string
	Dir      string
}

// MissingEntity is a catalog entry with no usable directory.
type MissingEntity struct {
	Category catalog.Category
	Name     string
	Reason   string
}

// RejectedEntity is a discovered entity that is not a publishable root.
type RejectedEntity struct {
	Category catalog.Category
	Name     string
	Reason   catalog.Rejection
}

// ComponentResult is the output of a component run.
type ComponentResult struct {
	Manifest *manifest.ComponentManifest
	Missing  []MissingEntity
	Rejected []RejectedEntity
	Stats    ComponentStats
	Timing   ScanStats
}

// TokenResult is the output of a token run.
type TokenResult struct {
	Manifest *manifest.TokensManifest
	Stats    TokenStats
	Timing   ScanStats
}

// ScanStats tracks run counts and phase timings. Timings use the wall
// clock, never Options.Now, and are not written to any manifest.
type ScanStats struct {
	EntitiesDeclared     int
	EntitiesFound        int
	EntitiesMissing      int
	ComponentsAccepted   int
	ComponentsRejected   int
	TokensExtracted      int
	FilesRead            int64
	DiscoveryTimeMs      int64
	ClassificationTimeMs int64
	ExtractionTimeMs     int64
	TotalTimeMs          int64
}
