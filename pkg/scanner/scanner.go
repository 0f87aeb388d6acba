package scanner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/util"
)

// Scanner runs the component and token pipelines for one UI package.
// Each Scanner owns its file cache; nothing is shared between Scanners.
type Scanner struct {
	cat   *catalog.Catalog
	opts  Options
	files util.FileCache
	log   *slog.Logger
}

// NewScanner creates a scanner over cat with the given layout.
func NewScanner(cat *catalog.Catalog, opts Options, logger *slog.Logger) (*Scanner, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	cacheCfg := util.DefaultFileCacheConfig()
	if opts.MaxCachedFiles > 0 {
		cacheCfg.MaxFiles = opts.MaxCachedFiles
	}
	cacheCfg.Logger = logger

	files, err := util.NewFileCache(cacheCfg)
	if err != nil {
		return nil, err
	}

	return &Scanner{cat: cat, opts: opts, files: files, log: logger}, nil
}

// RunComponents discovers, filters and classifies the catalog's components
// and assembles the component manifest. Missing directories are reported in
// the result, never as an error.
func (s *Scanner) RunComponents(meta manifest.PackageMeta) (*ComponentResult, error) {
	totalStart := time.Now()
	timing := ScanStats{EntitiesDeclared: s.cat.Size()}

	// Phase 1: Discovery
	discoveryStart := time.Now()
	componentsDir := s.opts.ComponentsDir()
	entities, missing := DiscoverEntities(s.cat, componentsDir, s.log)
	timing.EntitiesFound = len(entities)
	timing.EntitiesMissing = len(missing)
	timing.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	s.log.Info("discovery complete",
		"dir", componentsDir,
		"declared", timing.EntitiesDeclared,
		"found", len(entities),
		"missing", len(missing),
		"ms", timing.DiscoveryTimeMs)

	// Phase 2: Classification
	classifyStart := time.Now()
	classifier := NewClassifier(s.cat, s.files, s.opts.StoriesDir(), s.log)

	components := make([]manifest.ComponentMetadata, 0, len(entities))
	var rejected []RejectedEntity
	for i, e := range entities {
		comp, ok, reason := classifier.Classify(e)
		if ok {
			components = append(components, comp)
		} else {
			s.log.Debug("entity rejected", "component", e.Name, "reason", reason)
			rejected = append(rejected, RejectedEntity{Category: e.Category, Name: e.Name, Reason: reason})
		}
		if s.opts.OnEntity != nil {
			s.opts.OnEntity(i+1, len(entities), e.Name)
		}
	}
	timing.ComponentsAccepted = len(components)
	timing.ComponentsRejected = len(rejected)
	timing.ClassificationTimeMs = time.Since(classifyStart).Milliseconds()

	s.log.Info("classification complete",
		"accepted", len(components),
		"rejected", len(rejected),
		"ms", timing.ClassificationTimeMs)

	// Phase 3: Assembly
	doc := manifest.BuildComponentManifest(meta, components, s.opts.now())
	timing.FilesRead = s.files.Stats().FilesLoaded
	timing.TotalTimeMs = time.Since(totalStart).Milliseconds()

	return &ComponentResult{
		Manifest: doc,
		Missing:  missing,
		Rejected: rejected,
		Stats:    ComputeComponentStats(doc.Components),
		Timing:   timing,
	}, nil
}

// RunTokens extracts and classifies the stylesheet's custom properties and
// assembles the tokens manifest. An unreadable stylesheet is fatal.
func (s *Scanner) RunTokens(version string) (*TokenResult, error) {
	totalStart := time.Now()
	timing := ScanStats{}

	sheet := s.opts.StylesheetPath()
	src, err := s.files.ReadString(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}

	extractStart := time.Now()
	tokens := ExtractTokens(src, s.cat.Tokens)
	timing.TokensExtracted = len(tokens)
	timing.ExtractionTimeMs = time.Since(extractStart).Milliseconds()

	s.log.Info("token extraction complete",
		"stylesheet", sheet,
		"tokens", len(tokens),
		"ms", timing.ExtractionTimeMs)

	doc := manifest.BuildTokensManifest(version, tokens, s.opts.now())
	timing.FilesRead = s.files.Stats().FilesLoaded
	timing.TotalTimeMs = time.Since(totalStart).Milliseconds()

	return &TokenResult{
		Manifest: doc,
		Stats:    ComputeTokenStats(doc.Tokens),
		Timing:   timing,
	}, nil
}

// Close releases the file cache.
func (s *Scanner) Close() error {
	return s.files.Close()
}
