package scanner

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/util"
)

// Preferred extensions, first match wins.
var (
	implementationExts = []string{".tsx", ".ts", ".jsx", ".js"}
	indexExts          = []string{".ts", ".tsx", ".js", ".jsx"}
)

// Classifier decides which discovered entities are published roots and
// computes their capability flags. All source reads go through the run's
// FileCache.
type Classifier struct {
	cat        *catalog.Catalog
	files      util.FileCache
	storiesDir string
	log        *slog.Logger
}

// NewClassifier creates a Classifier. storiesDir is the stories source root;
// story files are looked up under its components/ subdirectory.
func NewClassifier(cat *catalog.Catalog, files util.FileCache, storiesDir string, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{cat: cat, files: files, storiesDir: storiesDir, log: logger}
}

// Classify applies the acceptance filter to e and, when accepted, probes its
// flags and exports. A rejected entity returns ok=false and the reason.
//
// Missing optional files are not errors: they only turn a flag off. A file
// that exists but cannot be read is logged and treated the same way.
func (c *Classifier) Classify(e Entity) (meta manifest.ComponentMetadata, ok bool, reason catalog.Rejection) {
	if accepted, why := c.cat.Accept(e.Name); !accepted {
		return manifest.ComponentMetadata{}, false, why
	}

	dirFS := os.DirFS(e.Dir)

	meta = manifest.ComponentMetadata{
		Name:     e.Name,
		Category: string(e.Category),
		Path:     "./components/" + e.Name,
		Exports:  []string{},
	}

	if impl, found := firstExisting(dirFS, e.Name, implementationExts); found {
		if src, err := c.files.ReadString(filepath.Join(e.Dir, impl)); err != nil {
			c.log.Warn("failed to read implementation", "component", e.Name, "file", impl, "error", err)
		} else {
			meta.HasVariants = VariantPattern.MatchString(src)
		}
	}

	meta.HasTests = globExists(dirFS, escapeGlob(e.Name)+".test.*")
	meta.HasReadme = fileExists(dirFS, "README.md")
	meta.HasStories = c.hasStories(e.Name)

	if index, found := firstExisting(dirFS, "index", indexExts); found {
		if src, err := c.files.ReadString(filepath.Join(e.Dir, index)); err != nil {
			c.log.Warn("failed to read index", "component", e.Name, "file", index, "error", err)
		} else {
			meta.Exports = ExtractExports(src)
		}
	}

	c.log.Debug("classified component",
		"component", e.Name,
		"variants", meta.HasVariants,
		"tests", meta.HasTests,
		"stories", meta.HasStories,
		"readme", meta.HasReadme,
		"exports", len(meta.Exports))

	return meta, true, catalog.RejectNone
}

func (c *Classifier) hasStories(name string) bool {
	if c.storiesDir == "" {
		return false
	}
	return globExists(os.DirFS(c.storiesDir), path.Join("components", escapeGlob(name)+".stories.*"))
}

// firstExisting returns the first base+ext that is a regular file.
func firstExisting(fsys fs.FS, base string, exts []string) (string, bool) {
	for _, ext := range exts {
		if fileExists(fsys, base+ext) {
			return base + ext, true
		}
	}
	return "", false
}

func fileExists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.Mode().IsRegular()
}

// globExists reports whether pattern matches at least one regular file.
// An unreadable or absent directory simply has no matches.
func globExists(fsys fs.FS, pattern string) bool {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	return err == nil && len(matches) > 0
}

// escapeGlob quotes glob metacharacters in a literal name.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
