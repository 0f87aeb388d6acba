package scanner

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/util"
)

var testClock = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

// copyWorkspace copies the fixture workspace into a temp dir so tests can
// modify it. Returns the temp workspace root.
func copyWorkspace(t *testing.T) string {
	t.Helper()
	dst := filepath.Join(t.TempDir(), "workspace")
	require.NoError(t, os.CopyFS(dst, os.DirFS("testdata/workspace")))
	return dst
}

func testOptions(workspace string) Options {
	opts := DefaultOptions()
	opts.Root = filepath.Join(workspace, "ui")
	opts.Now = func() time.Time { return testClock }
	return opts
}

func newTestScanner(t *testing.T, opts Options) *Scanner {
	t.Helper()
	s, err := NewScanner(loadTestCatalog(t), opts, util.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testMeta(t *testing.T, opts Options) manifest.PackageMeta {
	t.Helper()
	meta, err := manifest.ReadPackageMeta(opts.PackageJSONPath())
	require.NoError(t, err)
	return meta
}

func componentNames(m *manifest.ComponentManifest) []string {
	var names []string
	for _, c := range m.Components {
		names = append(names, c.Name)
	}
	return names
}

func TestRunComponents(t *testing.T) {
	opts := testOptions("testdata/workspace")
	s := newTestScanner(t, opts)

	var progress []string
	s.opts.OnEntity = func(done, total int, name string) {
		assert.Equal(t, 6, total)
		progress = append(progress, name)
	}

	res, err := s.RunComponents(testMeta(t, opts))
	require.NoError(t, err)

	m := res.Manifest
	assert.Equal(t, "@acme/ui", m.Name)
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, "Acme design system components", m.Description)
	assert.Equal(t, "2026-03-14T09:26:53.589Z", m.GeneratedAt)

	assert.Equal(t, []string{"Button", "Card", "Badge", "Dialog"}, componentNames(m))
	assert.Equal(t, len(m.Components), m.TotalComponents)
	assert.Empty(t, m.Validate())

	// DialogContent has a directory but is a sub-part; Orphan is not a root.
	assert.Equal(t, []RejectedEntity{
		{Category: catalog.CategoryDisplay, Name: "Orphan", Reason: catalog.RejectNotRoot},
		{Category: catalog.CategoryOverlay, Name: "DialogContent", Reason: catalog.RejectSubPart},
	}, res.Rejected)

	require.Len(t, res.Missing, 1)
	assert.Equal(t, "Carousel", res.Missing[0].Name)

	assert.Equal(t, []string{"Button", "Card", "Badge", "Orphan", "Dialog", "DialogContent"}, progress)

	assert.Equal(t, 4, res.Stats.Total)
	assert.InDelta(t, 50.0, res.Stats.Completeness, 0.001)
	assert.Equal(t, 7, res.Timing.EntitiesDeclared)
	assert.Equal(t, 6, res.Timing.EntitiesFound)
	assert.Equal(t, 1, res.Timing.EntitiesMissing)
	assert.Equal(t, 4, res.Timing.ComponentsAccepted)
	assert.Equal(t, 2, res.Timing.ComponentsRejected)
}

func TestRunComponents_MissingDirectory(t *testing.T) {
	ws := copyWorkspace(t)
	opts := testOptions(ws)

	before := newTestScanner(t, opts)
	first, err := before.RunComponents(testMeta(t, opts))
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(opts.ComponentsDir(), "Card")))

	var buf bytes.Buffer
	logger := util.NewLogger(util.LoggerConfig{Level: util.LevelWarn, Output: &buf})
	after, err := NewScanner(loadTestCatalog(t), opts, logger)
	require.NoError(t, err)
	defer after.Close()

	second, err := after.RunComponents(testMeta(t, opts))
	require.NoError(t, err)

	assert.Equal(t, first.Manifest.TotalComponents-1, second.Manifest.TotalComponents)
	assert.NotContains(t, componentNames(second.Manifest), "Card")
	assert.Contains(t, buf.String(), "component=Card")
	assert.Len(t, second.Missing, 2)
}

func TestRunComponents_ByteIdenticalOutput(t *testing.T) {
	opts := testOptions("testdata/workspace")

	write := func() []byte {
		s := newTestScanner(t, opts)
		res, err := s.RunComponents(testMeta(t, opts))
		require.NoError(t, err)

		path, err := manifest.WriteComponentManifest(t.TempDir(), res.Manifest)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, write(), write())
}

func TestRunComponents_RoundTrip(t *testing.T) {
	opts := testOptions("testdata/workspace")
	s := newTestScanner(t, opts)

	res, err := s.RunComponents(testMeta(t, opts))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "dist")
	path, err := manifest.WriteComponentManifest(out, res.Manifest)
	require.NoError(t, err)

	loaded, err := manifest.LoadComponentManifest(path)
	require.NoError(t, err)
	assert.Equal(t, res.Manifest, loaded)
}

func TestRunTokens(t *testing.T) {
	opts := testOptions("testdata/workspace")
	s := newTestScanner(t, opts)

	res, err := s.RunTokens("1.2.0")
	require.NoError(t, err)

	m := res.Manifest
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, "2026-03-14T09:26:53.589Z", m.GeneratedAt)
	assert.Equal(t, 10, m.TotalTokens)
	assert.Equal(t, m.Tokens.Len(), m.TotalTokens)

	var colors []string
	for _, tok := range m.Tokens.Colors {
		colors = append(colors, tok.Name)
	}
	assert.Equal(t, []string{"background", "foreground", "color-primary-500", "background"}, colors)

	assert.Equal(t, manifest.Token{
		Name: "color-primary-500", Value: "#7367F0", Type: manifest.TokenColor, CSSVar: "var(--color-primary-500)",
	}, m.Tokens.Colors[2])

	assert.Len(t, m.Tokens.Radius, 1)
	assert.Len(t, m.Tokens.Typography, 1)
	assert.Equal(t, `"Inter", sans-serif`, m.Tokens.Typography[0].Value)
	assert.Empty(t, m.Tokens.Spacing)
	assert.Len(t, m.Tokens.Other, 4)
	assert.Equal(t, manifest.TokenShadow, m.Tokens.Other[0].Type)

	assert.Equal(t, 1, res.Stats.ByType[manifest.TokenShadow])
	assert.Equal(t, 10, res.Timing.TokensExtracted)
	assert.Empty(t, m.Validate())
}

func TestRunTokens_ByteIdenticalOutput(t *testing.T) {
	opts := testOptions("testdata/workspace")

	write := func() []byte {
		s := newTestScanner(t, opts)
		res, err := s.RunTokens("1.2.0")
		require.NoError(t, err)

		path, err := manifest.WriteTokensManifest(t.TempDir(), res.Manifest)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, write(), write())
}

func TestRunTokens_UnreadableStylesheet(t *testing.T) {
	opts := testOptions("testdata/workspace")
	opts.Stylesheet = "src/styles/missing.css"
	s := newTestScanner(t, opts)

	_, err := s.RunTokens("1.2.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read stylesheet")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewScanner_RequiresCatalog(t *testing.T) {
	_, err := NewScanner(nil, DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestOptions_Resolve(t *testing.T) {
	opts := DefaultOptions()
	opts.Root = "/repo/packages/ui"

	assert.Equal(t, "/repo/packages/ui/src/components", opts.ComponentsDir())
	assert.Equal(t, "/repo/packages/stories/src", opts.StoriesDir())
	assert.Equal(t, "/repo/packages/ui/src/styles/globals.css", opts.StylesheetPath())
	assert.Equal(t, "/repo/packages/ui/package.json", opts.PackageJSONPath())

	opts.Stylesheet = "/abs/theme.css"
	assert.Equal(t, "/abs/theme.css", opts.StylesheetPath())
}
