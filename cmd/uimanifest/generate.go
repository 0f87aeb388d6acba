package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gnana997/uimanifest/pkg/catalog"
	"github.com/gnana997/uimanifest/pkg/manifest"
	"github.com/gnana997/uimanifest/pkg/scanner"
	"github.com/gnana997/uimanifest/pkg/util"
)

// pipelineRun is the state shared by the manifest and tokens commands.
type pipelineRun struct {
	cfg  *Config
	log  *slog.Logger
	cat  *catalog.Catalog
	meta manifest.PackageMeta
}

func newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Write the component manifest",
		Long: `Discover the catalog's components under the components directory, keep the
published roots, probe each for variants, tests, stories, and a README,
collect its exports, and write <out>/manifest.json.

Catalog entries without a directory are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: runManifest,
	}
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Write the design token manifest",
		Long: `Read the custom properties declared in the stylesheet, classify each by
name, and write <out>/tokens.json.`,
		Args: cobra.NoArgs,
		RunE: runTokens,
	}
}

// preparePipeline loads config, logger, catalog, and package metadata.
func preparePipeline(cmd *cobra.Command) (*pipelineRun, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := util.NewLogger(cfg.LoggerConfig(cmd.ErrOrStderr()))

	var cat *catalog.Catalog
	if path := cfg.CatalogPath(); path != "" {
		cat, err = catalog.LoadFromFile(path)
	} else {
		cat, err = catalog.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	meta, err := manifest.ReadPackageMeta(cfg.ScanOptions().PackageJSONPath())
	if err != nil {
		return nil, err
	}

	logger.Debug("pipeline configured",
		"root", cfg.Root,
		"package", meta.Name,
		"version", meta.Version,
		"catalog_entries", cat.Size())

	return &pipelineRun{cfg: cfg, log: logger, cat: cat, meta: meta}, nil
}

func runManifest(cmd *cobra.Command, _ []string) error {
	run, err := preparePipeline(cmd)
	if err != nil {
		return err
	}

	progress := newEntityProgress(cmd.ErrOrStderr(), run.cfg.Quiet)
	opts := run.cfg.ScanOptions()
	opts.OnEntity = progress.OnEntity

	s, err := scanner.NewScanner(run.cat, opts, run.log)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.RunComponents(run.meta)
	progress.Finish()
	if err != nil {
		return err
	}

	path, err := manifest.WriteComponentManifest(run.cfg.OutDir(), result.Manifest)
	if err != nil {
		return err
	}
	run.log.Info("component manifest written", "path", path, "components", result.Manifest.TotalComponents)

	if !run.cfg.Quiet {
		printComponentReport(cmd.OutOrStdout(), path, result)
	}
	return nil
}

func runTokens(cmd *cobra.Command, _ []string) error {
	run, err := preparePipeline(cmd)
	if err != nil {
		return err
	}

	s, err := scanner.NewScanner(run.cat, run.cfg.ScanOptions(), run.log)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.RunTokens(run.meta.Version)
	if err != nil {
		return err
	}

	path, err := manifest.WriteTokensManifest(run.cfg.OutDir(), result.Manifest)
	if err != nil {
		return err
	}
	run.log.Info("tokens manifest written", "path", path, "tokens", result.Manifest.TotalTokens)

	if !run.cfg.Quiet {
		printTokenReport(cmd.OutOrStdout(), path, result)
	}
	return nil
}
