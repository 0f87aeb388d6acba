package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gnana997/uimanifest/pkg/scanner"
	"github.com/gnana997/uimanifest/pkg/util"
)

const (
	configName = ".uimanifest"
	envPrefix  = "UIMANIFEST"
)

// Config holds the CLI settings. Every path except the config file itself is
// resolved against Root.
type Config struct {
	Root       string    `yaml:"root" mapstructure:"root"`
	Components string    `yaml:"components" mapstructure:"components"`
	Stories    string    `yaml:"stories" mapstructure:"stories"`
	Stylesheet string    `yaml:"stylesheet" mapstructure:"stylesheet"`
	Out        string    `yaml:"out" mapstructure:"out"`
	Catalog    string    `yaml:"catalog" mapstructure:"catalog"` // empty uses the embedded catalog
	Quiet      bool      `yaml:"quiet" mapstructure:"quiet"`
	Log        LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig configures diagnostics on stderr and the MCP call log.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"` // serve only; JSONL tool-call log
}

// DefaultConfig returns the conventional UI package layout.
func DefaultConfig() *Config {
	opts := scanner.DefaultOptions()
	return &Config{
		Root:       opts.Root,
		Components: opts.ComponentsRoot,
		Stories:    opts.StoriesRoot,
		Stylesheet: opts.Stylesheet,
		Out:        "dist",
		Log: LogConfig{
			Level:  string(util.LevelInfo),
			Format: string(util.FormatText),
		},
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Components == "" {
		errs = append(errs, fmt.Errorf("components path must not be empty"))
	}
	if c.Stylesheet == "" {
		errs = append(errs, fmt.Errorf("stylesheet path must not be empty"))
	}
	if c.Out == "" {
		errs = append(errs, fmt.Errorf("out directory must not be empty"))
	}
	if _, err := util.ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := util.ParseLogFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// resolve joins p onto Root unless p is absolute or empty.
func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// OutDir is the output directory resolved against Root.
func (c *Config) OutDir() string { return c.resolve(c.Out) }

// CatalogPath is the catalog file resolved against Root, or "" for the
// embedded default.
func (c *Config) CatalogPath() string { return c.resolve(c.Catalog) }

// LogFilePath is the MCP call log resolved against Root, or "" when disabled.
func (c *Config) LogFilePath() string { return c.resolve(c.Log.File) }

// ScanOptions converts the config into scanner options.
func (c *Config) ScanOptions() scanner.Options {
	return scanner.Options{
		Root:           c.Root,
		ComponentsRoot: c.Components,
		StoriesRoot:    c.Stories,
		Stylesheet:     c.Stylesheet,
	}
}

// LoggerConfig describes the diagnostics logger writing to w.
func (c *Config) LoggerConfig(w io.Writer) util.LoggerConfig {
	level, _ := util.ParseLogLevel(c.Log.Level)
	format, _ := util.ParseLogFormat(c.Log.Format)
	return util.LoggerConfig{Level: level, Format: format, Output: w}
}

// loadConfig merges settings with the following priority (highest to lowest):
// 1. Command-line flags
// 2. Environment variables (UIMANIFEST_*)
// 3. Config file (--config, or .uimanifest.yaml in the root or working directory)
// 4. Default values
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	// log.level -> UIMANIFEST_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("root"))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable unless it was named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("root", defaults.Root)
	v.SetDefault("components", defaults.Components)
	v.SetDefault("stories", defaults.Stories)
	v.SetDefault("stylesheet", defaults.Stylesheet)
	v.SetDefault("out", defaults.Out)
	v.SetDefault("catalog", defaults.Catalog)
	v.SetDefault("quiet", defaults.Quiet)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.file", defaults.Log.File)
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"root":       "root",
	"components": "components",
	"stories":    "stories",
	"stylesheet": "stylesheet",
	"out":        "out",
	"catalog":    "catalog",
	"quiet":      "quiet",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

// bindFlags binds whichever of the known flags cmd has. Unset flags fall
// through to env, file, then defaults.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}
