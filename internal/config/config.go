package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AppName names the XDG subdirectories.
const AppName = "aoc2021"

const (
	// DefaultConfigFile is looked up in the working directory.
	DefaultConfigFile = "aoc.yaml"
	// EnvConfig names the environment variable holding a config path.
	EnvConfig = "AOC_CONFIG"
	// DatabaseFile is the history database name inside DataDir.
	DatabaseFile = "aoc2021.db"
)

// Defaults.
const (
	DefaultInputsDir   = "inputs"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultConcurrency = 4
	DefaultTimeout     = 30 * time.Second
	DefaultFormat      = "text"
)

// Report formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ErrConfigExists is returned by WriteTemplate when the file already exists.
var ErrConfigExists = errors.New("config: file already exists")

//go:embed template.yaml
var template []byte

// Config is the runner configuration.
type Config struct {
	InputsDir string       `yaml:"inputs_dir"`
	DataDir   string       `yaml:"data_dir"`
	Log       LogConfig    `yaml:"log"`
	Runner    RunnerConfig `yaml:"runner"`
	Report    ReportConfig `yaml:"report"`
	Store     StoreConfig  `yaml:"store"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required,
			validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
		validation.Field(&c.Format, validation.Required, validation.In(LogFormatConsole, LogFormatJSON)),
	)
}

// RunnerConfig controls how days are solved.
type RunnerConfig struct {
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Validate validates the runner configuration.
func (c *RunnerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Concurrency, validation.Required, validation.Min(1), validation.Max(64)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// ReportConfig selects the output format.
type ReportConfig struct {
	Format string `yaml:"format"`
}

// Validate validates the report configuration.
func (c *ReportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(FormatText, FormatMarkdown, FormatJSON)),
	)
}

// StoreConfig controls the answer history.
type StoreConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		InputsDir: DefaultInputsDir,
		DataDir:   XDGDataDir(),
		Log:       LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Runner:    RunnerConfig{Concurrency: DefaultConcurrency, Timeout: DefaultTimeout},
		Report:    ReportConfig{Format: DefaultFormat},
		Store:     StoreConfig{Enabled: true},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.InputsDir, validation.Required),
		validation.Field(&c.DataDir, validation.When(c.Store.Enabled, validation.Required)),
	); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Runner.Validate(); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	if err := c.Report.Validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// DatabasePath returns the location of the history database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// XDGDataDir returns the XDG data directory for the runner.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the runner.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// FindConfigFile returns the first existing configuration file, in lookup
// order, or "" when none exists. An explicit path is returned as is, so that
// loading it reports a missing file instead of silently using defaults.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	xdgPath := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// Resolve loads the configuration found by FindConfigFile on top of the
// defaults and returns it with the path used ("" for pure defaults).
func Resolve(explicit string) (*Config, string, error) {
	cfg := Default()
	path := FindConfigFile(explicit)
	if path == "" {
		return cfg, "", cfg.Validate()
	}
	if err := Load(path, cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Template returns the commented example configuration.
func Template() []byte {
	return append([]byte(nil), template...)
}

// WriteTemplate writes the example configuration to path, creating parent
// directories. It refuses to overwrite an existing file unless force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, template, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
