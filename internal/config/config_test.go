package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultConcurrency, cfg.Runner.Concurrency)
	assert.Equal(t, config.FormatText, cfg.Report.Format)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, filepath.Join(cfg.DataDir, config.DatabaseFile), cfg.DatabasePath())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aoc.yaml")
	t.Setenv("AOC_TEST_INPUTS", "/srv/inputs")
	require.NoError(t, os.WriteFile(path, []byte(`
inputs_dir: ${AOC_TEST_INPUTS}
runner:
  concurrency: 8
  timeout: 2s
report:
  format: markdown
`), 0o600))

	cfg := config.Default()
	require.NoError(t, config.Load(path, cfg))

	assert.Equal(t, "/srv/inputs", cfg.InputsDir)
	assert.Equal(t, 8, cfg.Runner.Concurrency)
	assert.Equal(t, 2*time.Second, cfg.Runner.Timeout)
	assert.Equal(t, config.FormatMarkdown, cfg.Report.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level, "untouched keys keep defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"concurrency": "runner:\n  concurrency: 100\n",
		"format":      "report:\n  format: html\n",
		"log level":   "log:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "aoc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			err := config.Load(path, config.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), config.Default())
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runner: [1, 2"), 0o600))
	err := config.Load(path, config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestFindConfigFileOrder(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvConfig, "")

	assert.Equal(t, "explicit.yaml", config.FindConfigFile("explicit.yaml"))

	t.Setenv(config.EnvConfig, "/from/env.yaml")
	assert.Equal(t, "/from/env.yaml", config.FindConfigFile(""))

	t.Setenv(config.EnvConfig, "")
	require.NoError(t, os.WriteFile(config.DefaultConfigFile, []byte("{}"), 0o600))
	assert.Equal(t, config.DefaultConfigFile, config.FindConfigFile(""))
}

func TestTemplateLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aoc.yaml")
	require.NoError(t, config.WriteTemplate(path, false))
	require.ErrorIs(t, config.WriteTemplate(path, false), config.ErrConfigExists)
	require.NoError(t, config.WriteTemplate(path, true))

	cfg := config.Default()
	require.NoError(t, config.Load(path, cfg))
	assert.Equal(t, config.DefaultInputsDir, cfg.InputsDir)
	assert.Equal(t, 30*time.Second, cfg.Runner.Timeout)
	assert.NotEmpty(t, config.Template())
}
