package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sonarSample = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

// sandbox points the CLI at a temporary inputs dir and database.
func sandbox(t *testing.T) (inputsDir string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	inputsDir = filepath.Join(dir, "inputs")
	require.NoError(t, os.MkdirAll(inputsDir, 0o750))

	cfgPath := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf(`
inputs_dir: %s
data_dir: %s
log:
  level: error
`, inputsDir, filepath.Join(dir, "data"))), 0o600))
	t.Setenv(config.EnvConfig, cfgPath)

	return inputsDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aoc version")
	assert.Contains(t, out, "commit:")
	assert.NotEmpty(t, getVersion())
}

func TestList(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sonar Sweep")
	assert.Contains(t, out, "Trick Shot")
}

func TestRunFromInputsDir(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte(sonarSample), 0o600))

	out, err := execute(t, "run", "1", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Day    int    `json:"day"`
			Part1  string `json:"part1"`
			Part2  string `json:"part2"`
			Source string `json:"source"`
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "7", doc.Results[0].Part1)
	assert.Equal(t, "5", doc.Results[0].Part2)
	assert.Equal(t, "inputs_dir", doc.Results[0].Source)
	assert.Equal(t, "ok", doc.Results[0].Status)

	out, err = execute(t, "history", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "7")
}

func TestRunExplicitInputAndEmbedded(t *testing.T) {
	sandbox(t)
	input := filepath.Join(t.TempDir(), "sonar.txt")
	require.NoError(t, os.WriteFile(input, []byte(sonarSample), 0o600))

	out, err := execute(t, "run", "1", "--input", input, "--no-store")
	require.NoError(t, err)
	assert.Contains(t, out, "Sonar Sweep")

	out, err = execute(t, "run", "17", "--no-store", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "`6903`")
	assert.Contains(t, out, "embedded")
}

func TestRunFailures(t *testing.T) {
	dir := sandbox(t)

	_, err := execute(t, "run")
	require.ErrorIs(t, err, errNoDays)

	_, err = execute(t, "run", "1", "2", "--input", "x.txt")
	require.ErrorIs(t, err, errInputManyDays)

	_, err = execute(t, "run", "42")
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("deep\n"), 0o600))
	out, err := execute(t, "run", "1", "--no-store")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 days failed")
	assert.Contains(t, out, "failed")

	_, err = execute(t, "run", "1", "--format", "html")
	require.Error(t, err)
}

func TestSelectDays(t *testing.T) {
	days, err := selectDays([]string{"5-7", "1", "6"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 1}, days)

	all, err := selectDays(nil, true)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Numbers(), all)

	for _, bad := range []string{"x", "3-1", "3-", "0"} {
		_, err := selectDays([]string{bad}, false)
		assert.Error(t, err, bad)
	}
	_, err = selectDays([]string{"1"}, true)
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.DefaultConfigFile)

	_, err = execute(t, "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "init", "-f", "-o", filepath.Join(dir, "conf", "aoc.yaml"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "conf", "aoc.yaml"))
}
