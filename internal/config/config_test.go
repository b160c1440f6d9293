package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestDefault is valid and solves the two standard depths.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{2, 25}, cfg.Depths)
	assert.Equal(t, config.FormatText, cfg.Format)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

// TestLoad_Missing falls back to defaults.
func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_HCL decodes attributes and a partial logging block.
func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, "keypadchain.hcl", `
depths  = [3, 10]
workers = 4
commas  = true

logging {
  level = "debug"
}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 10}, cfg.Depths)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Commas)
	assert.Equal(t, config.FormatText, cfg.Format, "unset attributes keep defaults")
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset block attributes keep defaults")
}

// TestLoad_JSON reads HCL's JSON syntax.
func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "keypadchain.json", `{"depths": [25], "format": "json"}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{25}, cfg.Depths)
	assert.Equal(t, config.FormatJSON, cfg.Format)
}

// TestLoad_Invalid rejects bad syntax and out-of-range values.
func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "broken.hcl", `depths = [`))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "neg.hcl", `depths = [2, -1]`))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "fmt.hcl", `format = "xml"`))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "empty.hcl", `depths = []`))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "zero.hcl", `trace_limit = 0`))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "huge.hcl", `trace_limit = 4294967296`))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestSave_RoundTrip writes JSON that Load accepts.
func TestSave_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Depths = []int{1, 2, 3}
	cfg.Workers = 2
	cfg.Logging.Level = "info"

	path := filepath.Join(t.TempDir(), "sub", "saved.json")
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

// TestSave_NotJSON refuses paths Load would not parse as JSON.
func TestSave_NotJSON(t *testing.T) {
	err := config.Default().Save(filepath.Join(t.TempDir(), "saved.hcl"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestGetSet swaps the global configuration.
func TestGetSet(t *testing.T) {
	orig := config.Get()
	t.Cleanup(func() { config.Set(orig) })

	cfg := config.Default()
	cfg.Commas = true
	config.Set(cfg)
	assert.Same(t, cfg, config.Get())
}
