package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/logging"
	"github.com/katalvlaran/keypadchain/presscost"
)

const sample = "029A\n980A\n179A\n456A\n379A\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(logging.InitializeDefault)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestSolve_Stdin prints both default depths for the sample codes.
func TestSolve_Stdin(t *testing.T) {
	out, err := run(t, sample, "solve")
	require.NoError(t, err)
	assert.Equal(t, "depth 2: 126384\ndepth 25: 154115708116294\n", out)
}

// TestSolve_FileFlags reads a file and honors --depth, --commas and --breakdown.
func TestSolve_FileFlags(t *testing.T) {
	path := writeFile(t, "codes.txt", sample)
	out, err := run(t, "", "solve", "-d", "2", "--commas", "--breakdown", "-w", "2", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "depth 2: 126,384", lines[0])
	assert.Equal(t, "  029A     presses=68 value=29 complexity=1,972", lines[1])
	assert.Contains(t, lines[2], "complexity=58,800")
}

// TestSolve_JSON encodes the report.
func TestSolve_JSON(t *testing.T) {
	out, err := run(t, sample, "solve", "--format", "json", "--depth", "2")
	require.NoError(t, err)

	var rep presscost.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Depths, 1)
	assert.Equal(t, uint64(126384), rep.Depths[0].Total)
	assert.Len(t, rep.Depths[0].Codes, 5)
}

// TestSolve_Config takes depths and formatting from an HCL file.
func TestSolve_Config(t *testing.T) {
	cfg := writeFile(t, "kc.hcl", "depths = [25]\ncommas = true\n")
	out, err := run(t, sample, "--config", cfg, "solve")
	require.NoError(t, err)
	assert.Equal(t, "depth 25: 154,115,708,116,294\n", out)

	out, err = run(t, sample, "--config", cfg, "solve", "--commas=false", "-d", "2")
	require.NoError(t, err)
	assert.Equal(t, "depth 2: 126384\n", out, "flags override config")
}

// TestSolve_Errors covers bad input, bad flags and a missing file.
func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "029A\nxyz\n", "solve")
	assert.ErrorContains(t, err, "line 2")

	_, err = run(t, sample, "solve", "-d", "-1")
	assert.Error(t, err)

	_, err = run(t, sample, "solve", "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, sample, "--config", writeFile(t, "bad.hcl", "depths = ["), "solve")
	assert.ErrorContains(t, err, "load config")
}

// TestTrace prints sequences that match the computed costs.
func TestTrace(t *testing.T) {
	out, err := run(t, "", "trace", "--depth", "0", "029A")
	require.NoError(t, err)
	assert.Equal(t, "029A: <A^A>^^AvvvA\n", out)

	out, err = run(t, "", "trace", "029A", "980A")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.TrimPrefix(lines[0], "029A: "), 68)
	assert.Len(t, strings.TrimPrefix(lines[1], "980A: "), 60)

	_, err = run(t, "", "trace", "12")
	assert.Error(t, err)

	cfg := writeFile(t, "small.hcl", "trace_limit = 10\n")
	_, err = run(t, "", "--config", cfg, "trace", "029A")
	assert.ErrorIs(t, err, presscost.ErrTraceTooLong)
}

// TestConfigInit writes the effective configuration where Load can read it.
func TestConfigInit(t *testing.T) {
	src := writeFile(t, "kc.hcl", "depths = [3]\ncommas = true\ntrace_limit = 500\n")
	dst := filepath.Join(t.TempDir(), "kc.json")

	out, err := run(t, "", "--config", src, "-v", "config", "init", dst)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+dst+"\n", out)

	got, err := config.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got.Depths)
	assert.True(t, got.Commas)
	assert.Equal(t, uint64(500), got.TraceLimit)
	assert.Equal(t, "warn", got.Logging.Level, "--verbose does not leak into the saved file")

	_, err = run(t, "", "config", "init", filepath.Join(t.TempDir(), "kc.hcl"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestTrace_LimitFromConfig rejects oversized limits before tracing.
func TestTrace_LimitFromConfig(t *testing.T) {
	cfg := writeFile(t, "huge.hcl", "trace_limit = 4294967296\n")
	_, err := run(t, "", "--config", cfg, "trace", "--depth", "44", "029A")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestVersion prints the version line.
func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "keypadchain version "+version+"\n", out)
}
