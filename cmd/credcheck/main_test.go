package main_test

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "credcheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "credcheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixtureProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.CopyFS(dir, os.DirFS("../../testdata/credentials")))
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "running credcheck: %v", err)
		exitCode = exitErr.ExitCode()
	}
	return string(out), exitCode
}

func TestE2E_NoArgumentsValidatesWorkingDirectory(t *testing.T) {
	out, code := run(t, fixtureProject(t))
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Beltic Credential Validation - All Credentials")
	assert.Contains(t, out, "✓ All 4 credentials are valid")
}

func TestE2E_FailureExitsOne(t *testing.T) {
	dir := fixtureProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "examples/agent/v1/agent-empty.json"), []byte(`{}`), 0o644))

	out, code := run(t, dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "✗ 1 credential(s) failed validation")
}

func TestE2E_MissingSchemaExitsOne(t *testing.T) {
	dir := fixtureProject(t)
	require.NoError(t, os.RemoveAll(filepath.Join(dir, "schemas/agent")))

	out, code := run(t, dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "✗ Schema not found: schemas/agent/v1/agent-credential-v1.schema.json")
}

func TestE2E_UnknownFlagIsFatal(t *testing.T) {
	out, code := run(t, fixtureProject(t), "--bogus")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "✗ Fatal error: unknown flag: --bogus")
}

func TestE2E_JSON(t *testing.T) {
	dir := fixtureProject(t)
	cmd := exec.Command(binaryPath, "--format", "json")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)

	var summary struct {
		Total struct {
			Passed int `json:"passed"`
			Failed int `json:"failed"`
		} `json:"total"`
	}
	require.NoError(t, json.Unmarshal(out, &summary))
	assert.Equal(t, 4, summary.Total.Passed)
	assert.Zero(t, summary.Total.Failed)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, t.TempDir(), "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "credcheck dev (none)")
}
