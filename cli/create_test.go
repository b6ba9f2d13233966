package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConfirm replaces the interactive overwrite prompt for the duration
// of a test.
func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	calls := 0
	original := ConfirmFunc
	ConfirmFunc = func(path string) (bool, error) {
		calls++
		return answer, nil
	}
	t.Cleanup(func() { ConfirmFunc = original })
	return &calls
}

func TestRunCreate(t *testing.T) {
	t.Run("WritesMinimalConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sigmond.toml")
		require.NoError(t, RunCreate([]string{"-o", path}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, minimalConfig, string(data))
	})

	t.Run("CreatesParentDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "sigmond.toml")
		require.NoError(t, RunCreate([]string{"-o", path}))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("TemplateCopied", func(t *testing.T) {
		dir := t.TempDir()
		template := filepath.Join(dir, "template.toml")
		require.NoError(t, os.WriteFile(template, []byte("[build]\nverbose = true\n"), 0644))

		path := filepath.Join(dir, "sigmond.toml")
		require.NoError(t, RunCreate([]string{"-o", path, "--template", template}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[build]\nverbose = true\n", string(data))
	})

	t.Run("MissingTemplateFails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sigmond.toml")
		err := RunCreate([]string{"-o", path, "--template", "/no/such/template.toml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template")
	})

	t.Run("ForceOverwritesWithoutPrompt", func(t *testing.T) {
		calls := stubConfirm(t, false)
		path := filepath.Join(t.TempDir(), "sigmond.toml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, RunCreate([]string{"-o", path, "--force"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, minimalConfig, string(data))
		assert.Equal(t, 0, *calls)
	})

	t.Run("ConfirmedOverwrite", func(t *testing.T) {
		calls := stubConfirm(t, true)
		path := filepath.Join(t.TempDir(), "sigmond.toml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, RunCreate([]string{"-o", path}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, minimalConfig, string(data))
		assert.Equal(t, 1, *calls)
	})

	t.Run("DeclinedOverwriteLeavesFile", func(t *testing.T) {
		stubConfirm(t, false)
		path := filepath.Join(t.TempDir(), "sigmond.toml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, RunCreate([]string{"-o", path}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})
}

func TestMinimalConfigResolves(t *testing.T) {
	// The starter file must round-trip through resolution unchanged.
	dir := t.TempDir()
	path := filepath.Join(dir, "sigmond.toml")
	require.NoError(t, RunCreate([]string{"-o", path}))

	rc, err := resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "double", rc.Precision())
	assert.Equal(t, 0, rc.RawBuildJobs())
	assert.True(t, rc.TestingEnabled())
}
