package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/intlmsg/internal/configloader"
)

// newProjectDir creates a directory that looks like a VCS root so upward
// discovery never escapes into the real filesystem.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "auto", result.Config.Color)
	assert.Equal(t, "info", result.Config.LogLevel)
	assert.Zero(t, result.Config.Jobs)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	configPath := filepath.Join(dir, ".intlmsg.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("jobs: 3\ncolor: never\n"), 0o644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Config.Jobs)
	assert.Equal(t, "never", result.Config.Color)
	assert.Equal(t, "info", result.Config.LogLevel, "unset fields keep defaults")
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
}

func TestLoadProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	root := newProjectDir(t)
	configPath := filepath.Join(root, ".intlmsg.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: debug\n"), 0o644))

	nested := filepath.Join(root, "src", "intl")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: nested})
	require.NoError(t, err)

	assert.Equal(t, "debug", result.Config.LogLevel)
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
}

func TestLoadStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".intlmsg.yml"), []byte("jobs: 9\n"), 0o644))

	// The nested repo root must not see the outer config.
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: repo})
	require.NoError(t, err)

	assert.Zero(t, result.Config.Jobs)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadExplicitPathSkipsDiscovery(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".intlmsg.yml"), []byte("jobs: 1\n"), 0o644))

	explicit := filepath.Join(dir, "special.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("jobs: 7\n"), 0o644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Config.Jobs)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoadCLIOverrides(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".intlmsg.yml"), []byte("jobs: 2\ncolor: never\n"), 0o644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		CLIConfig:  &configloader.Config{Jobs: 8},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, result.Config.Jobs, "CLI flags win")
	assert.Equal(t, "never", result.Config.Color, "unset CLI fields fall through")
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad color mode", content: "color: rainbow\n"},
		{name: "bad log level", content: "log_level: loud\n"},
		{name: "negative jobs", content: "jobs: -2\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dir := newProjectDir(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".intlmsg.yml"), []byte(testCase.content), 0o644))

			_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
			require.Error(t, err)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".intlmsg.yml"), []byte("jobs: [not an int\n"), 0o644))

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.Error(t, err)
}
