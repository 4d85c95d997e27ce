package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/intlmsg/pkg/runner"
	"github.com/yaklabco/intlmsg/pkg/sources"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "en-US.messages.json", `{}`)
	second := writeFile(t, dir, "de.messages.jsona", `{}`)
	writeFile(t, dir, "Home.messages.ts", "export default {}")
	writeFile(t, dir, "notes.txt", "skip me")

	nested := filepath.Join(dir, "intl")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	third := writeFile(t, nested, "fr.messages.json", `{}`)

	skipped := filepath.Join(dir, "node_modules")
	require.NoError(t, os.MkdirAll(skipped, 0o755))
	writeFile(t, skipped, "vendored.messages.json", `{}`)

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, []string{second, first, third}, files)
}

func TestDiscoverExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "en.messages.json", `{}`)

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{path}})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths: []string{filepath.Join(t.TempDir(), "nope")},
	})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "en.messages.json",
		`{"GREETING": "Hello, {name}!", "FAREWELL": "Bye!"}`)
	writeFile(t, dir, "de.messages.json",
		`{"GREETING": "Hallo, {name}!", "BROKEN": "{unterminated"}`)

	result, err := runner.New().Run(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 3, result.Stats.MessagesParsed)
	assert.Equal(t, 1, result.Stats.MessageIssues)
	assert.True(t, result.HasFailures())

	// Outcomes come back in path order regardless of worker scheduling.
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(dir, "de.messages.json"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "en.messages.json"), result.Files[1].Path)
	assert.Len(t, result.Files[0].Issues, 1)
	assert.Empty(t, result.Files[1].Issues)
}

func TestRunCleanFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "en.messages.json", `{"A": "one", "B": "two"}`)

	result, err := runner.New().Run(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)

	assert.False(t, result.HasFailures())
	assert.Equal(t, 2, result.Stats.MessagesParsed)
}

func TestRunEmptyFileIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "empty.messages.json", `{}`)

	result, err := runner.New().Run(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	require.Len(t, result.Files, 1)
	assert.True(t, errors.Is(result.Files[0].Error, sources.ErrNoMessagesFound))
	assert.True(t, result.HasFailures())
}

func TestRunInvalidFileIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "bad.messages.json", `["not", "an", "object"]`)

	result, err := runner.New().Run(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	require.Len(t, result.Files, 1)
	assert.True(t, errors.Is(result.Files[0].Error, sources.ErrInvalidSourceFileMeta))
}

func TestRunNoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New().Run(context.Background(), runner.Options{Paths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasFailures())
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		writeFile(t, dir, name+".messages.json", `{"K": "v"}`)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New().Run(ctx, runner.Options{Paths: []string{dir}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
