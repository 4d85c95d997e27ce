package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/intlmsg/internal/ui/pretty"
	"github.com/yaklabco/intlmsg/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("clean run", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatSummaryOneLine(runner.Stats{
			FilesProcessed: 3,
			MessagesParsed: 42,
		})
		assert.Contains(t, output, "No issues found")
		assert.Contains(t, output, "42 messages")
	})

	t.Run("issues reported with counts", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatSummaryOneLine(runner.Stats{
			FilesProcessed:  3,
			FilesWithIssues: 2,
			MessagesParsed:  40,
			MessageIssues:   5,
		})
		assert.Contains(t, output, "5 message issues")
		assert.Contains(t, output, "2 files")
	})

	t.Run("singular wording", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatSummaryOneLine(runner.Stats{
			FilesProcessed:  1,
			FilesWithIssues: 1,
			MessageIssues:   1,
		})
		assert.Contains(t, output, "1 message issue in 1 file")
	})

	t.Run("unreadable files", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatSummaryOneLine(runner.Stats{FilesErrored: 1})
		assert.Contains(t, output, "1 unreadable file")
	})
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	output := styles.FormatSummary(runner.Stats{
		FilesProcessed:  4,
		FilesWithIssues: 1,
		MessagesParsed:  100,
		MessageIssues:   2,
	})

	assert.Contains(t, output, "Summary")
	assert.Contains(t, output, "Files checked:")
	assert.Contains(t, output, "Messages parsed:")
	assert.Contains(t, output, "Check failed")

	clean := styles.FormatSummary(runner.Stats{FilesProcessed: 4, MessagesParsed: 100})
	assert.Contains(t, clean, "Check passed")
}

func TestFormatFileIssues(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("clean file renders nothing", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatFileIssues(runner.FileOutcome{Path: "a.messages.json", Messages: 3})
		assert.Empty(t, output)
	})

	t.Run("file error", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatFileIssues(runner.FileOutcome{
			Path:  "a.messages.json",
			Error: errors.New("boom"),
		})
		assert.Contains(t, output, "a.messages.json")
		assert.Contains(t, output, "boom")
	})

	t.Run("per message issues", func(t *testing.T) {
		t.Parallel()

		output := styles.FormatFileIssues(runner.FileOutcome{
			Path:   "b.messages.json",
			Issues: []runner.MessageIssue{{Err: errors.New("bad placeholder")}},
		})
		assert.Contains(t, output, "b.messages.json")
		assert.Contains(t, output, "bad placeholder")
	})
}
