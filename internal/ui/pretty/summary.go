package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/intlmsg/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "4 message issues in 2 files (128 messages checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.MessageIssues == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d messages in %d files)", stats.MessagesParsed, stats.FilesProcessed)) +
			"\n"
	}

	var parts []string

	if stats.MessageIssues > 0 {
		issueWord := "issues"
		if stats.MessageIssues == 1 {
			issueWord = "issue"
		}
		fileWord := wordFiles
		if stats.FilesWithIssues == 1 {
			fileWord = wordFile
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d message %s", stats.MessageIssues, issueWord))+
			fmt.Sprintf(" in %d %s", stats.FilesWithIssues, fileWord))
	}

	if stats.FilesErrored > 0 {
		fileWord := wordFiles
		if stats.FilesErrored == 1 {
			fileWord = wordFile
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable %s", stats.FilesErrored, fileWord)))
	}

	parts = append(parts, s.Dim.Render(fmt.Sprintf("(%d messages checked)", stats.MessagesParsed)))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Messages parsed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.MessagesParsed)) + "\n")

	if stats.MessageIssues > 0 {
		builder.WriteString("  Message issues:    " +
			s.Failure.Render(strconv.Itoa(stats.MessageIssues)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0 || stats.MessageIssues > 0:
		builder.WriteString(s.Failure.Render("Check failed"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileIssues formats the per-message issues of one file.
func (s *Styles) FormatFileIssues(file runner.FileOutcome) string {
	if file.Error == nil && len(file.Issues) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(s.FilePath.Render(file.Path))
	builder.WriteString("\n")

	if file.Error != nil {
		builder.WriteString("  " + s.Error.Render("error") + " " + file.Error.Error() + "\n")
		return builder.String()
	}

	for _, issue := range file.Issues {
		builder.WriteString("  " + s.Error.Render("error") + " " + issue.Err.Error() + "\n")
	}

	return builder.String()
}
