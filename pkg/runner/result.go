package runner

// MessageIssue is one per-message failure inside a file. A failed message
// never blocks the rest of its file or batch.
type MessageIssue struct {
	// Err is the parse or extraction error.
	Err error
}

// FileOutcome is the result of processing one translations file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Messages is the number of messages successfully parsed.
	Messages int

	// Issues holds the per-message failures for this file.
	Issues []MessageIssue

	// Error is set if the file itself could not be processed at all
	// (unreadable, structurally invalid, or empty of messages).
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one failed
	// message.
	FilesWithIssues int

	// MessagesParsed is the total number of messages parsed across all
	// files.
	MessagesParsed int

	// MessageIssues is the total number of per-message failures.
	MessageIssues int
}

// Result is the overall runner result. Files are ordered deterministically
// by path regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether anything in the run failed: a file error or
// any per-message issue.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.MessageIssues > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.MessagesParsed += outcome.Messages
	r.Stats.MessageIssues += len(outcome.Issues)
	if len(outcome.Issues) > 0 {
		r.Stats.FilesWithIssues++
	}
}
