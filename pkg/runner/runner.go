package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/intlmsg/pkg/sources"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// Runner orchestrates multi-file message extraction using a
// sources.TranslationSource.
type Runner struct {
	// Source handles per-file message extraction.
	Source sources.TranslationSource

	// Interner receives file names. Defaults to the process-wide table.
	Interner *symbol.Interner
}

// New creates a Runner reading JSON translation files with the process-wide
// interner.
func New() *Runner {
	return &Runner{
		Source:   sources.NewJSONTranslations(),
		Interner: symbol.Global(),
	}
}

// Run discovers translation files under opts.Paths and processes them
// concurrently. It returns a deterministic collection of FileOutcome values
// and aggregate stats.
//
// The runner:
//   - Discovers files matching the translations suffix
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect by path first.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads and extracts every message of one translations file.
// Per-message failures are recorded as issues; only a failure of the file
// itself sets the outcome error.
func (r *Runner) processFile(path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	fileSym := r.interner().Intern(path)

	seq, err := r.source().ExtractTranslations(fileSym, string(content))
	if err != nil {
		outcome.Error = fmt.Errorf("extract %s: %w", path, err)
		return outcome
	}

	records := 0
	for _, err := range seq {
		records++
		if err != nil {
			outcome.Issues = append(outcome.Issues, MessageIssue{Err: err})
			continue
		}
		outcome.Messages++
	}

	if records == 0 {
		outcome.Error = fmt.Errorf("%w: %s", sources.ErrNoMessagesFound, path)
	}
	return outcome
}

func (r *Runner) source() sources.TranslationSource {
	if r.Source != nil {
		return r.Source
	}
	return sources.NewJSONTranslations()
}

func (r *Runner) interner() *symbol.Interner {
	if r.Interner != nil {
		return r.Interner
	}
	return symbol.Global()
}
