// Package main is the entry point for the intlmsg CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/intlmsg/internal/cli"
	"github.com/yaklabco/intlmsg/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrCheckIssuesFound - it's just a signal for exit code.
		if !errors.Is(err, cli.ErrCheckIssuesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return 0
}
