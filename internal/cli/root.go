// Package cli provides the Cobra command structure for intlmsg.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/intlmsg/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root intlmsg command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "intlmsg",
		Short: "Parse and check internationalized message files",
		Long: `intlmsg parses internationalized messages written in a hybrid of
Markdown-like formatting and ICU MessageFormat placeholders.

It reads message definition and translation files, builds a structured
syntax tree for every message, infers the variables each message uses,
and checks translations for errors such as malformed placeholders or
variables the source message never declares.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newVarsCommand())
	rootCmd.AddCommand(newHashCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
