package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/intlmsg/internal/configloader"
	"github.com/yaklabco/intlmsg/internal/logging"
	"github.com/yaklabco/intlmsg/internal/ui/pretty"
	"github.com/yaklabco/intlmsg/pkg/runner"
)

// ErrCheckIssuesFound is returned when the check finds issues.
var ErrCheckIssuesFound = errors.New("check issues found")

type checkFlags struct {
	summary bool
}

func newCheckCommand() *cobra.Command {
	cfg := &configloader.Config{}
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check translation files for message errors",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, cfg, flags)
		},
	}

	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a full summary block instead of one line")

	return cmd
}

const checkLongDescription = `Check translation files for message errors.

By default, checks all .messages.json and .messages.jsona files in the
current directory and subdirectories. Specify paths to check specific
files or directories.

Examples:
  intlmsg check                   # Check current directory
  intlmsg check messages/         # Check messages directory
  intlmsg check en-US.messages.json
  intlmsg check --jobs 4          # Limit worker count`

func runCheck(cmd *cobra.Command, args []string, cfg *configloader.Config, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, workDir, err := loadConfig(cmd, ctx, cfg)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = finalCfg.Paths
	}

	checkRunner := runner.New()
	runOpts := runner.Options{
		Paths:      paths,
		WorkingDir: workDir,
		Jobs:       finalCfg.Jobs,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	styles := stylesForCommand(cmd, finalCfg)
	out := cmd.OutOrStdout()

	for _, file := range result.Files {
		if issues := styles.FormatFileIssues(file); issues != "" {
			fmt.Fprint(out, issues)
		}
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrCheckIssuesFound
	}

	return nil
}

// loadConfig resolves the merged configuration and working directory shared
// by the file-processing commands.
func loadConfig(cmd *cobra.Command, ctx context.Context, cliCfg *configloader.Config) (*configloader.Config, string, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// The --debug flag outranks the configured level.
	if debug, flagErr := cmd.Flags().GetBool("debug"); flagErr == nil && !debug {
		logging.SetLevel(loadResult.Config.LogLevel)
	}

	return loadResult.Config, workDir, nil
}

// stylesForCommand builds styles honoring the --color flag and config.
func stylesForCommand(cmd *cobra.Command, cfg *configloader.Config) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil || colorMode == "" {
		colorMode = cfg.Color
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// terminalWidth returns the width of stdout when it is a terminal, or 0.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
