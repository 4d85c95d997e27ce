package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/intlmsg/internal/configloader"
	"github.com/yaklabco/intlmsg/internal/ui/pretty"
	"github.com/yaklabco/intlmsg/pkg/message"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

func newVarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vars [message]",
		Short: "List the variables a message uses",
		Long:  varsLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVars,
	}

	return cmd
}

const varsLongDescription = `List the variables a message uses.

Parses the message, infers its variable catalog, and prints one row per
variable with its inferred type. Formatting constructs such as bold text
or paragraphs appear as hook function variables named after the tag they
would render to.

Examples:
  intlmsg vars 'Hello, {name}!'
  intlmsg vars '{count, plural, one {# item} other {# items}}'
  echo 'Click $[here](confirm)!' | intlmsg vars`

func runVars(cmd *cobra.Command, args []string) error {
	raw, err := messageArg(cmd, args)
	if err != nil {
		return err
	}

	value, err := message.FromRaw(raw)
	if err != nil {
		return fmt.Errorf("parse message: %w", err)
	}

	styles := stylesForCommand(cmd, configloader.NewConfig())
	formatter := pretty.NewTableFormatter(styles, terminalWidth())

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVariables(symbol.Global(), value.Variables))
	return nil
}
