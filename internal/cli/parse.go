package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/intlmsg/pkg/msgast"
	"github.com/yaklabco/intlmsg/pkg/parser"
)

type parseFlags struct {
	inline  bool
	compact bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a message and print its syntax tree as JSON",
		Long:  parseLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.inline, "inline", false, "skip block structure and parse as inline content only")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print compact JSON without indentation")

	return cmd
}

const parseLongDescription = `Parse a message and print its syntax tree as JSON.

The message is read from the first argument, or from standard input when
no argument is given.

Examples:
  intlmsg parse 'Hello, {name}!'
  intlmsg parse '{count, plural, one {# item} other {# items}}'
  echo '# Heading' | intlmsg parse
  intlmsg parse --inline '**bold**'`

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	raw, err := messageArg(cmd, args)
	if err != nil {
		return err
	}

	doc, err := parseMessage(raw, flags.inline)
	if err != nil {
		return fmt.Errorf("parse message: %w", err)
	}

	var output []byte
	if flags.compact {
		output, err = json.Marshal(doc)
	} else {
		output, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode syntax tree: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

func parseMessage(raw string, inline bool) (*msgast.Document, error) {
	if inline {
		return parser.ParseInline(raw)
	}
	return parser.Parse(raw)
}

// messageArg returns the message text from args or standard input.
func messageArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read standard input: %w", err)
	}
	raw := strings.TrimSuffix(string(content), "\n")
	if raw == "" {
		return "", fmt.Errorf("no message given: %w", os.ErrInvalid)
	}
	return raw, nil
}
