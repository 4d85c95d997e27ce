package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/intlmsg/pkg/messageutil"
)

func newHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <key>...",
		Short: "Print the obfuscated hash of message keys",
		Long:  hashLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runHash,
	}

	return cmd
}

const hashLongDescription = `Print the obfuscated hash of message keys.

Message keys are replaced at build time by a short content hash. This
command prints the hash for each given key, one per line.

Examples:
  intlmsg hash WELCOME_BANNER
  intlmsg hash ERRORS_NOT_FOUND ERRORS_FORBIDDEN`

func runHash(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, key := range args {
		fmt.Fprintf(out, "%s\t%s\n", key, messageutil.HashMessageKey(key))
	}
	return nil
}
