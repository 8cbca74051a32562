package commands

import (
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palin",
		Short: "Palin checks whether text is a palindrome",
		Long: `A command-line tool for checking palindromes.

Case is ignored, and so are spaces and control characters.
Run without a subcommand to execute the built-in self-test.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(cmd, selfTestOptions{Fold: "offset"})
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn, or LOG_LEVEL)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newSelfTestCmd())
	cmd.AddCommand(newHistoryCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
