package commands

import (
	"fmt"

	"github.com/mrled/suns/palin/internal/palindrome"
	"github.com/mrled/suns/palin/internal/service/checker"
	"github.com/spf13/cobra"
)

type selfTestOptions struct {
	Fold    string
	Verbose bool
}

func newSelfTestCmd() *cobra.Command {
	opts := &selfTestOptions{}
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the predicate against known palindromes and non-palindromes",
		Long: `Run every built-in literal through the palindrome check.

Exits 0 and prints a confirmation when every literal matches its expected
result. Exits 1 naming the first literal that does not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(cmd, *opts)
		},
	}

	cmd.Flags().StringVar(&opts.Fold, "fold", "offset", "Case fold: offset or ascii")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print the outcome for every literal")
	return cmd
}

func runSelfTest(cmd *cobra.Command, opts selfTestOptions) error {
	out := cmd.OutOrStdout()

	fold, err := palindrome.ParseFold(opts.Fold)
	if err != nil {
		return ExitWithCode(ExitInvalidInput, err)
	}

	svc := checker.NewService(nil, newLogger(cmd.ErrOrStderr()))
	results, err := svc.SelfTest(palindrome.Options{Fold: fold})

	if opts.Verbose {
		for _, r := range results {
			status := "PASS"
			if !r.Passed() {
				status = "FAIL"
			}
			fmt.Fprintf(out, "%s %q (expected %t)\n", status, r.Text, r.Expected)
		}
	}

	if err != nil {
		return ExitWithCode(1, err)
	}

	fmt.Fprintln(out, "All tests successful!")
	return nil
}
