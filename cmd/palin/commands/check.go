package commands

import (
	"errors"
	"fmt"

	"github.com/mrled/suns/palin/internal/model"
	"github.com/mrled/suns/palin/internal/palindrome"
	"github.com/mrled/suns/palin/internal/repository"
	"github.com/mrled/suns/palin/internal/service/checker"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	PersistenceFlags
	Fold   string
	Strict bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <text> [text...]",
		Short: "Check whether each text is a palindrome",
		Long: `Check one or more texts and print whether each is a palindrome.

Exit status is 0 when every text is a palindrome, 1 when any is not,
and 2 when any input has no comparable characters under --strict.

Examples:
  # Check a phrase
  palin check "Never odd or even"

  # Fold only ASCII letters and reject blank input
  palin check --fold ascii --strict "KayAk" "   "

  # Record results in a JSON history file
  palin check --file ./history.json level 8448`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	addPersistenceFlags(cmd, &opts.PersistenceFlags)
	cmd.Flags().StringVar(&opts.Fold, "fold", "offset", "Case fold: offset (add 32 below 'a') or ascii (letters only)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject empty and whitespace-only input instead of treating it as a palindrome")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions, texts []string) error {
	ctx := cmd.Context()
	log := newLogger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	fold, err := palindrome.ParseFold(opts.Fold)
	if err != nil {
		return ExitWithCode(ExitInvalidInput, err)
	}

	var repo model.CheckRepository
	if cfg := opts.Config(); cfg.Enabled() {
		repo, err = repository.NewRepository(ctx, cfg, log)
		if err != nil {
			return err
		}
	}
	svc := checker.NewService(repo, log)

	var notPalindromes, invalid int
	for _, text := range texts {
		record, err := svc.Check(ctx, text, palindrome.Options{Fold: fold, Strict: opts.Strict})
		switch {
		case errors.Is(err, palindrome.ErrInvalidInput):
			invalid++
			fmt.Fprintf(out, "%q: invalid input\n", text)
		case err != nil:
			return err
		case record.IsPalindrome:
			fmt.Fprintf(out, "%q: palindrome\n", text)
		default:
			notPalindromes++
			fmt.Fprintf(out, "%q: not a palindrome\n", text)
		}
	}

	if invalid > 0 {
		return ExitWithCode(ExitInvalidInput, fmt.Errorf("%d of %d inputs have no comparable characters", invalid, len(texts)))
	}
	if notPalindromes > 0 {
		return ExitWithCode(ExitNotPalindrome, fmt.Errorf("%d of %d inputs are not palindromes", notPalindromes, len(texts)))
	}
	return nil
}
