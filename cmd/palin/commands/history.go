package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mrled/suns/palin/internal/model"
	"github.com/mrled/suns/palin/internal/palindrome"
	"github.com/mrled/suns/palin/internal/presenter"
	"github.com/mrled/suns/palin/internal/repository"
	"github.com/spf13/cobra"
)

type historyOptions struct {
	PersistenceFlags
	Format string
	SortBy string
}

func newHistoryCmd() *cobra.Command {
	opts := &historyOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded checks",
		Long: `Display checks recorded by "palin check" with --file or --dynamodb-table.

Examples:
  # Show all recorded checks
  palin history --file ./history.json

  # Most recent first, one line each
  palin history --file ./history.json --sort time --format compact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	addPersistenceFlags(cmd, &opts.PersistenceFlags)
	cmd.Flags().StringVar(&opts.Format, "format", "detailed", "Output format: detailed or compact")
	cmd.Flags().StringVar(&opts.SortBy, "sort", "", "Sort by: text, time, or result")

	cmd.AddCommand(newHistoryDeleteCmd())
	return cmd
}

func newHistoryDeleteCmd() *cobra.Command {
	opts := &PersistenceFlags{}
	cmd := &cobra.Command{
		Use:   "delete <fold> <text>",
		Short: "Delete one recorded check",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fold, err := palindrome.ParseFold(args[0])
			if err != nil {
				return ExitWithCode(ExitInvalidInput, err)
			}
			repo, err := repository.NewRepository(cmd.Context(), opts.Config(), newLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			if err := repo.Delete(cmd.Context(), fold.String(), args[1]); err != nil {
				return fmt.Errorf("failed to delete %q: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s check for %q\n", fold, args[1])
			return nil
		},
	}
	addPersistenceFlags(cmd, opts)
	return cmd
}

func runHistory(cmd *cobra.Command, opts *historyOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	repo, err := repository.NewRepository(ctx, opts.Config(), newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	records, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No checks recorded.")
		return nil
	}

	model.SortRecords(records, opts.SortBy)

	now := time.Now()
	switch opts.Format {
	case "compact":
		displayRecordsCompact(out, records, now)
	default:
		displayRecordsDetailed(out, records, now)
	}

	fmt.Fprintf(out, "\nTotal records: %d\n", len(records))
	return nil
}

// displayRecordsDetailed displays records in detailed format
func displayRecordsDetailed(out io.Writer, records []*model.CheckRecord, now time.Time) {
	fmt.Fprintln(out, "=== Check History ===")
	for _, r := range records {
		fmt.Fprintf(out, "\nText: %q\n", r.Text)
		fmt.Fprintf(out, "Fold: %s\n", r.Fold)
		fmt.Fprintf(out, "Palindrome: %t\n", r.IsPalindrome)
		fmt.Fprintf(out, "Checked: %s (rev: %d)\n", presenter.FormatTimeSince(r.CheckTime, now), r.Rev)
	}
}

// displayRecordsCompact displays records in compact format
func displayRecordsCompact(out io.Writer, records []*model.CheckRecord, now time.Time) {
	fmt.Fprintf(out, "%-40s %-8s %-11s %s\n", "Text", "Fold", "Palindrome", "Last Checked")
	fmt.Fprintln(out, strings.Repeat("-", 75))
	for _, r := range records {
		fmt.Fprintf(out, "%-40s %-8s %-11t %s\n",
			presenter.Truncate(fmt.Sprintf("%q", r.Text), 38),
			r.Fold,
			r.IsPalindrome,
			presenter.FormatTimeSinceCompact(r.CheckTime, now))
	}
}
