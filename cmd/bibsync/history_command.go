package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bibsync/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent compare and update runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.historyStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					formatTimestamp(run.StartedAt),
					run.Kind,
					summarizeRun(run),
					run.Duration().Round(timeRounding).String(),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Started", "Kind", "Outcome", "Duration"}, rows, 3))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many runs (0 shows all)")

	return cmd
}

func summarizeRun(run history.Run) string {
	switch run.Kind {
	case history.KindCompare:
		return fmt.Sprintf("matched %d, potential %d, only primary %d, only external %d",
			run.Matched, run.Potential, run.OnlyInPrimary, run.OnlyInExternal)
	case history.KindUpdate:
		summary := fmt.Sprintf("new %d, duplicates %d, pending %d, merged %s",
			run.TrulyNew, run.Duplicates, run.PotentialDuplicates, yesNo(run.Merged))
		if run.Merged {
			summary += ", added " + strconv.Itoa(run.Added)
		}
		return summary
	default:
		return run.Kind
	}
}
