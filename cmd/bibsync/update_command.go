package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"bibsync/internal/history"
	"bibsync/internal/logging"
	"bibsync/internal/match"
	"bibsync/internal/merge"
	"bibsync/internal/store"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		assumeYes bool
		assumeNo  bool
		noBackup  bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "update <batch.json>",
		Short: "Merge new publications from a batch into the canonical store",
		Long: `Update deduplicates the batch against the canonical store and appends
the truly-new records. When potential duplicates need review the merge asks
for confirmation; declining leaves the store untouched. A timestamped
checkpoint copy of the store is written before every merge unless backups
are disabled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			if assumeYes && assumeNo {
				return fmt.Errorf("--yes and --no are mutually exclusive")
			}

			batch, err := store.Load(args[0])
			if err != nil {
				return err
			}
			canonical, err := store.Load(cfg.Paths.StorePath)
			if err != nil {
				return err
			}

			started := timeNow()
			report := match.Deduplicate(canonical.Publications, batch.Publications, cfg.DedupOptions())

			out := cmd.OutOrStdout()
			writeDedupSummary(out, report)

			if dryRun {
				fmt.Fprintln(out, "\nDry run; store not modified.")
				return nil
			}

			manager, err := merge.NewManager(merge.Options{
				StorePath:     cfg.Paths.StorePath,
				BackupEnabled: cfg.Merge.BackupEnabled && !noBackup,
				CheckpointDir: cfg.Paths.CheckpointDir,
				Logger:        logger,
				Now:           timeNow,
			})
			if err != nil {
				return err
			}

			policy, err := confirmationPolicy(cmd, cfg.Merge.Confirmation, assumeYes, assumeNo)
			if err != nil {
				return err
			}

			result, err := manager.Merge(report, batch, policy)
			if err != nil {
				return err
			}
			finished := timeNow()

			if !result.Merged {
				fmt.Fprintln(out, "\nMerge declined; store unchanged.")
			} else {
				fmt.Fprintf(out, "\nAdded %d publications (store now holds %d).\n", result.Added, result.Total)
				if result.Checkpoint.Exists() {
					fmt.Fprintf(out, "Checkpoint: %s\n", result.Checkpoint.Path)
				}
			}

			logger.Info("update finished",
				logging.Bool("merged", result.Merged),
				logging.Int("added", result.Added))

			ctx.recordRun(cmd.Context(), history.Run{
				Kind:                history.KindUpdate,
				StartedAt:           started,
				FinishedAt:          finished,
				TrulyNew:            len(report.TrulyNew),
				Duplicates:          len(report.Duplicates),
				PotentialDuplicates: len(report.PotentialDuplicates),
				Added:               result.Added,
				Merged:              result.Merged,
				CheckpointPath:      result.Checkpoint.Path,
			})

			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Approve the merge without prompting")
	cmd.Flags().BoolVar(&assumeNo, "no", false, "Decline ambiguous merges without prompting")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the pre-merge checkpoint copy")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without touching the store")

	return cmd
}

// confirmationPolicy resolves the merge policy from flags and config.
// Flags win over config; the configured "prompt" policy only prompts on
// an interactive stdin and otherwise denies.
func confirmationPolicy(cmd *cobra.Command, configured string, assumeYes, assumeNo bool) (merge.Policy, error) {
	switch {
	case assumeYes:
		return merge.Approve(), nil
	case assumeNo:
		return merge.Deny(), nil
	}

	switch configured {
	case "approve":
		return merge.Approve(), nil
	case "deny":
		return merge.Deny(), nil
	case "prompt", "":
		if stdin, ok := cmd.InOrStdin().(*os.File); ok && !isatty.IsTerminal(stdin.Fd()) {
			return merge.Deny(), nil
		}
		return merge.Prompt(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("unknown confirmation policy %q", configured)
	}
}
