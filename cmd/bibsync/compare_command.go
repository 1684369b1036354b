package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bibsync/internal/history"
	"bibsync/internal/logging"
	"bibsync/internal/match"
	"bibsync/internal/store"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var (
		format             string
		outputPath         string
		matchThreshold     float64
		potentialThreshold float64
	)

	cmd := &cobra.Command{
		Use:   "compare <primary.json> <external.json>",
		Short: "Reconcile two publication lists and report the differences",
		Long: `Compare scores every publication in the primary document against the
external document by normalized title similarity and classifies each pair
as matched, potential (needs review), or present on one side only.
Neither input is modified.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			if err := validateFormat(format); err != nil {
				return err
			}

			opts := cfg.MatchingOptions()
			if cmd.Flags().Changed("threshold") {
				opts.MatchThreshold = matchThreshold
			}
			if cmd.Flags().Changed("potential-threshold") {
				opts.PotentialThreshold = potentialThreshold
			}
			if opts.PotentialThreshold >= opts.MatchThreshold {
				return fmt.Errorf("potential threshold %g must be below match threshold %g",
					opts.PotentialThreshold, opts.MatchThreshold)
			}

			primary, err := store.Load(args[0])
			if err != nil {
				return err
			}
			external, err := store.Load(args[1])
			if err != nil {
				return err
			}

			started := timeNow()
			report := match.Reconcile(primary.Publications, external.Publications, opts)
			finished := timeNow()

			logger.Info("comparison finished",
				logging.Int("matched", len(report.Matched)),
				logging.Int("potential", len(report.Potential)),
				logging.Int("only_in_primary", len(report.OnlyInA)),
				logging.Int("only_in_external", len(report.OnlyInB)))

			out := cmd.OutOrStdout()
			if err := writeCompareReport(out, report, format); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if strings.TrimSpace(outputPath) != "" {
				target := outputPath
				if !filepath.IsAbs(target) {
					target = filepath.Join(cfg.Paths.ReportDir, target)
				}
				file, err := os.Create(target)
				if err != nil {
					return fmt.Errorf("create report file: %w", err)
				}
				fileFormat := formatFromExtension(target, format)
				writeErr := writeCompareReport(file, report, fileFormat)
				closeErr := file.Close()
				if writeErr != nil {
					return fmt.Errorf("write report file: %w", writeErr)
				}
				if closeErr != nil {
					return fmt.Errorf("close report file: %w", closeErr)
				}
				fmt.Fprintf(out, "\nReport written to %s\n", target)
			}

			ctx.recordRun(cmd.Context(), history.Run{
				Kind:           history.KindCompare,
				StartedAt:      started,
				FinishedAt:     finished,
				Matched:        len(report.Matched),
				Potential:      len(report.Potential),
				OnlyInPrimary:  len(report.OnlyInA),
				OnlyInExternal: len(report.OnlyInB),
			})

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Report format: table, text, or yaml")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the report to a file (relative paths land in the report directory)")
	cmd.Flags().Float64Var(&matchThreshold, "threshold", match.DefaultMatchThreshold, "Definite match cutoff")
	cmd.Flags().Float64Var(&potentialThreshold, "potential-threshold", match.DefaultPotentialThreshold, "Potential match cutoff")

	return cmd
}

// formatFromExtension picks a file format from the report filename,
// falling back to the on-screen format. Table output degrades to plain
// text in files.
func formatFromExtension(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".txt":
		return formatText
	}
	if fallback == formatTable {
		return formatText
	}
	return fallback
}
