package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bibsync/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the canonical store summary and its publications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			doc, err := store.Load(cfg.Paths.StorePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if !doc.AuthorInfo.IsZero() {
				fmt.Fprintf(out, "Author: %s\n", doc.AuthorInfo.Name)
				if doc.AuthorInfo.Affiliation != "" {
					fmt.Fprintf(out, "Affiliation: %s\n", doc.AuthorInfo.Affiliation)
				}
				if len(doc.AuthorInfo.Interests) > 0 {
					fmt.Fprintf(out, "Interests: %s\n", strings.Join(doc.AuthorInfo.Interests, ", "))
				}
				fmt.Fprintf(out, "Cited by: %d  h-index: %d  i10-index: %d\n",
					doc.AuthorInfo.CitedBy, doc.AuthorInfo.HIndex, doc.AuthorInfo.I10Index)
			}
			fmt.Fprintf(out, "Store: %s\n", cfg.Paths.StorePath)
			fmt.Fprintf(out, "Publications: %d\n", len(doc.Publications))
			if doc.LastUpdated != "" {
				fmt.Fprintf(out, "Last updated: %s\n", doc.LastUpdated)
			}

			pubs := doc.Publications
			if limit > 0 && len(pubs) > limit {
				pubs = pubs[:limit]
			}
			if len(pubs) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(pubs))
			for _, p := range pubs {
				rows = append(rows, []string{
					p.Title,
					yearOrDash(p.Year),
					p.Venue,
					strconv.Itoa(p.Citations),
				})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable([]string{"Title", "Year", "Venue", "Citations"}, rows, 3))
			if limit > 0 && len(doc.Publications) > limit {
				fmt.Fprintf(out, "(showing %d of %d publications)\n", limit, len(doc.Publications))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many publications (0 shows all)")

	return cmd
}
