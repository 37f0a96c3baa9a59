package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dynamicweb/dynamicweb/internal/api/validation"
	"github.com/dynamicweb/dynamicweb/internal/app"
	"github.com/dynamicweb/dynamicweb/internal/config"
	"github.com/dynamicweb/dynamicweb/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var (
		outcome string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("history needs DATABASE_URL")
			}

			filter := history.ListFilter{Limit: limit}
			if outcome != "" {
				if errs := validation.ValidateOutcome(outcome); len(errs) > 0 {
					return errors.New(errs[0].Message)
				}
				filter.Outcome = &outcome
			}

			hist, err := app.OpenHistory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer hist.Close()

			records, err := hist.Repo.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printHistory(cmd, records)
		},
	}
	cmd.Flags().StringVar(&outcome, "outcome", "", "only show this outcome (ok, transport, decode, rejected, unknown)")
	cmd.Flags().IntVar(&limit, "limit", history.DefaultListLimit, "maximum number of records")
	return cmd
}

func printHistory(cmd *cobra.Command, records []history.Generation) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tOUTCOME\tLATENCY\tTITLE\tIDEA")
	for _, g := range records {
		title := "-"
		if g.Blueprint != nil {
			title = g.Blueprint.Title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			g.CreatedAt.Local().Format(time.DateTime),
			g.Outcome,
			(time.Duration(g.LatencyMS) * time.Millisecond).String(),
			title,
			truncate(g.Idea, 48),
		)
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
