package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dynamicweb/dynamicweb/internal/app"
	"github.com/dynamicweb/dynamicweb/internal/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply history database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("migrate needs DATABASE_URL")
			}
			// OpenHistory migrates on connect.
			hist, err := app.OpenHistory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			hist.Close()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "history database is up to date")
			return err
		},
	}
}
