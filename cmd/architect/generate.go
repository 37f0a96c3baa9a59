package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/dynamicweb/dynamicweb/internal/app"
	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/config"
	"github.com/dynamicweb/dynamicweb/internal/history"
)

func newGenerateCmd() *cobra.Command {
	var (
		asJSON bool
		asYAML bool
		record bool
	)

	cmd := &cobra.Command{
		Use:   "generate <idea...>",
		Short: "Generate a technical blueprint for a website idea",
		Example: `  architect generate a blog with comments
  architect generate --json "a marketplace for used bikes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && asYAML {
				return errors.New("--json and --yaml are mutually exclusive")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if record && cfg.DatabaseURL == "" {
				return errors.New("--record needs DATABASE_URL")
			}
			ctx := cmd.Context()

			svc, err := app.NewService(ctx, cfg)
			if err != nil {
				return err
			}

			idea := strings.Join(args, " ")
			bp, genErr := svc.Generate(ctx, idea)

			if record {
				if err := recordGeneration(cmd, cfg, svc, idea, bp, genErr); err != nil {
					return err
				}
			}

			if genErr != nil {
				// Show the cause on stderr; the user message goes to the error line.
				fmt.Fprintf(cmd.ErrOrStderr(), "%s failure: %v\n", architect.Classify(genErr), genErr)
				return errors.New(architect.UserMessage)
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(bp)
			case asYAML:
				raw, err := blueprint.Encode(bp)
				if err != nil {
					return err
				}
				y, err := yaml.JSONToYAML(raw)
				if err != nil {
					return err
				}
				_, err = out.Write(y)
				return err
			default:
				_, err := fmt.Fprintln(out, renderBlueprint(bp))
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the blueprint as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the blueprint as YAML")
	cmd.Flags().BoolVar(&record, "record", false, "store the attempt in the history database (needs DATABASE_URL)")
	return cmd
}

func recordGeneration(cmd *cobra.Command, cfg *config.Config, svc *architect.Service, idea string, bp *blueprint.Blueprint, genErr error) error {
	hist, err := app.OpenHistory(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer hist.Close()

	g := &history.Generation{
		SessionID: "cli",
		Idea:      idea,
		Model:     svc.Model(),
		Provider:  svc.ProviderName(),
		Outcome:   string(architect.Classify(genErr)),
		Blueprint: bp,
	}
	if genErr != nil {
		g.ErrorMessage = genErr.Error()
	}
	return hist.Repo.Record(cmd.Context(), g)
}
