package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/dynamicweb/dynamicweb/internal/app"
	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/config"
)

func newChatCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Ask the architecture consultant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := app.NewService(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			reply, err := svc.Chat(cmd.Context(), strings.Join(args, " "), nil)
			if err != nil {
				if errors.Is(err, architect.ErrEmptyMessage) {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s failure: %v\n", architect.Classify(err), err)
				return errors.New("failed to get a reply, please try again")
			}

			if raw {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
				return err
			}
			out, err := renderMarkdown(reply)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the reply without markdown rendering")
	return cmd
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	return r.Render(md)
}
