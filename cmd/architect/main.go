// Command architect generates website blueprints and answers architecture
// questions from the terminal, using the same providers as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "architect",
		Short: "Plan dynamic websites from the command line",
		Long: `architect turns a one-line website idea into a technical blueprint:
architecture, frontend and backend stacks, a database schema and key features.

Configuration is read from the same environment variables as the server
(PROVIDER, GEMINI_API_KEY, MODEL, GENERATE_TIMEOUT, DATABASE_URL).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newGenerateCmd(),
		newChatCmd(),
		newHistoryCmd(),
		newMigrateCmd(),
	)
	return root
}
