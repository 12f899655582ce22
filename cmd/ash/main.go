package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lin-Jiong-HDU/ash/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagModel       string
	flagPrompt      string
	flagNoRender    bool
	flagVerbose     bool
	flagListPrompts bool
	flagSaveConfig  bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ash",
		Short: "Natural-language shell",
		Long: `ash - describe what you want in plain English, review the proposed shell
command, then run it or have its output explained.

At the confirmation prompt answer y to run, i to run and interpret the
output, anything else to skip. Type exit to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), flagVerbose)
			_, err := storage.InitConfig()
			return err
		},
		RunE: runAsh,
	}

	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Model name (overrides ai.model)")
	cmd.Flags().StringVarP(&flagPrompt, "prompt", "p", "", "Prompt template name (overrides chat.prompt)")
	cmd.Flags().BoolVar(&flagNoRender, "no-render", false, "Disable markdown rendering of replies")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log requests and decisions to stderr")
	cmd.Flags().BoolVar(&flagListPrompts, "list-prompts", false, "List available prompt templates and exit")
	cmd.Flags().BoolVar(&flagSaveConfig, "save-config", false, "Write the effective settings, flags included, to the config file and exit")

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
