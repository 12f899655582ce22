package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Lin-Jiong-HDU/ash/internal/ai/openai"
	"github.com/Lin-Jiong-HDU/ash/internal/conversation"
	"github.com/Lin-Jiong-HDU/ash/internal/core"
	"github.com/Lin-Jiong-HDU/ash/internal/core/security"
	"github.com/Lin-Jiong-HDU/ash/internal/storage"
	"github.com/Lin-Jiong-HDU/ash/internal/terminal"
	"github.com/spf13/cobra"
)

// renderWidth is the word-wrap width for markdown replies
const renderWidth = 80

func runAsh(cmd *cobra.Command, args []string) error {
	cfg := storage.GetConfig()
	applyFlags(cfg)

	promptsDir, err := storage.GetPromptsDir()
	if err != nil {
		return err
	}
	if err := conversation.EnsureDefaultPrompts(promptsDir); err != nil {
		slog.Warn("using built-in prompt", "dir", promptsDir, "error", err)
	}
	loader := conversation.NewPromptLoader(promptsDir)

	if flagListPrompts {
		listPrompts(cmd.OutOrStdout(), loader)
		return nil
	}
	if flagSaveConfig {
		if err := storage.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		path, _ := storage.GetConfigPath()
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	}

	settings, err := storage.LoadSettings()
	if err != nil {
		return err
	}

	systemPrompt, err := conversation.SystemPrompt(loader, cfg.Chat.Prompt)
	if err != nil {
		return fmt.Errorf("failed to load prompt %q: %w", cfg.Chat.Prompt, err)
	}

	client := openai.NewClient(settings.APIKey, cfg.AI.Model, systemPrompt,
		openai.WithBaseURL(cfg.AI.BaseURL),
		openai.WithMaxTokens(cfg.AI.MaxTokens),
		openai.WithTimeout(seconds(cfg.AI.Timeout)),
	)
	executor := core.NewExecutor(cfg.Exec.Shell, seconds(cfg.Exec.Timeout))

	reader := terminal.NewStdinReader()
	defer reader.Close()

	opts := []core.EngineOption{
		core.WithSecurity(security.NewSecurityController(&cfg.Security)),
	}
	if cfg.Chat.RenderMarkdown && terminal.IsTerminal(os.Stdout) {
		renderer, err := conversation.NewRenderer(renderWidth)
		if err != nil {
			slog.Warn("markdown rendering disabled", "error", err)
		} else {
			opts = append(opts, core.WithRenderer(renderer))
		}
	}

	engine := core.NewEngine(client, executor, terminal.NewConfirmer(reader, os.Stdout), opts...)
	slog.Debug("session started",
		"session", engine.SessionID(),
		"model", client.Model(),
		"prompt", cfg.Chat.Prompt,
		"shell", cfg.Exec.Shell,
	)

	return terminal.NewREPL(engine, reader, os.Stdout).Run(cmd.Context())
}

// listPrompts 显示可用的 prompt 模板
func listPrompts(w io.Writer, loader *conversation.PromptLoader) {
	prompts, err := loader.List()
	if err != nil {
		slog.Debug("prompt directory unavailable", "error", err)
	}
	if len(prompts) == 0 {
		prompts = []*conversation.PromptTemplate{conversation.DefaultPrompt()}
	}

	for _, p := range prompts {
		if p.Title != "" {
			fmt.Fprintf(w, "  • %s - %s\n", p.Name, p.Title)
		} else {
			fmt.Fprintf(w, "  • %s\n", p.Name)
		}
		if p.Description != "" {
			fmt.Fprintf(w, "    %s\n", p.Description)
		}
	}
}

// applyFlags lets command-line flags override the config file
func applyFlags(cfg *storage.Config) {
	if flagModel != "" {
		cfg.AI.Model = flagModel
	}
	if flagPrompt != "" {
		cfg.Chat.Prompt = flagPrompt
	}
	if flagNoRender {
		cfg.Chat.RenderMarkdown = false
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
