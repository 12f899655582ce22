package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Lin-Jiong-HDU/ash/internal/core/security"
	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	AshDirName     = ".ash"
)

var config *Config

// Config holds the application configuration
type Config struct {
	AI       AIConfig                `mapstructure:"ai"`
	Chat     ChatConfig              `mapstructure:"chat"`
	Exec     ExecConfig              `mapstructure:"exec"`
	Security security.SecurityPolicy `mapstructure:"security"`
}

// AIConfig holds AI-related configuration. The API key is never read from
// the config file; see LoadSettings.
type AIConfig struct {
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	Timeout   int    `mapstructure:"timeout"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// ChatConfig holds chat-related configuration
type ChatConfig struct {
	Prompt         string `mapstructure:"prompt"`
	RenderMarkdown bool   `mapstructure:"render_markdown"`
}

// ExecConfig controls how proposed commands are run
type ExecConfig struct {
	Shell   string `mapstructure:"shell"`
	Timeout int    `mapstructure:"timeout"`
}

// GetConfigDir returns the ash config directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, AshDirName), nil
}

// GetConfigPath returns the path of the config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileType), nil
}

// GetPromptsDir returns the directory holding prompt templates
func GetPromptsDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prompts"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.model", "gpt-4-turbo")
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.timeout", 0)
	v.SetDefault("ai.max_tokens", 100)

	v.SetDefault("chat.prompt", "default")
	v.SetDefault("chat.render_markdown", true)

	v.SetDefault("exec.shell", "sh")
	v.SetDefault("exec.timeout", 0)

	// Security defaults
	v.SetDefault("security.warn", true)
	v.SetDefault("security.dangerous_commands", []string{})
	v.SetDefault("security.protected_paths", security.DefaultProtectedPaths)
}

// InitConfig initializes the configuration
func InitConfig() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	// Defaults still apply when the directory cannot be created
	if err := os.MkdirAll(configDir, 0755); err != nil {
		slog.Warn("config directory unavailable", "dir", configDir, "error", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)
	setDefaults(v)

	// Read config file (ignore if not exists)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = &cfg
	return config, nil
}

// GetConfig returns the loaded config
func GetConfig() *Config {
	return config
}

// SaveConfig saves the current config to file
func SaveConfig(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if not exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	v.Set("ai.model", cfg.AI.Model)
	v.Set("ai.base_url", cfg.AI.BaseURL)
	v.Set("ai.timeout", cfg.AI.Timeout)
	v.Set("ai.max_tokens", cfg.AI.MaxTokens)

	v.Set("chat.prompt", cfg.Chat.Prompt)
	v.Set("chat.render_markdown", cfg.Chat.RenderMarkdown)

	v.Set("exec.shell", cfg.Exec.Shell)
	v.Set("exec.timeout", cfg.Exec.Timeout)

	// Save security config
	v.Set("security.warn", cfg.Security.Warn)
	v.Set("security.dangerous_commands", cfg.Security.DangerousCommands)
	v.Set("security.protected_paths", cfg.Security.ProtectedPaths)

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return v.WriteConfigAs(configPath)
}
