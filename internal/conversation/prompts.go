package conversation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultPromptName is the template used when none is configured
const DefaultPromptName = "default"

const defaultPrompt = `+++
name = "default"
title = "Shell assistant"
description = "Turns English instructions into shell commands and explains their output"
+++

You are an intelligent command prompt. You will receive english-language instructions from the user, and then turn those instructions into executable shell commands or scripts. You are running on {{.OS}}. You will also summarize and interpret command output for the user. Return all of your responses in JSON format, with the following structure: { type: "command" | "response", response: string }. type indicates whether your response is an executable set of instructions, or human-readable text output addressing the user's most recent prompt.`

// DefaultPrompt returns the built-in template
func DefaultPrompt() *PromptTemplate {
	tmpl, err := (&PromptLoader{}).Parse(defaultPrompt)
	if err != nil {
		panic("ash: invalid built-in prompt: " + err.Error())
	}
	return tmpl
}

// EnsureDefaultPrompts 确保默认 prompt 存在
func EnsureDefaultPrompts(promptsDir string) error {
	if err := os.MkdirAll(promptsDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(promptsDir, DefaultPromptName+".md")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(defaultPrompt), 0644); err != nil {
			return fmt.Errorf("failed to create prompt %s: %w", DefaultPromptName, err)
		}
	}

	return nil
}

// HostOS names the running operating system for prompts
func HostOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	default:
		return runtime.GOOS
	}
}

// SystemPrompt loads the named template and renders it for this host. An
// unreadable default template falls back to the built-in one.
func SystemPrompt(loader *PromptLoader, name string) (string, error) {
	if name == "" {
		name = DefaultPromptName
	}

	tmpl, err := loader.Load(name)
	if err != nil {
		var pathErr *fs.PathError
		if name != DefaultPromptName || !errors.As(err, &pathErr) {
			return "", err
		}
		tmpl = DefaultPrompt()
	}

	return tmpl.Render(PromptData{OS: HostOS()})
}
