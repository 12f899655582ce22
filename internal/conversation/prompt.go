package conversation

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
)

// frontMatterDelim fences the TOML header of a prompt file
const frontMatterDelim = "+++"

// PromptLoader 加载 prompt 模板
type PromptLoader struct {
	promptsDir string
}

// NewPromptLoader 创建 PromptLoader
func NewPromptLoader(promptsDir string) *PromptLoader {
	return &PromptLoader{
		promptsDir: promptsDir,
	}
}

// PromptTemplate prompt 模板
type PromptTemplate struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`
	Description string `toml:"description"`

	// SystemPrompt is the template body, before rendering
	SystemPrompt string `toml:"-"`
}

// PromptData is the data available to a prompt body
type PromptData struct {
	OS string
}

// Load 加载指定名称的 prompt
func (l *PromptLoader) Load(name string) (*PromptTemplate, error) {
	path := filepath.Join(l.promptsDir, name+".md")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt: %w", err)
	}

	tmpl, err := l.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", name, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	return tmpl, nil
}

// Parse 解析 prompt 内容
func (l *PromptLoader) Parse(content string) (*PromptTemplate, error) {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	if !strings.HasPrefix(trimmed, frontMatterDelim) {
		// 没有 front matter，整个内容作为 system prompt
		return &PromptTemplate{
			SystemPrompt: strings.TrimSpace(content),
		}, nil
	}

	parts := strings.SplitN(trimmed[len(frontMatterDelim):], frontMatterDelim, 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("unterminated front matter")
	}

	tmpl := &PromptTemplate{}
	if _, err := toml.Decode(parts[0], tmpl); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	tmpl.SystemPrompt = strings.TrimSpace(parts[1])

	return tmpl, nil
}

// Render fills the template body with data
func (p *PromptTemplate) Render(data PromptData) (string, error) {
	t, err := template.New(p.Name).Option("missingkey=error").Parse(p.SystemPrompt)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt %s: %w", p.Name, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", p.Name, err)
	}
	return buf.String(), nil
}

// List 列出所有可用的 prompt
func (l *PromptLoader) List() ([]*PromptTemplate, error) {
	entries, err := os.ReadDir(l.promptsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts directory: %w", err)
	}

	var prompts []*PromptTemplate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		prompt, err := l.Load(name)
		if err != nil {
			continue // 跳过无法加载的文件
		}

		prompts = append(prompts, prompt)
	}

	return prompts, nil
}
