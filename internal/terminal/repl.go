package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUserExit 表示用户请求退出
var ErrUserExit = errors.New("user requested exit")

const (
	// PromptMarker is shown before each input line
	PromptMarker = "ash: "
	// ExitCommand ends the session
	ExitCommand = "exit"

	exitMessage = "Exiting..."
)

// Processor handles one line of user input
type Processor interface {
	Process(ctx context.Context, input string) error
}

// REPL 交互式循环
type REPL struct {
	engine Processor
	reader LineReader
	out    io.Writer
}

// NewREPL 创建 REPL
func NewREPL(engine Processor, reader LineReader, out io.Writer) *REPL {
	return &REPL{
		engine: engine,
		reader: reader,
		out:    out,
	}
}

// ProcessInput 处理用户输入
func (r *REPL) ProcessInput(ctx context.Context, input string) error {
	if input == ExitCommand {
		fmt.Fprintln(r.out, exitMessage)
		return ErrUserExit
	}

	return r.engine.Process(ctx, input)
}

// Run 运行 REPL 主循环，直到用户输入 exit 或输入结束
func (r *REPL) Run(ctx context.Context) error {
	for {
		line, err := r.reader.ReadLine(PromptMarker)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				fmt.Fprintln(r.out, exitMessage)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if h, ok := r.reader.(historyAppender); ok && input != "" {
			h.AppendHistory(input)
		}

		if err := r.ProcessInput(ctx, input); err != nil {
			if errors.Is(err, ErrUserExit) {
				return nil
			}
			return err
		}
	}
}
