package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Lin-Jiong-HDU/ash/internal/ai"
	"github.com/Lin-Jiong-HDU/ash/internal/conversation"
	"github.com/Lin-Jiong-HDU/ash/internal/core/security"
	"github.com/google/uuid"
)

// Decision is the user's answer to a proposed command
type Decision int

const (
	// DecisionSkip leaves the command unexecuted
	DecisionSkip Decision = iota
	// DecisionRun executes the command and prints its output
	DecisionRun
	// DecisionInterpret executes the command and asks the model to explain the output
	DecisionInterpret
)

func (d Decision) String() string {
	switch d {
	case DecisionRun:
		return "run"
	case DecisionInterpret:
		return "interpret"
	default:
		return "skip"
	}
}

// Confirmer asks the user what to do with a proposed command
type Confirmer interface {
	Confirm(command string, check *security.CheckResult) (Decision, error)
}

// Engine orchestrates one conversational turn: query, parse, dispatch
type Engine struct {
	completer  ai.Completer
	runner     Runner
	confirmer  Confirmer
	security   *security.SecurityController
	transcript *conversation.Transcript
	renderer   *conversation.Renderer
	style      *StyleConfig
	out        io.Writer
	errOut     io.Writer
	sessionID  string
	logger     *slog.Logger
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithOutput sets the writers for regular and error output
func WithOutput(out, errOut io.Writer) EngineOption {
	return func(e *Engine) {
		e.out = out
		e.errOut = errOut
	}
}

// WithRenderer renders plain replies as markdown
func WithRenderer(r *conversation.Renderer) EngineOption {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithSecurity attaches risk hints to proposed commands
func WithSecurity(sc *security.SecurityController) EngineOption {
	return func(e *Engine) {
		e.security = sc
	}
}

// WithStyle overrides the default styles
func WithStyle(s *StyleConfig) EngineOption {
	return func(e *Engine) {
		e.style = s
	}
}

// NewEngine creates a new engine with an empty transcript
func NewEngine(completer ai.Completer, runner Runner, confirmer Confirmer, opts ...EngineOption) *Engine {
	e := &Engine{
		completer:  completer,
		runner:     runner,
		confirmer:  confirmer,
		transcript: conversation.NewTranscript(),
		style:      DefaultStyleConfig(),
		out:        os.Stdout,
		errOut:     os.Stderr,
		sessionID:  uuid.New().String(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = slog.With("session", e.sessionID)
	return e
}

// Transcript returns the session transcript
func (e *Engine) Transcript() *conversation.Transcript {
	return e.transcript
}

// SessionID identifies this session in logs
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Process handles one user input from query to output. Failures of the model
// call, reply parsing and command execution are reported and swallowed; only
// a broken confirmation input is returned.
func (e *Engine) Process(ctx context.Context, input string) error {
	e.transcript.AddUser(input)

	e.logger.Debug("sending query", "entries", e.transcript.Len())
	raw, err := e.completer.Send(ctx, e.transcript.Query(input))
	if err != nil {
		e.reportf("Error sending request: %v", err)
		return nil
	}

	reply, err := conversation.ParseReply(raw)
	if err != nil {
		e.logger.Debug("reply rejected", "raw", raw)
		e.reportf("Error deserializing response: %v", err)
		return nil
	}

	e.transcript.AddAI(reply.Text)
	e.logger.Debug("reply parsed", "type", reply.Type)

	if !reply.IsCommand() {
		fmt.Fprintf(e.out, "%s %s\n", e.style.Marker("gpt>"), e.renderer.Render(reply.Text))
		return nil
	}

	return e.dispatchCommand(ctx, reply.Text)
}

func (e *Engine) dispatchCommand(ctx context.Context, command string) error {
	check := &security.CheckResult{}
	if e.security != nil {
		check = e.security.CheckCommand(command)
	}

	decision, err := e.confirmer.Confirm(command, check)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	e.logger.Debug("command confirmed", "decision", decision, "dangerous", check.Dangerous)

	if decision == DecisionSkip {
		return nil
	}

	result, err := e.runner.Run(ctx, command)
	if err != nil {
		e.reportf("Error executing command: %v", err)
		return nil
	}
	if result.ExitCode != 0 {
		e.logger.Debug("command exited", "code", result.ExitCode)
	}

	stdout := result.StdoutString()
	if decision == DecisionRun {
		e.printOutput(stdout)
	}
	if stderr := result.StderrString(); stderr != "" {
		fmt.Fprintln(e.errOut, strings.TrimRight(stderr, "\n"))
	}

	if decision == DecisionInterpret {
		e.interpret(ctx, stdout)
	}
	return nil
}

// interpret sends command output back to the model. The answer is printed
// as-is without reply parsing.
func (e *Engine) interpret(ctx context.Context, output string) {
	raw, err := e.completer.Send(ctx, e.transcript.Query(output))
	if err != nil {
		e.reportf("Error interpreting result: %v", err)
		return
	}

	fmt.Fprintln(e.out, raw)
	e.transcript.AddInterpretation(raw)
}

func (e *Engine) printOutput(stdout string) {
	if stdout == "" {
		return
	}
	fmt.Fprintln(e.out, strings.TrimRight(stdout, "\n"))
}

func (e *Engine) reportf(format string, args ...any) {
	fmt.Fprintln(e.errOut, e.style.Error(fmt.Sprintf(format, args...)))
}
