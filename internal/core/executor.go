package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// DefaultShell interprets command strings
const DefaultShell = "sh"

// waitDelay bounds how long output pipes are drained after a cancelled
// command is killed.
const waitDelay = 2 * time.Second

// Runner runs a shell command string
type Runner interface {
	Run(ctx context.Context, command string) (*Result, error)
}

// SpawnError is returned when the shell process could not be started
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Executor handles command execution
type Executor struct {
	shell   string
	timeout time.Duration
}

// NewExecutor creates a new executor. A zero timeout waits indefinitely.
func NewExecutor(shell string, timeout time.Duration) *Executor {
	if shell == "" {
		shell = DefaultShell
	}
	return &Executor{
		shell:   shell,
		timeout: timeout,
	}
}

// Result represents command execution result
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// StdoutString returns stdout with invalid UTF-8 replaced
func (r *Result) StdoutString() string {
	return string(bytes.ToValidUTF8(r.Stdout, []byte("�")))
}

// StderrString returns stderr with invalid UTF-8 replaced
func (r *Result) StderrString() string {
	return string(bytes.ToValidUTF8(r.Stderr, []byte("�")))
}

// Run passes command verbatim to the shell and waits for it. A non-zero exit
// status is a normal result; only a failure to start is an error.
func (e *Executor) Run(ctx context.Context, command string) (*Result, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	execCmd := exec.CommandContext(ctx, e.shell, "-c", command)
	execCmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	slog.Debug("running command", "shell", e.shell, "command", command)

	err := execCmd.Run()

	result := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitError *exec.ExitError
		if !errors.As(err, &exitError) {
			return nil, &SpawnError{Command: command, Err: err}
		}
		result.ExitCode = exitError.ExitCode()
	}

	slog.Debug("command finished", "exit_code", result.ExitCode)

	return result, nil
}
