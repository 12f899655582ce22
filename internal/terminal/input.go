package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// LineReader reads one line of user input after showing a prompt
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// historyAppender is implemented by readers that keep line history
type historyAppender interface {
	AppendHistory(line string)
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewStdinReader returns a line-editing reader when both stdin and stdout are
// terminals, and a plain buffered reader otherwise.
func NewStdinReader() LineReader {
	if IsTerminal(os.Stdin) && IsTerminal(os.Stdout) {
		return NewEditingReader()
	}
	return NewBufferedReader(os.Stdin, os.Stdout)
}

// BufferedReader reads lines from any io.Reader
type BufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufferedReader 创建 BufferedReader
func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints prompt and reads up to the next newline. A final line
// without newline is returned; io.EOF is returned only when nothing was read.
func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op
func (r *BufferedReader) Close() error { return nil }

// EditingReader provides line editing and in-session history
type EditingReader struct {
	state *liner.State
}

// NewEditingReader takes over the terminal for line editing. Close must be
// called to restore it.
func NewEditingReader() *EditingReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &EditingReader{state: state}
}

// ReadLine reads a line with editing. Ctrl-C and Ctrl-D both end input with
// io.EOF.
func (r *EditingReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		fmt.Println()
		return "", io.EOF
	}
	return line, err
}

// AppendHistory records a line for up-arrow recall
func (r *EditingReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close restores the terminal
func (r *EditingReader) Close() error {
	return r.state.Close()
}
