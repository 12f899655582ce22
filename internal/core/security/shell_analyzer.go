package security

import (
	"bytes"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Call is one simple command found in a shell string.
type Call struct {
	Name string
	Args []string
}

// String joins the call back into a readable command line.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Analysis is the parsed structure of a shell command string.
type Analysis struct {
	Calls []Call
	// WriteTargets are files written by output redirections.
	WriteTargets []string
}

// CheckResult represents the result of a security check.
type CheckResult struct {
	Dangerous bool
	Warning   string
	Reason    string
}

// wrappers run their first operand as a command. Each maps to the options
// whose value is the following word.
var wrappers = map[string]map[string]bool{
	"sudo":    optionSet("-u", "-g", "-h", "-p", "-C", "-U", "-r", "-t", "-D", "--user", "--group", "--host", "--prompt", "--chdir"),
	"doas":    optionSet("-u", "-C"),
	"env":     optionSet("-u", "-C", "-S", "--unset", "--chdir", "--split-string"),
	"nohup":   optionSet(),
	"time":    optionSet("-f", "-o", "--format", "--output"),
	"exec":    optionSet("-a"),
	"command": optionSet(),
	"xargs":   optionSet("-n", "-I", "-L", "-P", "-s", "-d", "-E", "-a", "--max-args", "--max-procs", "--delimiter", "--arg-file"),
	"nice":    optionSet("-n", "--adjustment"),
}

func optionSet(opts ...string) map[string]bool {
	set := make(map[string]bool, len(opts))
	for _, o := range opts {
		set[o] = true
	}
	return set
}

// ShellCommandAnalyzer parses shell commands for analysis.
type ShellCommandAnalyzer struct {
	parser *syntax.Parser
}

// NewShellCommandAnalyzer creates a new shell analyzer.
func NewShellCommandAnalyzer() *ShellCommandAnalyzer {
	return &ShellCommandAnalyzer{
		parser: syntax.NewParser(syntax.Variant(syntax.LangBash)),
	}
}

// Analyze parses cmdStr and collects every simple command and redirection
// target, including those nested in pipelines, lists and subshells.
func (sa *ShellCommandAnalyzer) Analyze(cmdStr string) (*Analysis, error) {
	prog, err := sa.parser.Parse(strings.NewReader(cmdStr), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	analysis := &Analysis{}
	syntax.Walk(prog, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.CallExpr:
			if len(n.Args) == 0 {
				return true
			}
			words := make([]string, len(n.Args))
			for i, w := range n.Args {
				words[i] = wordString(w)
			}
			analysis.Calls = append(analysis.Calls, unwrap(words)...)
		case *syntax.Redirect:
			if n.Word != nil && isWriteRedirect(n.Op) {
				analysis.WriteTargets = append(analysis.WriteTargets, wordString(n.Word))
			}
		}
		return true
	})

	return analysis, nil
}

// unwrap returns the call itself plus the command run by a wrapper such as
// sudo, so both are checked.
func unwrap(words []string) []Call {
	calls := []Call{{Name: words[0], Args: words[1:]}}
	valued, ok := wrappers[baseName(words[0])]
	if !ok {
		return calls
	}
	for i := 1; i < len(words); i++ {
		w := words[i]
		switch {
		case w == "--":
			if i+1 < len(words) {
				return append(calls, unwrap(words[i+1:])...)
			}
			return calls
		case valued[w]:
			i++
		case strings.HasPrefix(w, "-") || strings.Contains(w, "="):
		default:
			return append(calls, unwrap(words[i:])...)
		}
	}
	return calls
}

func isWriteRedirect(op syntax.RedirOperator) bool {
	switch op {
	case syntax.RdrOut, syntax.AppOut, syntax.ClbOut, syntax.RdrAll, syntax.AppAll:
		return true
	}
	return false
}

// wordString flattens a word into its literal text, printing anything that
// is not a plain or quoted literal as shell source.
func wordString(w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, qp := range p.Parts {
				if lit, ok := qp.(*syntax.Lit); ok {
					sb.WriteString(lit.Value)
				} else {
					sb.WriteString(printNode(qp))
				}
			}
		default:
			sb.WriteString(printNode(p))
		}
	}
	return sb.String()
}

func printNode(node syntax.Node) string {
	var buf bytes.Buffer
	if err := syntax.NewPrinter().Print(&buf, node); err != nil {
		return ""
	}
	return buf.String()
}
