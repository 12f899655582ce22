package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Lin-Jiong-HDU/ash/internal/core"
	"github.com/Lin-Jiong-HDU/ash/internal/core/security"
)

// ConfirmMarker precedes a proposed command
const ConfirmMarker = "run? (y/i/n)>"

// Confirmer asks the user whether to run a proposed command
type Confirmer struct {
	reader LineReader
	out    io.Writer
	style  *core.StyleConfig
}

// NewConfirmer creates a Confirmer reading answers from reader
func NewConfirmer(reader LineReader, out io.Writer) *Confirmer {
	return &Confirmer{
		reader: reader,
		out:    out,
		style:  core.DefaultStyleConfig(),
	}
}

// Confirm shows the command with any risk hint and reads one answer.
// End of input counts as a skip.
func (c *Confirmer) Confirm(command string, checkResult *security.CheckResult) (core.Decision, error) {
	fmt.Fprintf(c.out, "%s %s\n", c.style.Marker(ConfirmMarker), command)

	if checkResult != nil && checkResult.Warning != "" {
		fmt.Fprintln(c.out, c.style.Warning("⚠️  "+checkResult.Warning))
		if checkResult.Reason != "" {
			fmt.Fprintln(c.out, c.style.Subtle("   "+checkResult.Reason))
		}
	}

	answer, err := c.reader.ReadLine("")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return core.DecisionSkip, nil
		}
		return core.DecisionSkip, err
	}

	return ParseDecision(answer), nil
}

// ParseDecision maps an answer to a decision: "y" runs, "i" runs and
// interprets, anything else skips. Case and surrounding spaces are ignored.
func ParseDecision(answer string) core.Decision {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y":
		return core.DecisionRun
	case "i":
		return core.DecisionInterpret
	default:
		return core.DecisionSkip
	}
}
