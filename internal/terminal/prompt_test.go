package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Lin-Jiong-HDU/ash/internal/core"
	"github.com/Lin-Jiong-HDU/ash/internal/core/security"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected core.Decision
	}{
		{"yes", "y\n", core.DecisionRun},
		{"yes uppercase", "Y\n", core.DecisionRun},
		{"interpret", "i\n", core.DecisionInterpret},
		{"interpret padded", "  I \n", core.DecisionInterpret},
		{"no", "n\n", core.DecisionSkip},
		{"anything else", "yes please\n", core.DecisionSkip},
		{"empty line", "\n", core.DecisionSkip},
		{"end of input", "", core.DecisionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			reader := NewBufferedReader(strings.NewReader(tt.input), &output)

			decision, err := NewConfirmer(reader, &output).Confirm("ls -la", &security.CheckResult{})
			if err != nil {
				t.Fatalf("Confirm failed: %v", err)
			}
			if decision != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, decision)
			}
			if !strings.Contains(output.String(), ConfirmMarker) || !strings.Contains(output.String(), "ls -la") {
				t.Errorf("Expected confirmation prompt, got %q", output.String())
			}
		})
	}
}

func TestConfirm_ShowsWarning(t *testing.T) {
	var output bytes.Buffer
	reader := NewBufferedReader(strings.NewReader("n\n"), &output)
	check := &security.CheckResult{
		Dangerous: true,
		Warning:   "Dangerous command: rm -rf /",
		Reason:    "Command is in the dangerous list",
	}

	if _, err := NewConfirmer(reader, &output).Confirm("rm -rf /", check); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, "Dangerous command: rm -rf /") {
		t.Errorf("Expected warning in output, got %q", outputStr)
	}
	if !strings.Contains(outputStr, "Command is in the dangerous list") {
		t.Errorf("Expected reason in output, got %q", outputStr)
	}
}

func TestConfirm_NilCheck(t *testing.T) {
	var output bytes.Buffer
	reader := NewBufferedReader(strings.NewReader("y\n"), &output)

	decision, err := NewConfirmer(reader, &output).Confirm("pwd", nil)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if decision != core.DecisionRun {
		t.Errorf("Expected run, got %v", decision)
	}
}

func TestParseDecision(t *testing.T) {
	if ParseDecision("y") != core.DecisionRun {
		t.Error("Expected y to run")
	}
	if ParseDecision("i") != core.DecisionInterpret {
		t.Error("Expected i to interpret")
	}
	if ParseDecision("no") != core.DecisionSkip {
		t.Error("Expected other input to skip")
	}
}
