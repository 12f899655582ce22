package security

import (
	"fmt"
	"strings"
)

// SecurityController coordinates all security checks.
type SecurityController struct {
	policy        *SecurityPolicy
	dangerChecker *DangerousCommandChecker
	pathChecker   *PathAccessChecker
	shellAnalyzer *ShellCommandAnalyzer
}

// NewSecurityController creates a new security controller.
func NewSecurityController(policy *SecurityPolicy) *SecurityController {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &SecurityController{
		policy:        policy,
		dangerChecker: NewDangerousCommandChecker(policy.DangerousCommands...),
		pathChecker:   NewPathAccessChecker(policy),
		shellAnalyzer: NewShellCommandAnalyzer(),
	}
}

// CheckCommand inspects a proposed shell command and describes its risk. The
// first finding wins; a zero result means nothing was flagged.
func (sc *SecurityController) CheckCommand(cmdStr string) *CheckResult {
	if !sc.policy.Warn {
		return &CheckResult{}
	}

	analysis, err := sc.shellAnalyzer.Analyze(cmdStr)
	if err != nil {
		return &CheckResult{
			Warning: "Command could not be analyzed",
			Reason:  err.Error(),
		}
	}

	// Check 1: Dangerous command detection
	for _, call := range analysis.Calls {
		if sc.dangerChecker.IsDangerous(call) {
			return &CheckResult{
				Dangerous: true,
				Warning:   fmt.Sprintf("Dangerous command: %s", call),
				Reason:    "Command is in the dangerous list",
			}
		}
	}
	if pattern, ok := sc.dangerChecker.MatchesPattern(cmdStr); ok {
		return &CheckResult{
			Dangerous: true,
			Warning:   "Dangerous pattern detected",
			Reason:    fmt.Sprintf("matches %q", pattern),
		}
	}

	// Check 2: Writes to protected paths
	written := append([]string{}, analysis.WriteTargets...)
	for _, call := range analysis.Calls {
		written = append(written, sc.pathChecker.WrittenPaths(call)...)
	}
	for _, p := range written {
		if sc.pathChecker.IsProtected(p) {
			return &CheckResult{
				Dangerous: true,
				Warning:   fmt.Sprintf("Writes to protected path %s", p),
				Reason:    "Path is in the protected list",
			}
		}
	}

	// Check 3: Redirection out of the working directory
	for _, target := range analysis.WriteTargets {
		if strings.Contains(target, "../") {
			return &CheckResult{
				Dangerous: true,
				Warning:   "Dangerous shell operation detected",
				Reason:    "potential path traversal",
			}
		}
	}

	return &CheckResult{}
}
