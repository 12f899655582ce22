package security

import (
	"strings"
)

// DangerousCommandChecker detects dangerous commands.
type DangerousCommandChecker struct {
	dangerousCommands map[string]bool
	dangerousPrefixes []string
	dangerousPatterns []string
}

// NewDangerousCommandChecker creates a new danger checker. extra names are
// added to the built-in list.
func NewDangerousCommandChecker(extra ...string) *DangerousCommandChecker {
	dc := &DangerousCommandChecker{
		dangerousCommands: map[string]bool{},
		dangerousPrefixes: []string{"mkfs.", "format."},
		dangerousPatterns: []string{
			"rm -rf /",
			"rm -rf .*",
			"rm -rf ~",
			"chmod 777 /",
			"chmod -R 777",
			":(){ :|:& };:",
		},
	}

	for _, name := range []string{
		"rm", "rmdir", "dd", "mkfs", "format", "shred",
		"chmod", "chown", "userdel", "groupdel", "fdisk",
		"shutdown", "reboot", "halt", "kill", "killall", "pkill",
	} {
		dc.dangerousCommands[name] = true
	}
	for _, name := range extra {
		dc.dangerousCommands[name] = true
	}

	return dc
}

// IsDangerous checks if a single command invocation is dangerous.
func (dc *DangerousCommandChecker) IsDangerous(call Call) bool {
	name := baseName(call.Name)
	if dc.dangerousCommands[name] {
		return true
	}
	for _, prefix := range dc.dangerousPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// MatchesPattern checks the raw command string against known destructive
// patterns.
func (dc *DangerousCommandChecker) MatchesPattern(cmdStr string) (string, bool) {
	for _, pattern := range dc.dangerousPatterns {
		if strings.Contains(cmdStr, pattern) {
			return pattern, true
		}
	}
	return "", false
}

func baseName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
