package security

// SecurityPolicy defines the security configuration.
//
// The policy only shapes the warning shown next to a proposed command. It
// never blocks execution: the user's confirmation is the only gate.
type SecurityPolicy struct {
	// Warn enables risk hints in the confirmation prompt.
	Warn bool `mapstructure:"warn"`

	// DangerousCommands extends the built-in list of dangerous command names.
	DangerousCommands []string `mapstructure:"dangerous_commands"`

	// ProtectedPaths are paths whose modification is flagged.
	ProtectedPaths []string `mapstructure:"protected_paths"`
}

// DefaultProtectedPaths are flagged when no protected paths are configured.
var DefaultProtectedPaths = []string{
	"/etc", "/usr", "/bin", "/sbin", "/boot", "/System", "/Library",
}

// DefaultPolicy returns the default security policy.
func DefaultPolicy() *SecurityPolicy {
	return &SecurityPolicy{
		Warn:              true,
		DangerousCommands: []string{},
		ProtectedPaths:    append([]string{}, DefaultProtectedPaths...),
	}
}
