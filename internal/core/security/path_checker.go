package security

import (
	"os"
	"path/filepath"
	"strings"
)

// writeCommands modify the paths given as arguments.
var writeCommands = map[string]bool{
	"rm":    true, // delete
	"mv":    true, // move/rename
	"cp":    true, // copy
	"touch": true, // create file
	"mkdir": true, // create directory
	"chmod": true, // change permissions
	"chown": true, // change owner
	"tee":   true, // write to stdin and file
	"ln":    true, // link
	"dd":    true,
}

// PathAccessChecker flags writes to protected paths.
type PathAccessChecker struct {
	protected []string
}

// NewPathAccessChecker creates a new path checker.
func NewPathAccessChecker(policy *SecurityPolicy) *PathAccessChecker {
	protected := policy.ProtectedPaths
	if len(protected) == 0 {
		protected = DefaultProtectedPaths
	}
	return &PathAccessChecker{
		protected: protected,
	}
}

// IsProtected checks if a path is a protected path or lies under one.
func (pc *PathAccessChecker) IsProtected(checkPath string) bool {
	// Canonicalize the checked path (resolve symlinks)
	canonicalPath, err := pc.canonicalizePath(checkPath)
	if err != nil {
		return false
	}

	for _, protected := range pc.protected {
		canonicalProtected, err := pc.canonicalizePath(protected)
		if err != nil {
			continue
		}

		if strings.HasPrefix(canonicalPath, canonicalProtected+string(filepath.Separator)) ||
			canonicalPath == canonicalProtected {
			return true
		}
	}

	return false
}

// WrittenPaths returns the path-like arguments of a call that modifies its
// arguments. Other calls yield nothing.
func (pc *PathAccessChecker) WrittenPaths(call Call) []string {
	if !writeCommands[baseName(call.Name)] {
		return nil
	}

	var paths []string
	for _, arg := range call.Args {
		// Skip flags and options
		if strings.HasPrefix(arg, "-") {
			continue
		}
		// dd reads if= and writes of=
		if strings.HasPrefix(arg, "if=") {
			continue
		}
		if strings.HasPrefix(arg, "of=") {
			paths = append(paths, strings.TrimPrefix(arg, "of="))
			continue
		}

		if strings.Contains(arg, "/") || strings.HasPrefix(arg, "~") {
			paths = append(paths, arg)
		}
	}

	return paths
}

// canonicalizePath expands home directory, converts to absolute path,
// and resolves symlinks.
func (pc *PathAccessChecker) canonicalizePath(path string) (string, error) {
	expandedPath := path
	if strings.HasPrefix(expandedPath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		expandedPath = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return "", err
	}

	canonicalPath, err := pc.resolveSymlinksWalkUp(absPath)
	if err != nil {
		return absPath, nil
	}

	return canonicalPath, nil
}

// resolveSymlinksWalkUp walks up the directory tree resolving symlinks
// until we find a path that exists, then rebuilds the path.
func (pc *PathAccessChecker) resolveSymlinksWalkUp(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	parent := filepath.Dir(path)
	base := filepath.Base(path)

	// If we've reached the root, return the path as-is
	if parent == path {
		return path, nil
	}

	resolvedParent, err := pc.resolveSymlinksWalkUp(parent)
	if err != nil {
		return "", err
	}

	return filepath.Join(resolvedParent, base), nil
}
