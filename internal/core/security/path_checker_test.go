package security

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathAccessChecker_IsProtected(t *testing.T) {
	checker := NewPathAccessChecker(&SecurityPolicy{ProtectedPaths: []string{"/etc"}})

	tests := []struct {
		path      string
		protected bool
	}{
		{"/etc", true},
		{"/etc/passwd", true},
		{"/etcetera/file", false},
		{"/tmp/file", false},
	}

	for _, tt := range tests {
		if got := checker.IsProtected(tt.path); got != tt.protected {
			t.Errorf("IsProtected(%s) = %v, want %v", tt.path, got, tt.protected)
		}
	}
}

func TestPathAccessChecker_DefaultPaths(t *testing.T) {
	checker := NewPathAccessChecker(&SecurityPolicy{})

	if !checker.IsProtected("/usr/bin/env") {
		t.Error("Expected /usr to be protected by default")
	}
}

func TestPathAccessChecker_SymlinkResolved(t *testing.T) {
	tmpDir := t.TempDir()
	protected := filepath.Join(tmpDir, "protected")
	if err := os.MkdirAll(protected, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(protected, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	checker := NewPathAccessChecker(&SecurityPolicy{ProtectedPaths: []string{protected}})

	if !checker.IsProtected(filepath.Join(link, "new-file")) {
		t.Error("Expected path through symlink to be protected")
	}
}

func TestPathAccessChecker_HomeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	checker := NewPathAccessChecker(&SecurityPolicy{ProtectedPaths: []string{filepath.Join(home, ".ssh")}})

	if !checker.IsProtected("~/.ssh/authorized_keys") {
		t.Error("Expected ~/.ssh to be protected")
	}
}

func TestPathAccessChecker_WrittenPaths(t *testing.T) {
	checker := NewPathAccessChecker(DefaultPolicy())

	paths := checker.WrittenPaths(Call{Name: "cp", Args: []string{"-r", "src/", "~/backup"}})
	if len(paths) != 2 || paths[0] != "src/" || paths[1] != "~/backup" {
		t.Errorf("Unexpected paths %v", paths)
	}

	paths = checker.WrittenPaths(Call{Name: "dd", Args: []string{"if=/dev/zero", "of=/dev/sda"}})
	if len(paths) != 1 || paths[0] != "/dev/sda" {
		t.Errorf("Unexpected dd paths %v", paths)
	}

	if paths := checker.WrittenPaths(Call{Name: "cat", Args: []string{"/etc/hosts"}}); paths != nil {
		t.Errorf("Expected no paths for read command, got %v", paths)
	}
}
