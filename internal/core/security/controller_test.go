package security

import (
	"testing"
)

func TestSecurityController_CheckCommand(t *testing.T) {
	controller := NewSecurityController(DefaultPolicy())

	t.Run("safe command not flagged", func(t *testing.T) {
		result := controller.CheckCommand("ls -la | grep go")
		if result.Dangerous {
			t.Errorf("Expected safe command, got warning %q", result.Warning)
		}
		if result.Warning != "" {
			t.Errorf("Expected no warning, got %q", result.Warning)
		}
	})

	t.Run("dangerous command flagged", func(t *testing.T) {
		result := controller.CheckCommand("rm -rf /tmp/test")
		if !result.Dangerous {
			t.Error("Expected dangerous command to be flagged")
		}
		if result.Warning != "Dangerous command: rm -rf /tmp/test" {
			t.Errorf("Unexpected warning %q", result.Warning)
		}
	})

	t.Run("dangerous command behind sudo", func(t *testing.T) {
		result := controller.CheckCommand("sudo -E rm -r build")
		if !result.Dangerous {
			t.Error("Expected sudo rm to be flagged")
		}
	})

	t.Run("dangerous command inside pipeline", func(t *testing.T) {
		result := controller.CheckCommand("find . -name '*.tmp' | xargs rm")
		if !result.Dangerous {
			t.Error("Expected xargs rm to be flagged")
		}
	})

	t.Run("dangerous command after sudo user", func(t *testing.T) {
		result := controller.CheckCommand("sudo -u bob shred secret")
		if !result.Dangerous {
			t.Error("Expected sudo -u bob shred to be flagged")
		}
	})

	t.Run("dangerous command after xargs count", func(t *testing.T) {
		result := controller.CheckCommand("pgrep sleep | xargs -n 1 kill")
		if !result.Dangerous {
			t.Error("Expected xargs -n 1 kill to be flagged")
		}
	})

	t.Run("redirect to protected path", func(t *testing.T) {
		result := controller.CheckCommand("echo 127.0.0.1 host >> /etc/hosts")
		if !result.Dangerous {
			t.Error("Expected write to /etc to be flagged")
		}
	})

	t.Run("copy into protected path", func(t *testing.T) {
		result := controller.CheckCommand("cp ./ash /usr/local/bin/ash")
		if !result.Dangerous {
			t.Error("Expected cp into /usr to be flagged")
		}
	})

	t.Run("reading protected path is fine", func(t *testing.T) {
		result := controller.CheckCommand("cat /etc/hosts")
		if result.Dangerous {
			t.Errorf("Expected read to pass, got %q", result.Warning)
		}
	})

	t.Run("path traversal redirect", func(t *testing.T) {
		result := controller.CheckCommand("echo x > ../../notes.txt")
		if !result.Dangerous {
			t.Error("Expected traversal to be flagged")
		}
		if result.Reason != "potential path traversal" {
			t.Errorf("Unexpected reason %q", result.Reason)
		}
	})

	t.Run("unparseable command warns without danger", func(t *testing.T) {
		result := controller.CheckCommand("echo 'unterminated")
		if result.Dangerous {
			t.Error("Expected parse failure not to be marked dangerous")
		}
		if result.Warning == "" {
			t.Error("Expected a warning for unparseable command")
		}
	})
}

func TestSecurityController_WarnDisabled(t *testing.T) {
	controller := NewSecurityController(&SecurityPolicy{Warn: false})

	result := controller.CheckCommand("rm -rf /")
	if result.Dangerous || result.Warning != "" {
		t.Error("Expected no findings when warnings are disabled")
	}
}

func TestSecurityController_NilPolicy(t *testing.T) {
	controller := NewSecurityController(nil)

	if !controller.CheckCommand("shutdown -h now").Dangerous {
		t.Error("Expected default policy to flag shutdown")
	}
}

func TestSecurityController_ExtraDangerousCommands(t *testing.T) {
	policy := DefaultPolicy()
	policy.DangerousCommands = []string{"terraform"}
	controller := NewSecurityController(policy)

	if !controller.CheckCommand("terraform destroy").Dangerous {
		t.Error("Expected configured command to be flagged")
	}
}
