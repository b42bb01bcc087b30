package version

import (
	"strings"
	"testing"
)

func TestVersionHasDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q is not semver-shaped", Version)
	}
}

func TestVersionOverride(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	if Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", Version)
	}
}
