package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "graft.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"

[grammar]
profile = "derive"

[fmt]
indent_width = 2
use_tabs = false

[check]
include = ["src/**/*.rs"]
max_diagnostics = 50
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q", m.Package.Name)
	}
	if m.Grammar.Profile != "derive" {
		t.Errorf("profile = %q", m.Grammar.Profile)
	}
	if m.Fmt.IndentWidth != 2 {
		t.Errorf("indent_width = %d", m.Fmt.IndentWidth)
	}
	if len(m.Check.Include) != 1 || m.Check.MaxDiagnostics != 50 {
		t.Errorf("check section = %+v", m.Check)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[package]
name = "bare"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Grammar.Profile != "full" {
		t.Errorf("default profile = %q", m.Grammar.Profile)
	}
	if m.Fmt.IndentWidth != 4 {
		t.Errorf("default indent_width = %d", m.Fmt.IndentWidth)
	}
	if m.Check.MaxDiagnostics != 20 {
		t.Errorf("default max_diagnostics = %d", m.Check.MaxDiagnostics)
	}
}

func TestLoadManifestRejectsBadProfile(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[grammar]
profile = "strict"
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected an error for an unknown profile")
	}
}

func TestLoadManifestRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[grammar]
profil = "full"
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected an error for a misspelled key")
	}
}

func TestFindProjectRoot(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"x\"\n")
	nested := filepath.Join(dir, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	root, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != want {
		t.Errorf("root = %q, want %q", resolved, want)
	}
}

func TestLoadOrDefaultWithoutManifest(t *testing.T) {
	m, path, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("expected empty manifest path, got %q", path)
	}
	if m.Grammar.Profile != "full" {
		t.Errorf("profile = %q", m.Grammar.Profile)
	}
}
