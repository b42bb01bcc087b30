package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the parsed graft.toml. Every section is optional; zero
// values fall back to the defaults below.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Grammar GrammarSection `toml:"grammar"`
	Fmt     FmtSection     `toml:"fmt"`
	Check   CheckSection   `toml:"check"`
}

// PackageSection names the project.
type PackageSection struct {
	Name string `toml:"name"`
}

// GrammarSection selects the accepted grammar subset.
type GrammarSection struct {
	// Profile is "full" or "derive".
	Profile string `toml:"profile"`
}

// FmtSection configures the printer.
type FmtSection struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

// CheckSection configures batch parsing.
type CheckSection struct {
	// Include lists glob patterns relative to the project root; empty
	// means every .rs file under the root.
	Include        []string `toml:"include"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	// Cache toggles the on-disk result cache.
	Cache bool `toml:"cache"`
}

// DefaultManifest returns the configuration used when no graft.toml exists.
func DefaultManifest() Manifest {
	return Manifest{
		Grammar: GrammarSection{Profile: "full"},
		Fmt:     FmtSection{IndentWidth: 4},
		Check:   CheckSection{MaxDiagnostics: 20, Cache: true},
	}
}

// LoadManifest parses a graft.toml and fills in defaults for absent keys.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Manifest{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := m.validate(path); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadOrDefault locates the manifest from startDir and parses it, falling
// back to defaults when the project has none.
func LoadOrDefault(startDir string) (Manifest, string, error) {
	path, ok, err := FindGraftToml(startDir)
	if err != nil {
		return Manifest{}, "", err
	}
	if !ok {
		return DefaultManifest(), "", nil
	}
	m, err := LoadManifest(path)
	return m, path, err
}

func (m *Manifest) validate(path string) error {
	switch m.Grammar.Profile {
	case "", "full", "derive":
	default:
		return fmt.Errorf("%s: unknown grammar profile %q", path, m.Grammar.Profile)
	}
	if m.Fmt.IndentWidth < 0 {
		return fmt.Errorf("%s: indent_width must not be negative", path)
	}
	if m.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: max_diagnostics must not be negative", path)
	}
	return nil
}
