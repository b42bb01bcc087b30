package main

import (
	"github.com/spf13/cobra"

	"graft/internal/parser"
	"graft/internal/project"
)

// resolveProfile picks the grammar profile for a command: the --profile flag
// when set, otherwise the project manifest found from startDir.
func resolveProfile(cmd *cobra.Command, startDir string) (parser.GrammarProfile, project.Manifest, error) {
	manifest, _, err := project.LoadOrDefault(startDir)
	if err != nil {
		return parser.ProfileFull, manifest, err
	}
	name, _ := cmd.Flags().GetString("profile")
	if name == "" {
		name = manifest.Grammar.Profile
	}
	profile, err := parser.ParseProfile(name)
	return profile, manifest, err
}
