package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graft/internal/diagfmt"
	"graft/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Parse every source file in a project and report diagnostics",
	Long:  `Check parses the given files or every .rs file under the project root, caching results for unchanged files`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("profile", "", "grammar profile (full|derive), defaults to the project manifest")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "ignore and do not update the result cache")
	checkCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	profile, manifest, err := resolveProfile(cmd, cwd)
	if err != nil {
		return err
	}

	maxDiagnostics := manifest.Check.MaxDiagnostics
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		if err != nil {
			return err
		}
	}

	files, err := collectCheckTargets(cwd, args, manifest.Check.Include)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "check: no source files found")
		}
		return nil
	}

	var cache *driver.DiskCache
	if manifest.Check.Cache && !noCache {
		cache, err = driver.OpenDiskCache("graft")
		if err != nil && !quiet {
			fmt.Fprintf(os.Stderr, "check: cache disabled: %v\n", err)
		}
	}

	opts := driver.CheckOptions{
		Profile:        profile,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	}

	var reports []driver.FileReport
	if shouldUseTUI(mode) && format == "pretty" && !quiet {
		reports, err = runCheckWithUI(cmd.Context(), "graft check", files, opts)
	} else {
		reports, err = driver.CheckPaths(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		renderCheckPretty(cmd, reports, quiet)
	case "json":
		if err := renderCheckJSON(reports); err != nil {
			return err
		}
	}

	broken := 0
	for i := range reports {
		if reports[i].HasErrors() {
			broken++
		}
	}
	if broken > 0 {
		return fmt.Errorf("check: %d of %d files failed", broken, len(reports))
	}
	return nil
}

// collectCheckTargets resolves the explicit arguments, or falls back to
// walking the project root with the manifest's include patterns.
func collectCheckTargets(cwd string, args, include []string) ([]string, error) {
	if len(args) == 0 {
		return driver.CollectFiles(cwd, include)
	}
	var files []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			sub, err := driver.CollectFiles(arg, nil)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		files = append(files, arg)
	}
	return files, nil
}

func renderCheckPretty(cmd *cobra.Command, reports []driver.FileReport, quiet bool) {
	opts := diagfmt.PrettyOpts{
		Color:    useColor(cmd, os.Stderr),
		Context:  2,
		PathMode: diagfmt.PathModeAuto,
	}
	cached := 0
	for i := range reports {
		r := &reports[i]
		if r.FromCache {
			cached++
		}
		if len(r.Diags) > 0 {
			diagfmt.Pretty(os.Stderr, r.Diags, r.FileSet, opts)
		}
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "checked %d files (%d cached)\n", len(reports), cached)
	}
}

func renderCheckJSON(reports []driver.FileReport) error {
	all := make([]diagfmt.DiagnosticJSON, 0)
	for i := range reports {
		r := &reports[i]
		if len(r.Diags) == 0 {
			continue
		}
		out := diagfmt.BuildDiagnosticsOutput(r.Diags, r.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
		})
		all = append(all, out.Diagnostics...)
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(diagfmt.DiagnosticsOutput{Diagnostics: all, Count: len(all)})
}
