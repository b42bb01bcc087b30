package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"graft/internal/diagfmt"
	"graft/internal/driver"
	"graft/internal/parser"
	"graft/internal/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rs",
	Short: "Parse a Rust source file and output its syntax tree",
	Long:  `Parse analyzes a Rust source file and outputs its abstract syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().String("profile", "", "grammar profile (full|derive), defaults to the project manifest")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	profile, _, err := resolveProfile(cmd, filepath.Dir(filePath))
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, parser.Options{Profile: profile})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if len(result.Diags) > 0 {
		diagfmt.Pretty(os.Stderr, result.Diags, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}
	if result.AST == nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("parse failed: %s", filePath)
	}

	switch format {
	case "pretty":
		out, err := printer.FormatFile(result.AST, printer.Options{})
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.AST)
	case "tree":
		return diagfmt.FormatASTTree(os.Stdout, result.AST)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
