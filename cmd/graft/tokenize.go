package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graft/internal/diagfmt"
	"graft/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs",
	Short: "Tokenize a Rust source file",
	Long:  `Tokenize breaks a Rust source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if len(result.Diags) > 0 {
		diagfmt.Pretty(os.Stderr, result.Diags, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
