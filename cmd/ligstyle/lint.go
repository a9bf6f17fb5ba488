package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coelacanthushex/ligstyle"
)

var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Check userstyles for syntax, feature settings and alias coverage",
	Long: `Parse userstyle files and report unbalanced blocks, malformed selectors,
invalid OpenType feature tags, rules that do not set font-feature-settings
and catalogue aliases that no rule enables.

Errors always fail the command; with --strict warnings do too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := buildLintConfig()
		if len(args) > 0 {
			config.Paths = args
		}
		return runLint(cmd, config)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns of userstyles to lint (default: the generated file)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("skip-coverage", false, "Do not check catalogue alias coverage")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// runLint is shared between `ligstyle lint` and `ligstyle generate --lint`.
func runLint(cmd *cobra.Command, config ligstyle.LintConfig) error {
	config.Logger = slog.Default()
	result, err := ligstyle.Lint(config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := ligstyle.DetermineOutputFormat(outputFormat, quiet)
	if !quiet {
		opts := ligstyle.ReportOptions{
			UseColors:       getBoolWithFallback("color", "color", false),
			PrintLines:      getBoolWithFallback("print-lines", "lint.print-lines", true),
			PrintLinterName: getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		}
		if err := ligstyle.WriteOutput(cmd.OutOrStdout(), result, format, opts); err != nil {
			return err
		}
	}

	// Soft gate: errors fail the build, warnings only in strict mode
	if result.ErrorCount > 0 {
		return fmt.Errorf("%w: %d errors", errLintFailed, result.ErrorCount)
	}
	if getBoolWithFallback("strict", "lint.strict", false) && result.WarningCount > 0 {
		return fmt.Errorf("%w: %d warnings in strict mode", errLintFailed, result.WarningCount)
	}
	return nil
}
