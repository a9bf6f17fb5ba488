package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coelacanthushex/ligstyle"
	core "github.com/coelacanthushex/ligstyle/internal/ligstyle"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the userstyle",
	Long: `Expand every language alias of the catalogue against the highlighter
vocabulary and site patterns and write the resulting userstyle.

With --check nothing is written: the command fails with a diff when the
file on disk is not what would be generated.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("output", "o", ligstyle.DefaultOutputPath, "Output file")
	f.Bool("check", false, "Fail if the output file is out of date instead of writing it")
	f.Bool("stdout", false, "Write the userstyle to stdout")
	f.Bool("lint", false, "Lint the written file after generation")
	_ = f.SetAnnotation("lint", configKeyAnnotation, []string{"generate.lint"})
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := core.ShouldUseColors(getBoolWithFallback("color", "color", false))
	out := cmd.OutOrStdout()

	if getBoolWithFallback("stdout", "generate.stdout", false) {
		config.Writer = out
		config.Check = false
	}

	result, err := ligstyle.Generate(config)
	if errors.Is(err, ligstyle.ErrStale) {
		if !quiet {
			fmt.Fprintln(out, core.RenderStyle(core.StyleRed, config.OutputPath+" is out of date", useColors))
			fmt.Fprint(out, result.Diff)
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if config.Writer != nil {
		return nil
	}

	if !quiet {
		if result.UpToDate {
			fmt.Fprintln(out, core.RenderStyle(core.StyleGreen, config.OutputPath+" is up to date", useColors))
		} else {
			fmt.Fprintf(out, "%s %s\n", core.RenderStyle(core.StyleGreen, "Generated", useColors), result.OutputPath)
			fmt.Fprintf(out, "  Feature tags:    %d\n", result.Tags)
			fmt.Fprintf(out, "  Aliases:         %d\n", result.Aliases)
			fmt.Fprintf(out, "  Rules generated: %s\n", humanize.Comma(int64(result.RulesGenerated)))
			fmt.Fprintf(out, "  Size:            %s\n", humanize.Bytes(uint64(result.BytesWritten)))
		}
	}

	if k.Bool("generate.lint") {
		lintConfig := buildLintConfig()
		lintConfig.Paths = []string{config.OutputPath}
		return runLint(cmd, lintConfig)
	}
	return nil
}
