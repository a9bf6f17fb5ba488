package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coelacanthushex/ligstyle"
)

var userscriptCmd = &cobra.Command{
	Use:   "userscript",
	Short: "Write the auxiliary userscript",
	Long: `Write the companion userscript for sites whose highlighter only shows the
language as text (Shiki on typescriptlang.org). The script copies it into a
data-language attribute that the userstyle matches.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := k.String("userscript.output")
		if path == "" {
			path = ligstyle.DefaultUserscriptPath
		}
		n, err := ligstyle.WriteUserscript(path, buildUserscriptMeta())
		if err != nil {
			return fmt.Errorf("userscript failed: %w", err)
		}
		slog.Info("wrote userscript", "path", path, "bytes", n)
		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
		}
		return nil
	},
}

func init() {
	userscriptCmd.Flags().StringP("output", "o", ligstyle.DefaultUserscriptPath, "Output file")
	_ = userscriptCmd.Flags().SetAnnotation("output", configKeyAnnotation, []string{"userscript.output"})
}
