package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coelacanthushex/ligstyle/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "ligstyle",
	Short: "Generate the Iosevka language-specific ligation sets userstyle",
	Long: `Expand the built-in catalogue of languages and syntax highlighter
conventions into a userstyle enabling Iosevka's language-specific
ligation sets on code blocks.

Run without a subcommand to regenerate the userstyle.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	// Default behavior: run generate when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", defaultConfigPath, "Config file path")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("log-level", "info", "Log level: "+strings.Join(log.AllLevels, "|"))
	pf.String("log-format", "text", "Log format: "+strings.Join(log.AllFormats, "|"))
	pf.String("catalogue", "", "YAML catalogue replacing the built-in one")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(userscriptCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging installs the default slog logger writing to stderr.
func setupLogging(cmd *cobra.Command) error {
	level := getStringWithFallback("log-level", "log.level", "info")
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		level = "error"
	case getBoolWithFallback("verbose", "verbose", false):
		level = "debug"
	}
	format := getStringWithFallback("log-format", "log.format", "text")

	handler, err := log.NewHandler(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
