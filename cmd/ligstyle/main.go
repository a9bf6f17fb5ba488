// Package main provides the ligstyle CLI tool for generating the Iosevka
// language-specific ligation sets userstyle.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("ligstyle failed", "err", err)
		os.Exit(1)
	}
}
