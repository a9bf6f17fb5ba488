package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .ligstyle.yaml config file",
	Long:  `Create a .ligstyle.yaml configuration file in the current directory with the published defaults.`,
	// An existing config may be the broken file being replaced.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}
		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# ligstyle configuration
# Every key can also be set with LIGSTYLE_<KEY>, e.g. LIGSTYLE_LINT_MAX_ISSUES
# for lint.max-issues (dots and hyphens become underscores).

verbose: false
log:
  level: info
  format: text              # text | logfmt | json

# Catalogue replacing the built-in one (YAML with sets, vocabulary, sites)
# catalogue: catalogue.yaml

generate:
  output: Enable-Iosevka-language-specific-ligation-sets.user.css

# Userstyle header
meta:
  name: Enable Iosevka language-specific ligation sets
  version: 1.6.0
  namespace: Coelacanthus
  author: Coelacanthus
  license: MPL-2.0

userscript:
  output: Enable-Iosevka-language-specific-ligation-sets-aux-userscript.user.js
  match:
    - "https://www.typescriptlang.org/*"

lint:
  paths:
    - "*.user.css"
  strict: false
  output-format: issues     # issues | summary | full | json
  max-issues: 0             # 0 = unlimited
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
