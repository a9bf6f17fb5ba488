package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coelacanthushex/ligstyle"
)

const (
	defaultConfigPath = ".ligstyle.yaml"
	envPrefix         = "LIGSTYLE_"

	// configKeyAnnotation renames a flag's koanf key when its name alone
	// would collide with another command's flag or a config section.
	configKeyAnnotation = "ligstyle_config_key"
)

// configSections are the nested blocks of the config file. An env var whose
// first word names one of them is split into section and key.
var configSections = map[string]bool{
	"generate":   true,
	"lint":       true,
	"log":        true,
	"meta":       true,
	"userscript": true,
}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set so
	// flag defaults never shadow the config file).
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f), posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (LIGSTYLE_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key. The first word
// selects the section and the remaining underscores become hyphens:
//
//	LIGSTYLE_GENERATE_OUTPUT  -> generate.output
//	LIGSTYLE_LINT_MAX_ISSUES  -> lint.max-issues
//	LIGSTYLE_SKIP_COVERAGE    -> skip-coverage
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, rest, ok := strings.Cut(s, "_")
	if ok && configSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(s, "_", "-")
}

// flagKey returns the koanf key a changed flag is stored under.
func flagKey(f *pflag.Flag) string {
	if keys := f.Annotations[configKeyAnnotation]; len(keys) > 0 {
		return keys[0]
	}
	return f.Name
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() ligstyle.Config {
	return ligstyle.Config{
		OutputPath:    getStringWithFallback("output", "generate.output", ligstyle.DefaultOutputPath),
		CataloguePath: getStringWithFallback("catalogue", "catalogue", ""),
		Metadata:      buildMetadata(),
		Check:         getBoolWithFallback("check", "generate.check", false),
	}
}

// buildMetadata overlays meta.* keys on the published header.
func buildMetadata() ligstyle.Metadata {
	meta := ligstyle.DefaultMetadata()
	overlay := []struct {
		key   string
		field *string
	}{
		{"meta.name", &meta.Name},
		{"meta.version", &meta.Version},
		{"meta.description", &meta.Description},
		{"meta.namespace", &meta.Namespace},
		{"meta.homepage", &meta.HomepageURL},
		{"meta.support", &meta.SupportURL},
		{"meta.author", &meta.Author},
		{"meta.license", &meta.License},
		{"meta.copyright", &meta.Copyright},
	}
	for _, o := range overlay {
		if v := k.String(o.key); v != "" {
			*o.field = v
		}
	}
	return meta
}

// buildUserscriptMeta overlays userscript.* keys on the published header.
func buildUserscriptMeta() ligstyle.UserscriptMeta {
	meta := ligstyle.DefaultUserscriptMeta()
	if v := k.String("userscript.version"); v != "" {
		meta.Version = v
	}
	if v := k.String("meta.author"); v != "" {
		meta.Author = v
		meta.Copyright = v
	}
	if v := k.String("meta.namespace"); v != "" {
		meta.Namespace = v
	}
	if matches := k.Strings("userscript.match"); len(matches) > 0 {
		meta.Matches = matches
	}
	return meta
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() ligstyle.LintConfig {
	var paths []string
	if p := k.Strings("paths"); len(p) > 0 {
		paths = p
	} else if p := k.Strings("lint.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{getStringWithFallback("output", "generate.output", ligstyle.DefaultOutputPath)}
	}

	return ligstyle.LintConfig{
		Paths:         paths,
		CataloguePath: getStringWithFallback("catalogue", "catalogue", ""),
		SkipCoverage:  getBoolWithFallback("skip-coverage", "lint.skip-coverage", false),
		MaxIssues:     getIntWithFallback("max-issues", "lint.max-issues", 0),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
