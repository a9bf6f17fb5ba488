// Package ligstyle generates a userstyle that enables Iosevka's
// language-specific ligation sets on code blocks across the web.
//
// Every language alias of the catalogue is combined with the class names and
// attributes that common syntax highlighters put on code blocks (Prism.js,
// highlight.js, Shiki, Rouge, Pygments, MediaWiki, ...). Each match gets a
// rule switching contextual alternates off and the language's ligation set on:
//
//	:is([class~="language-rust" i]) :is(pre, code, textarea) {
//	    font-feature-settings: "calt" off, "CLIK" on;
//	}
//
// # Generation
//
//	result, err := ligstyle.Generate(ligstyle.Config{
//		OutputPath: "Enable-Iosevka-language-specific-ligation-sets.user.css",
//	})
//
// # Linting
//
// Lint checks generated (or hand-edited) userstyles for balanced blocks,
// valid feature tags and alias coverage:
//
//	result, err := ligstyle.Lint(ligstyle.LintConfig{
//		Paths: []string{"**/*.user.css"},
//	})
//
// # CLI Tool
//
//	go install github.com/coelacanthushex/ligstyle/cmd/ligstyle@latest
package ligstyle

import (
	"io"
	"log/slog"

	core "github.com/coelacanthushex/ligstyle/internal/ligstyle"
)

// DefaultOutputPath is the file name the userstyle is published under.
const DefaultOutputPath = "Enable-Iosevka-language-specific-ligation-sets.user.css"

// DefaultUserscriptPath is the file name of the auxiliary userscript.
const DefaultUserscriptPath = "Enable-Iosevka-language-specific-ligation-sets-aux-userscript.user.js"

// Re-exported core types
type (
	Catalogue      = core.Catalogue
	LigationSet    = core.LigationSet
	AliasGroup     = core.AliasGroup
	FeatureTag     = core.FeatureTag
	Vocabulary     = core.Vocabulary
	SitePattern    = core.SitePattern
	Metadata       = core.Metadata
	UserscriptMeta = core.UserscriptMeta
	Issue          = core.Issue
	LintResult     = core.LintResult
	OutputFormat   = core.OutputFormat
	ReportOptions  = core.ReportOptions
)

// Output formats
const (
	OutputIssues  = core.OutputIssues
	OutputSummary = core.OutputSummary
	OutputFull    = core.OutputFull
	OutputJSON    = core.OutputJSON
)

// Config holds generator configuration
type Config struct {
	OutputPath    string    // "Enable-Iosevka-language-specific-ligation-sets.user.css"
	CataloguePath string    // YAML catalogue; empty uses the built-in one
	Metadata      Metadata  // zero value uses DefaultMetadata
	Check         bool      // compare with OutputPath instead of writing it
	Writer        io.Writer // render here instead of OutputPath
	Logger        *slog.Logger
}

// GenerateResult contains generation stats
type GenerateResult struct {
	OutputPath     string
	RulesGenerated int
	Tags           int
	Aliases        int
	BytesWritten   int64
	UpToDate       bool   // Check mode: file matches
	Diff           string // Check mode: unified diff when stale
}

// LintConfig holds linting configuration
type LintConfig struct {
	Paths         []string // Glob patterns of userstyles ("**/*.user.css")
	CataloguePath string   // Catalogue used for coverage; empty uses the built-in one
	SkipCoverage  bool     // Only check syntax and feature settings
	MaxIssues     int      // 0 = unlimited
	Logger        *slog.Logger
}

// DefaultCatalogue returns the built-in catalogue.
func DefaultCatalogue() Catalogue { return core.DefaultCatalogue() }

// DefaultMetadata returns the header of the published userstyle.
func DefaultMetadata() Metadata { return core.DefaultMetadata() }

// DefaultUserscriptMeta returns the header of the published auxiliary userscript.
func DefaultUserscriptMeta() UserscriptMeta { return core.DefaultUserscriptMeta() }

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
