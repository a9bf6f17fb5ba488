// Package ligstyle expands a ligation-set catalogue into userstyle rules and
// lints userstyles for structure, feature settings and alias coverage.
package ligstyle

import "errors"

// FeatureTag is a four-character OpenType feature identifier ("CLIK", "JSPT").
type FeatureTag string

// AliasGroup lists the case-insensitive names highlighters use for one language or dialect.
type AliasGroup []string

// LigationSet binds a feature tag to the alias groups it should be enabled for.
type LigationSet struct {
	Tag    FeatureTag   `yaml:"tag"`
	Groups []AliasGroup `yaml:"groups"`
}

// Vocabulary holds the class-name fragments, attribute names and combinator
// classes used by third-party syntax highlighters.
type Vocabulary struct {
	ClassPrefixes   []string `yaml:"class-prefixes"`   // "language" -> language-rust
	ClassSuffixes   []string `yaml:"class-suffixes"`   // "code" -> rust-code
	Attributes      []string `yaml:"attributes"`       // "data-lang" -> [data-lang~="rust"]
	CombinedClasses []string `yaml:"combined-classes"` // "hljs" -> .hljs.rust
}

// SitePattern is a whole selector for one site or tool. The {alias}
// placeholder is replaced by each alias of a group.
type SitePattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// AliasPlaceholder is substituted in SitePattern.Pattern.
const AliasPlaceholder = "{alias}"

// Catalogue is the complete input of the generator. Order is significant
// everywhere: rules are emitted in catalogue order.
type Catalogue struct {
	Sets       []LigationSet `yaml:"sets"`
	Vocabulary Vocabulary    `yaml:"vocabulary"`
	Sites      []SitePattern `yaml:"sites"`
}

// TaggedAlias is a single alias together with the tag it enables.
type TaggedAlias struct {
	Tag   FeatureTag
	Alias string
}

// Metadata describes the ==UserStyle== header block.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Namespace   string
	HomepageURL string
	SupportURL  string
	Author      string
	License     string
	Copyright   string // SPDX-FileCopyrightText
}

// UserscriptMeta describes the ==UserScript== header of the auxiliary script.
type UserscriptMeta struct {
	Name        string
	Namespace   string
	Matches     []string
	Version     string
	Author      string
	Description string
	Copyright   string
	License     string
}

// Sentinel errors
var (
	ErrInvalidCatalogue = errors.New("invalid catalogue")
	ErrInvalidMetadata  = errors.New("invalid metadata")
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and the per-tag coverage table
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
