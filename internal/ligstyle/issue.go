package ligstyle

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssparse" or "coverage"
	Text        string   `json:"Text"`        // "rule does not set font-feature-settings"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`   // 1-based
	Column   int    `json:"Column"` // 1-based, 0 when the issue concerns the whole file
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterSyntax   = "cssparse"
	LinterFeatures = "features"
	LinterCoverage = "coverage"
)

// Issue messages
const (
	IssueUnexpectedClose  = "unexpected %q without matching opening bracket"
	IssueUnclosedBlock    = "block opened here is never closed"
	IssueUnbalanced       = "unbalanced %q in selector"
	IssueEmptySelector    = "rule has an empty selector"
	IssueBadToken         = "malformed %s"
	IssueInvalidTag       = "invalid OpenType feature tag %q"
	IssueMissingFeatures  = "rule does not set font-feature-settings"
	IssueCaltNotDisabled  = "rule does not disable contextual alternates (\"calt\" off)"
	IssueUncoveredAlias   = "alias %q has no rule enabling %q"
	IssueNoLigationTarget = "font-feature-settings enables no ligation set"
)

// LintResult contains lint statistics and issues
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	RulesChecked   int
	TagsSeen       map[FeatureTag]int // rules enabling each tag
	AliasesTotal   int
	AliasesCovered int
	CoveragePct    float64
	ErrorCount     int // every error found, truncated ones included
	WarningCount   int // every warning found, truncated ones included
	TruncatedCount int
	Warnings       []string // file-level problems that are not issues (unreadable file)
}

// TotalIssues is the number of issues found before truncation.
func (r *LintResult) TotalIssues() int {
	return len(r.Issues) + r.TruncatedCount
}

// Count tallies errors and warnings
func (r *LintResult) Count() {
	r.ErrorCount, r.WarningCount = 0, 0
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		}
	}
}
