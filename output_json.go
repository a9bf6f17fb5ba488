package ligstyle

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	Tags      map[string]int `json:"tags"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains rule and coverage statistics
type JSONStats struct {
	RulesChecked    int     `json:"rules_checked"`
	AliasesTotal    int     `json:"aliases_total"`
	AliasesCovered  int     `json:"aliases_covered"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	tags := make(map[string]int, len(result.TagsSeen))
	for tag, n := range result.TagsSeen {
		tags[string(tag)] = n
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  result.TotalIssues(),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			RulesChecked:    result.RulesChecked,
			AliasesTotal:    result.AliasesTotal,
			AliasesCovered:  result.AliasesCovered,
			CoveragePercent: result.CoveragePct,
		},
		Issues: jsonIssues,
		Tags:   tags,
	}
}
