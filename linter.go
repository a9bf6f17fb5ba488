package ligstyle

import (
	"errors"
	"fmt"
	"os"

	core "github.com/coelacanthushex/ligstyle/internal/ligstyle"
)

// ErrNoFiles is returned when no lint pattern matches a file.
var ErrNoFiles = errors.New("no userstyle files matched")

// Lint parses every matching userstyle and checks its structure, feature
// settings and alias coverage.
func Lint(config LintConfig) (*LintResult, error) {
	logger := loggerOrDefault(config.Logger)

	files, stats, err := expandGlobPatterns(config.Paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, config.Paths)
	}
	logger.Debug("discovered userstyles",
		"files", len(files), "skipped", stats.FilesSkipped)

	var cat Catalogue
	if !config.SkipCoverage {
		cat, err = LoadCatalogue(config.CataloguePath)
		if err != nil {
			return nil, fmt.Errorf("load catalogue: %w", err)
		}
	}

	result := &LintResult{TagsSeen: make(map[FeatureTag]int)}
	for _, file := range files {
		// #nosec G304 - path comes from the user's own patterns
		content, err := os.ReadFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}
		result.FilesScanned++

		doc, issues := core.ParseUserstyle(string(content), file)
		result.Issues = append(result.Issues, issues...)
		result.RulesChecked += len(doc.Rules)
		for _, rule := range doc.Rules {
			for _, tag := range rule.Enabled {
				if tag != "calt" {
					result.TagsSeen[tag]++
				}
			}
		}

		if !config.SkipCoverage {
			covIssues, cov := core.CheckCoverage(doc, cat)
			result.Issues = append(result.Issues, covIssues...)
			result.AliasesTotal += cov.Total
			result.AliasesCovered += cov.Covered
		}
		logger.Debug("linted userstyle", "file", file, "rules", len(doc.Rules), "issues", len(issues))
	}

	result.CoveragePct = 100
	if result.AliasesTotal > 0 {
		result.CoveragePct = float64(result.AliasesCovered) / float64(result.AliasesTotal) * 100
	}

	result.Count()
	core.SortIssues(result.Issues)
	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.TruncatedCount = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}

	return result, nil
}
