package ligstyle

import (
	"fmt"
	"strings"
)

// Coverage reports which catalogue aliases a document handles.
type Coverage struct {
	Total     int
	Covered   int
	Uncovered []TaggedAlias
}

// Percent returns the covered share in percent
func (c Coverage) Percent() float64 {
	if c.Total == 0 {
		return 100
	}
	return float64(c.Covered) / float64(c.Total) * 100
}

// MeasureCoverage checks that every alias is referenced by a rule enabling
// the alias's tag. A selector value references an alias when it equals it or
// joins it to a keyword with a hyphen ("language-rust", "raku-code").
func MeasureCoverage(doc *Document, cat Catalogue) Coverage {
	byTag := make(map[FeatureTag][]string)
	for _, rule := range doc.Rules {
		for _, tag := range rule.Enabled {
			byTag[tag] = append(byTag[tag], rule.Strings...)
		}
	}

	var cov Coverage
	for _, ta := range cat.Aliases() {
		cov.Total++
		if referencesAlias(byTag[ta.Tag], strings.ToLower(ta.Alias)) {
			cov.Covered++
			continue
		}
		cov.Uncovered = append(cov.Uncovered, ta)
	}
	return cov
}

func referencesAlias(values []string, alias string) bool {
	for _, v := range values {
		if v == alias || strings.HasSuffix(v, "-"+alias) || strings.HasPrefix(v, alias+"-") {
			return true
		}
	}
	return false
}

// CheckCoverage returns one warning per uncovered alias.
func CheckCoverage(doc *Document, cat Catalogue) ([]Issue, Coverage) {
	cov := MeasureCoverage(doc, cat)
	issues := make([]Issue, 0, len(cov.Uncovered))
	for _, ta := range cov.Uncovered {
		issues = append(issues, Issue{
			FromLinter: LinterCoverage,
			Text:       fmt.Sprintf(IssueUncoveredAlias, ta.Alias, string(ta.Tag)),
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: doc.Filename, Line: 1},
		})
	}
	return issues, cov
}
