package ligstyle

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Userstyle Statistics", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	fmt.Fprintf(r.w, "Files Scanned:    %s\n", humanize.Comma(int64(result.FilesScanned)))
	fmt.Fprintf(r.w, "Rules Checked:    %s\n", humanize.Comma(int64(result.RulesChecked)))
	fmt.Fprintf(r.w, "Feature Tags:     %d\n", len(result.TagsSeen))
	fmt.Fprintf(r.w, "Aliases Covered:  %s of %s (%.1f%%)\n",
		humanize.Comma(int64(result.AliasesCovered)), humanize.Comma(int64(result.AliasesTotal)), result.CoveragePct)
	fmt.Fprintf(r.w, "Errors:           %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:         %d\n", result.WarningCount)
}

// PrintTagTable shows how many rules enable each feature tag
func (r *VerboseReporter) PrintTagTable(result LintResult) {
	if len(result.TagsSeen) == 0 {
		return
	}

	tags := make([]string, 0, len(result.TagsSeen))
	for tag := range result.TagsSeen {
		tags = append(tags, string(tag))
	}
	sort.Strings(tags)

	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []string{tag, humanize.Comma(int64(result.TagsSeen[FeatureTag(tag)]))})
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Rules per Feature Tag", r.useColors))
	fmt.Fprintln(r.w, newTable(r.useColors, []string{"Tag", "Rules"}, rows))
}

// PrintWarnings shows file-level warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// WriteCatalogueTable prints every ligation set with its aliases and the
// number of rules it expands to.
func WriteCatalogueTable(w io.Writer, cat Catalogue, useColors bool) {
	rows := make([][]string, 0, len(cat.Sets))
	for _, set := range cat.Sets {
		groups := make([]string, 0, len(set.Groups))
		rules := 0
		for _, g := range set.Groups {
			groups = append(groups, strings.Join(g, " "))
			rules += len(GroupRules(g, set.Tag, cat.Vocabulary, cat.Sites))
		}
		rows = append(rows, []string{
			string(set.Tag),
			strings.Join(groups, "\n"),
			humanize.Comma(int64(rules)),
		})
	}
	fmt.Fprintln(w, newTable(useColors, []string{"Tag", "Aliases", "Rules"}, rows))
}

func newTable(useColors bool, headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	if useColors {
		header = header.Inherit(StyleCyan)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}
