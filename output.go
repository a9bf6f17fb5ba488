package ligstyle

import (
	"fmt"
	"io"

	core "github.com/coelacanthushex/ligstyle/internal/ligstyle"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to issues, the golangci-lint style default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, opts ReportOptions) error {
	switch format {
	case OutputSummary:
		verbose := core.NewVerboseReporter(w, core.ShouldUseColors(opts.UseColors))
		verbose.PrintStatistics(*result)
		verbose.PrintTagTable(*result)
		verbose.PrintWarnings(*result)

	case OutputFull:
		reporter := core.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := core.NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(*result)
		verbose.PrintTagTable(*result)
		verbose.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	default:
		reporter := core.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}

// WriteCatalogue prints the catalogue as a table.
func WriteCatalogue(w io.Writer, cat Catalogue, useColors bool) {
	core.WriteCatalogueTable(w, cat, core.ShouldUseColors(useColors))
}
