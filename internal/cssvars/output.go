package cssvars

import (
	"fmt"
	"io"
	"os"

	"github.com/sahilm/fuzzy"
)

// outputFormatNames lists the accepted --output-format values
var outputFormatNames = []string{"issues", "summary", "full", "json", "markdown", "md"}

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format.
// Issues only, like golangci-lint.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// ValidOutputFormat reports whether formatFlag names a known format
func ValidOutputFormat(formatFlag string) bool {
	switch formatFlag {
	case "", "issues", "summary", "full", "json", "markdown", "md":
		return true
	}
	return false
}

// SuggestOutputFormat returns the known format closest to formatFlag,
// or "" when nothing is similar
func SuggestOutputFormat(formatFlag string) string {
	if formatFlag == "" {
		return ""
	}
	matches := fuzzy.Find(formatFlag, outputFormatNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		printVerbose(verboseReporter, result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printVerbose(NewVerboseReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing Markdown: %v\n", err)
		}
	}
}

func printVerbose(r *VerboseReporter, result *LintResult) {
	r.PrintStatistics(*result)
	r.PrintCompliance(*result)
	r.PrintCategories(*result)
	r.PrintTopLiterals(*result)
	r.PrintWarnings(*result)
}
