package cssvars

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints statistics and the most repeated literals
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
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Variable Usage Statistics", r.useColors))
	fmt.Fprintln(r.w, "-------------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:           %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Declarations Found:      %d\n", result.DeclarationsFound)
	fmt.Fprintf(r.w, "Declarations Checked:    %d\n", result.DeclarationsChecked)
	fmt.Fprintf(r.w, "Using Variables:         %d\n", result.AcceptedByVariable)
	fmt.Fprintf(r.w, "Allowed by Exception:    %d\n", result.AcceptedByException)
	fmt.Fprintf(r.w, "Hard-coded Values:       %d\n", result.Violations)
}

// PrintCompliance shows a progress bar of accepted declarations
func (r *VerboseReporter) PrintCompliance(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Compliance", r.useColors))
	fmt.Fprintln(r.w, "----------")
	printProgressBar(r.w, result.CompliancePercentage)
}

// PrintTopLiterals lists the hard-coded values worth turning into variables
func (r *VerboseReporter) PrintTopLiterals(result LintResult) {
	if len(result.TopLiterals) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Top Literals", r.useColors))
	fmt.Fprintln(r.w, "------------")

	for i, lit := range result.TopLiterals {
		fmt.Fprintf(r.w, "%d. %q - %s (%s)\n",
			i+1, lit.Value,
			pluralizeCount(lit.Occurrences, "occurrence", "occurrences"),
			strings.Join(lit.Properties, ", "))
	}
}

// PrintCategories shows where the hard-coded values are concentrated
func (r *VerboseReporter) PrintCategories(result LintResult) {
	if len(result.ViolationsByCategory) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Violations by Category", r.useColors))
	fmt.Fprintln(r.w, "----------------------")

	for _, c := range result.ViolationsByCategory {
		fmt.Fprintf(r.w, "%-12s %d\n", string(c.Category)+":", c.Violations)
	}
}

// PrintWarnings shows linter warnings
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

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))
	filled = max(0, min(filled, barWidth))

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
