package cssvars

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// markdownIssueLimit caps the issue table so reports stay readable
const markdownIssueLimit = 50

// WriteMarkdown writes the lint result as a shareable Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# CSS Variable Report")
	fmt.Fprintln(bw, "")
	fmt.Fprintf(bw, "_Generated %s_\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(bw, "")

	// Executive summary
	fmt.Fprintln(bw, "## Executive Summary")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|--------|-------|")
	fmt.Fprintf(bw, "| **Status** | %s |\n", markdownStatus(result))
	fmt.Fprintf(bw, "| **Total Issues** | %d (%s, %s) |\n",
		len(result.Issues),
		pluralizeCount(result.ErrorCount, "error", "errors"),
		pluralizeCount(result.WarningCount, "warning", "warnings"))
	fmt.Fprintf(bw, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(bw, "| **Compliance** | %.1f%% |\n", result.CompliancePercentage)
	fmt.Fprintf(bw, "| **Declarations Checked** | %d / %d |\n", result.DeclarationsChecked, result.DeclarationsFound)
	fmt.Fprintln(bw, "")

	// Errors
	if result.ErrorCount > 0 {
		writeMarkdownIssues(bw, "## ❌ Errors", result.IssuesByCategory[SeverityError])
	}
	if result.WarningCount > 0 {
		writeMarkdownIssues(bw, "## ⚠️ Warnings", result.IssuesByCategory[SeverityWarning])
	}

	// Top literals
	if len(result.TopLiterals) > 0 {
		fmt.Fprintln(bw, "## 🎯 Top Literals")
		fmt.Fprintln(bw, "")
		fmt.Fprintln(bw, "| Value | Occurrences | Properties |")
		fmt.Fprintln(bw, "|-------|-------------|------------|")
		for _, lit := range result.TopLiterals {
			fmt.Fprintf(bw, "| `%s` | %d | %s |\n",
				escapeMarkdownCell(lit.Value), lit.Occurrences,
				escapeMarkdownCell(strings.Join(lit.Properties, ", ")))
		}
		fmt.Fprintln(bw, "")
	}

	if len(result.ViolationsByCategory) > 0 {
		fmt.Fprintln(bw, "## Violations by Category")
		fmt.Fprintln(bw, "")
		fmt.Fprintln(bw, "| Category | Violations |")
		fmt.Fprintln(bw, "|----------|------------|")
		for _, c := range result.ViolationsByCategory {
			fmt.Fprintf(bw, "| %s | %d |\n", c.Category, c.Violations)
		}
		fmt.Fprintln(bw, "")
	}

	// Statistics
	fmt.Fprintln(bw, "## 📊 Detailed Statistics")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "| Metric | Count |")
	fmt.Fprintln(bw, "|--------|-------|")
	fmt.Fprintf(bw, "| Files Skipped | %d |\n", result.FilesSkipped)
	fmt.Fprintf(bw, "| Using Variables | %d |\n", result.AcceptedByVariable)
	fmt.Fprintf(bw, "| Allowed by Exception | %d |\n", result.AcceptedByException)
	fmt.Fprintf(bw, "| Hard-coded Values | %d |\n", result.Violations)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(bw, "| Truncated Issues | %d |\n", result.TruncatedCount)
	}
	fmt.Fprintln(bw, "")

	if len(result.Warnings) > 0 {
		fmt.Fprintln(bw, "## Notes")
		fmt.Fprintln(bw, "")
		for _, warning := range result.Warnings {
			fmt.Fprintf(bw, "- %s\n", warning)
		}
		fmt.Fprintln(bw, "")
	}

	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw, "*Generated by cssvars enforce-variable v1.0*")

	return bw.Flush()
}

// writeMarkdownIssues writes one severity section
func writeMarkdownIssues(w io.Writer, heading string, issues []Issue) {
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Location | Property | Value |")
	fmt.Fprintln(w, "|----------|----------|-------|")

	shown := issues
	if len(shown) > markdownIssueLimit {
		shown = shown[:markdownIssueLimit]
	}
	for _, issue := range shown {
		fmt.Fprintf(w, "| `%s:%d:%d` | `%s` | `%s` |\n",
			escapeMarkdownCell(GetRelativePath(issue.Pos.Filename)), issue.Pos.Line, issue.Pos.Column,
			escapeMarkdownCell(issue.Property), escapeMarkdownCell(issue.Value))
	}
	if len(issues) > len(shown) {
		fmt.Fprintf(w, "\n... and %d more\n", len(issues)-len(shown))
	}
	fmt.Fprintln(w, "")
}

// markdownStatus returns the status badge
func markdownStatus(result *LintResult) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Needs Attention"
	case result.CompliancePercentage >= 80:
		return "🟢 Excellent"
	case result.CompliancePercentage >= 50:
		return "🟡 Good Progress"
	default:
		return "🔴 Needs Attention"
	}
}

// escapeMarkdownCell keeps pipes from breaking table rows
func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
