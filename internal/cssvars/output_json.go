package cssvars

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string         `json:"version"`
	Timestamp   string         `json:"timestamp"`
	Summary     JSONSummary    `json:"summary"`
	Stats       JSONStats      `json:"stats"`
	Issues      []JSONIssue    `json:"issues"`
	TopLiterals []JSONLiteral  `json:"top_literals"`
	Categories  map[string]int `json:"categories"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains declaration statistics
type JSONStats struct {
	FilesSkipped         int     `json:"files_skipped"`
	DeclarationsFound    int     `json:"declarations_found"`
	DeclarationsChecked  int     `json:"declarations_checked"`
	AcceptedByVariable   int     `json:"accepted_by_variable"`
	AcceptedByException  int     `json:"accepted_by_exception"`
	Violations           int     `json:"violations"`
	CompliancePercentage float64 `json:"compliance_percentage"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Linter   string   `json:"linter"`
	Property string   `json:"property"`
	Value    string   `json:"value"`
	Literals []string `json:"literals,omitempty"`
	Source   string   `json:"source,omitempty"` // Optional source line
}

// JSONLiteral is a frequently rejected value
type JSONLiteral struct {
	Value       string   `json:"value"`
	Occurrences int      `json:"occurrences"`
	Properties  []string `json:"properties"`
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
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

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
			Property: issue.Property,
			Value:    issue.Value,
			Literals: issue.Literals,
			Source:   source,
		}
	}

	literals := make([]JSONLiteral, len(result.TopLiterals))
	for i, lit := range result.TopLiterals {
		literals[i] = JSONLiteral{
			Value:       lit.Value,
			Occurrences: lit.Occurrences,
			Properties:  lit.Properties,
		}
	}

	categories := make(map[string]int, len(result.ViolationsByCategory))
	for _, c := range result.ViolationsByCategory {
		categories[string(c.Category)] = c.Violations
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			FilesSkipped:         result.FilesSkipped,
			DeclarationsFound:    result.DeclarationsFound,
			DeclarationsChecked:  result.DeclarationsChecked,
			AcceptedByVariable:   result.AcceptedByVariable,
			AcceptedByException:  result.AcceptedByException,
			Violations:           result.Violations,
			CompliancePercentage: result.CompliancePercentage,
		},
		Issues:      jsonIssues,
		TopLiterals: literals,
		Categories:  categories,
	}
}
