package cssvars

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *LintResult {
	issues := []Issue{
		{
			FromLinter:  "enforce-variable",
			Text:        "Expected variable for color.",
			Severity:    SeverityError,
			SourceLines: []string{"  color: red;"},
			Pos:         IssuePos{Filename: "button.scss", Line: 2, Column: 3},
			Property:    "color",
			Value:       "red",
			Literals:    []string{"red"},
		},
		{
			FromLinter: "enforce-variable",
			Text:       "Expected variable for border.",
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: "card.scss", Line: 7, Column: 5},
			Property:   "border",
			Value:      "1px solid a|b",
			Literals:   []string{"a|b"},
		},
	}

	return &LintResult{
		FilesScanned:         10,
		FilesSkipped:         1,
		DeclarationsFound:    40,
		DeclarationsChecked:  20,
		AcceptedByVariable:   15,
		AcceptedByException:  3,
		Violations:           2,
		CompliancePercentage: 90.0,
		Issues:               issues,
		IssuesByCategory: map[string][]Issue{
			SeverityError:   issues[:1],
			SeverityWarning: issues[1:],
		},
		ErrorCount:   1,
		WarningCount: 1,
		TopLiterals: []LiteralCount{
			{Value: "red", Occurrences: 1, Properties: []string{"color"}},
		},
		ViolationsByCategory: []CategoryCount{
			{Category: CategoryBorder, Violations: 1},
			{Category: CategoryColor, Violations: 1},
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "explicit quiet flag", quiet: true, expected: OutputIssues},
		{name: "explicit issues format", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit summary format", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit full format", formatFlag: "full", expected: OutputFull},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown format", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "default format is issues", expected: OutputIssues},
		{name: "unknown format falls back", formatFlag: "xml", expected: OutputIssues},
		{name: "quiet overrides format flag", formatFlag: "full", quiet: true, expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestValidOutputFormat(t *testing.T) {
	for _, f := range []string{"", "issues", "summary", "full", "json", "markdown", "md"} {
		assert.True(t, ValidOutputFormat(f), f)
	}
	assert.False(t, ValidOutputFormat("xml"))
}

func TestSuggestOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "jsn", expected: "json"},
		{input: "sumary", expected: "summary"},
		{input: "mrkdwn", expected: "markdown"},
		{input: "xyz", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestOutputFormat(tt.input))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)

	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.Errors)
	assert.Equal(t, 1, output.Summary.Warnings)
	assert.Equal(t, 10, output.Summary.FilesScanned)

	assert.Equal(t, 20, output.Stats.DeclarationsChecked)
	assert.Equal(t, 3, output.Stats.AcceptedByException)
	assert.InDelta(t, 90.0, output.Stats.CompliancePercentage, 0.001)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:     "button.scss",
		Line:     2,
		Column:   3,
		Severity: "error",
		Message:  "Expected variable for color.",
		Linter:   "enforce-variable",
		Property: "color",
		Value:    "red",
		Literals: []string{"red"},
		Source:   "  color: red;",
	}, output.Issues[0])
	assert.Empty(t, output.Issues[1].Source)

	require.Len(t, output.TopLiterals, 1)
	assert.Equal(t, "red", output.TopLiterals[0].Value)
	assert.Equal(t, map[string]int{"border": 1, "color": 1}, output.Categories)
}

func TestWriteJSONEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &LintResult{CompliancePercentage: 100}))

	// Empty slices, not null
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"top_literals": []`)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResult()))

	markdown := buf.String()

	assert.Contains(t, markdown, "# CSS Variable Report")
	assert.Contains(t, markdown, "## Executive Summary")
	assert.Contains(t, markdown, "## ❌ Errors")
	assert.Contains(t, markdown, "## ⚠️ Warnings")
	assert.Contains(t, markdown, "## 🎯 Top Literals")
	assert.Contains(t, markdown, "## 📊 Detailed Statistics")

	assert.Contains(t, markdown, "**Total Issues** | 2 (1 error, 1 warning)")
	assert.Contains(t, markdown, "**Files Scanned** | 10")
	assert.Contains(t, markdown, "**Compliance** | 90.0%")
	assert.Contains(t, markdown, "**Declarations Checked** | 20 / 40")

	assert.Contains(t, markdown, "| `button.scss:2:3` | `color` | `red` |")
	assert.Contains(t, markdown, "`1px solid a\\|b`")
	assert.Contains(t, markdown, "| `red` | 1 | color |")
	assert.Contains(t, markdown, "| border | 1 |")

	assert.Contains(t, markdown, "*Generated by cssvars enforce-variable v1.0*")
}

func TestMarkdownStatusBadges(t *testing.T) {
	tests := []struct {
		name       string
		errorCount int
		compliance float64
		expected   string
	}{
		{name: "excellent", compliance: 85.0, expected: "🟢 Excellent"},
		{name: "good progress", compliance: 65.0, expected: "🟡 Good Progress"},
		{name: "errors present", errorCount: 5, compliance: 90.0, expected: "🔴 Needs Attention"},
		{name: "low compliance", compliance: 20.0, expected: "🔴 Needs Attention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteMarkdown(&buf, &LintResult{
				ErrorCount:           tt.errorCount,
				CompliancePercentage: tt.compliance,
			})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestWriteOutput_AllFormats(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		format   OutputFormat
		contains []string
		excludes []string
	}{
		{
			format:   OutputIssues,
			contains: []string{"button.scss:2:3: Expected variable for color.", "2 issues"},
			excludes: []string{"Variable Usage Statistics"},
		},
		{
			format:   OutputSummary,
			contains: []string{"Variable Usage Statistics", "Compliance", "Violations by Category", "Top Literals", "90.0%"},
			excludes: []string{"button.scss:2:3"},
		},
		{
			format:   OutputFull,
			contains: []string{"button.scss:2:3", "Variable Usage Statistics", "Top Literals"},
		},
		{
			format:   OutputJSON,
			contains: []string{`"total_issues": 2`},
		},
		{
			format:   OutputMarkdown,
			contains: []string{"# CSS Variable Report"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			WriteOutput(&buf, sampleResult(), tt.format, LintConfig{PrintIssuedLines: true})

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
