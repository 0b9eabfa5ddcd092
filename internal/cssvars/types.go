package cssvars

import (
	"github.com/sirupsen/logrus"
	"github.com/yacobolo/cssvars"
)

// Declaration is a single `property: value` pair found in a stylesheet
type Declaration struct {
	Property  string // "border"
	Value     string // "1px solid #fff" (comments and !important removed)
	Important bool   // Declared with !important
	Pos       DeclarationPos
}

// DeclarationPos locates a declaration in its source file
type DeclarationPos struct {
	File     string
	Line     int    // 1-based
	Column   int    // 1-based, start of the property name
	LineText string // Full source line for display
}

// LintConfig holds linting configuration
type LintConfig struct {
	Rule        *cssvars.Rule      // Compiled rule (required)
	ScanPaths   []string           // Patterns to scan (e.g., "web/styles/**/*.scss")
	Severity    string             // Severity for violations: "error" (default) or "warning"
	Concurrency int                // Files linted in parallel (0 = runtime.NumCPU())
	Logger      logrus.FieldLogger // nil = discard
	Cache       *DeclarationCache  // Reuses parses of unchanged files (nil = parse every run)
	Verbose     bool
	Strict      bool    // Exit with code 1 if any issue found
	Threshold   float64 // Minimum compliance percentage (for strict mode)

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (enforce-variable) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	FilesScanned         int     // Files parsed
	FilesSkipped         int     // Generated, ignored or unreadable files
	DeclarationsFound    int     // All declarations in scanned files
	DeclarationsChecked  int     // Declarations selected by the properties pattern
	AcceptedByVariable   int     // Checked values built from variables
	AcceptedByException  int     // Checked values allowed by the exception pattern
	Violations           int     // Checked values rejected
	CompliancePercentage float64 // Accepted / checked * 100 (100 when nothing checked)

	// Issues in golangci-lint format
	Issues           []Issue            // All issues found
	IssuesByCategory map[string][]Issue // Grouped by severity
	ErrorCount       int                // Issues with error severity
	WarningCount     int                // Issues with warning severity
	TruncatedCount   int                // Issues removed due to limits

	// Summary
	TopLiterals          []LiteralCount  // Most frequent rejected values
	ViolationsByCategory []CategoryCount // Violations per property category, most first
	Warnings             []string
}

// LiteralCount is a hard-coded value that appears repeatedly; each one is a
// candidate for a new design token.
type LiteralCount struct {
	Value       string   // "#fff"
	Occurrences int      // 12
	Properties  []string // ["background-color", "color"] (sorted)
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and top literals only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + top literals
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
