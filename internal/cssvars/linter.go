// Package cssvars runs the enforce-variable rule over stylesheet files and
// reports violations.
//
// # Pipeline
//
//  1. Expand glob patterns into stylesheet paths (gitignore aware)
//  2. Extract declarations from each file (CSS, SCSS and Less syntax)
//  3. Check every declaration selected by the properties pattern
//  4. Collect issues, statistics and the most repeated literal values
//
// Files are parsed and checked concurrently; results are merged in file
// order so output is stable between runs.
package cssvars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yacobolo/cssvars"
	"golang.org/x/sync/errgroup"
)

// ErrNoRule is returned when Lint is called without a compiled rule.
var ErrNoRule = errors.New("lint config has no rule")

// topLiteralsLimit caps LintResult.TopLiterals
const topLiteralsLimit = 10

// fileResult holds what one file contributed to the run
type fileResult struct {
	declarations []Declaration
	skipped      bool
}

// Lint performs linting analysis on the stylesheets matched by config.ScanPaths
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	if config.Rule == nil {
		return nil, ErrNoRule
	}
	logger := loggerOrDiscard(config.Logger)

	// Step 1: Discover files
	files, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"discovered": stats.FilesDiscovered,
		"skipped":    stats.FilesSkipped,
	}).Debug("scanned stylesheets")

	// Step 2: Parse files concurrently
	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency(config))

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			decls, cached, err := loadDeclarations(file, config.Cache)
			if err != nil {
				logger.WithField("file", file).WithError(err).Warn("skipping unreadable stylesheet")
				results[i] = fileResult{skipped: true}
				return nil
			}

			logger.WithFields(logrus.Fields{
				"file":         file,
				"declarations": len(decls),
				"cached":       cached,
			}).Debug("parsed stylesheet")
			results[i] = fileResult{declarations: decls}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint cancelled: %w", err)
	}

	// Step 3: Check declarations in file order
	var decls []Declaration
	skipped := stats.FilesSkipped
	scanned := 0
	for _, r := range results {
		if r.skipped {
			skipped++
			continue
		}
		scanned++
		decls = append(decls, r.declarations...)
	}

	result := analyzeDeclarations(decls, config)
	result.FilesScanned = scanned
	result.FilesSkipped = skipped

	logger.WithFields(logrus.Fields{
		"files":  scanned,
		"issues": len(result.Issues),
	}).Info("lint finished")

	return result, nil
}

// LintSource lints a single in-memory stylesheet
func LintSource(filename, content string, config LintConfig) (*LintResult, error) {
	if config.Rule == nil {
		return nil, ErrNoRule
	}

	result := analyzeDeclarations(ParseDeclarations(content, filename), config)
	result.FilesScanned = 1
	return result, nil
}

// analyzeDeclarations applies the rule and builds the result
func analyzeDeclarations(decls []Declaration, config LintConfig) *LintResult {
	severity := config.Severity
	if severity == "" {
		severity = SeverityError
	}

	result := &LintResult{
		DeclarationsFound: len(decls),
	}

	literalCounts := make(map[string]int)
	literalProps := make(map[string]map[string]bool)
	categoryCounts := make(map[PropertyCategory]int)
	var issues []Issue

	for _, decl := range decls {
		verdict, checked := config.Rule.Check(decl.Property, decl.Value)
		if !checked {
			continue
		}
		result.DeclarationsChecked++

		switch {
		case verdict.Variable:
			result.AcceptedByVariable++
			continue
		case verdict.Excepted:
			result.AcceptedByException++
			continue
		}

		result.Violations++
		issues = append(issues, newIssue(decl, verdict, severity))
		categoryCounts[categorizeProperty(decl.Property)]++

		literalCounts[decl.Value]++
		if literalProps[decl.Value] == nil {
			literalProps[decl.Value] = make(map[string]bool)
		}
		literalProps[decl.Value][decl.Property] = true
	}

	if result.DeclarationsChecked > 0 {
		accepted := result.AcceptedByVariable + result.AcceptedByException
		result.CompliancePercentage = float64(accepted) / float64(result.DeclarationsChecked) * 100
	} else {
		result.CompliancePercentage = 100
	}

	result.TopLiterals = topLiterals(literalCounts, literalProps)
	result.ViolationsByCategory = sortedCategoryCounts(categoryCounts)

	// Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		issues, result.TruncatedCount = limitIssues(issues, config)
	}

	result.Issues = issues
	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	if result.DeclarationsFound == 0 {
		result.Warnings = append(result.Warnings, "No declarations found - check the lint paths")
	} else if result.DeclarationsChecked == 0 {
		result.Warnings = append(result.Warnings, "No declaration matched the properties pattern")
	}

	return result
}

// newIssue converts a rejected declaration into an issue
func newIssue(decl Declaration, verdict cssvars.Verdict, severity string) Issue {
	var sourceLines []string
	if decl.Pos.LineText != "" {
		sourceLines = []string{decl.Pos.LineText}
	}

	return Issue{
		FromLinter:  cssvars.RuleName,
		Text:        cssvars.Message(decl.Property),
		Severity:    severity,
		SourceLines: sourceLines,
		Pos: IssuePos{
			Filename: decl.Pos.File,
			Line:     decl.Pos.Line,
			Column:   decl.Pos.Column,
		},
		Property: decl.Property,
		Value:    decl.Value,
		Literals: verdict.Literals,
	}
}

// topLiterals sorts rejected values by frequency, most repeated first
func topLiterals(counts map[string]int, props map[string]map[string]bool) []LiteralCount {
	literals := make([]LiteralCount, 0, len(counts))
	for value, count := range counts {
		properties := make([]string, 0, len(props[value]))
		for p := range props[value] {
			properties = append(properties, p)
		}
		sort.Strings(properties)

		literals = append(literals, LiteralCount{
			Value:       value,
			Occurrences: count,
			Properties:  properties,
		})
	}

	// Sort by occurrences (descending), then value for determinism
	sort.Slice(literals, func(i, j int) bool {
		if literals[i].Occurrences != literals[j].Occurrences {
			return literals[i].Occurrences > literals[j].Occurrences
		}
		return literals[i].Value < literals[j].Value
	})

	if len(literals) > topLiteralsLimit {
		literals = literals[:topLiteralsLimit]
	}

	return literals
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// concurrency returns the worker limit for file parsing
func concurrency(config LintConfig) int {
	if config.Concurrency > 0 {
		return config.Concurrency
	}
	return runtime.NumCPU()
}

// loggerOrDiscard never returns nil
func loggerOrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger != nil {
		return logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// formatLiterals renders the offending tokens of an issue
func formatLiterals(literals []string) string {
	quoted := make([]string, len(literals))
	for i, l := range literals {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return strings.Join(quoted, ", ")
}
