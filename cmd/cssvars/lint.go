package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	lint "github.com/yacobolo/cssvars/internal/cssvars"
)

// errLintFailed signals a failing exit code after the report was written
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint stylesheets for hard-coded values",
	Long: `Check that declarations of the configured properties use variables.
Values made only of $scss, @less, var(--custom) or map-get(...) references pass.
Structural border and background tokens (widths, styles, positions, url())
are ignored, and values matching the exception pattern are allowed.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			if err := k.Set("paths", args); err != nil {
				return err
			}
		}
		return runLint(cmd)
	},
}

func init() {
	addLintFlags(lintCmd)
}

// addLintFlags registers the lint flags; the root command runs lint too.
func addLintFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("paths", defaultPaths, "File patterns to lint")
	f.String("properties", "", "Pattern of properties to check, e.g. /^color|border/")
	f.String("exception-values", "", "Pattern of values allowed as literals, e.g. /^(transparent)|(none)/")
	f.String("severity", lint.SeverityError, "Issue severity: error|warning")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum compliance percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (enforce-variable) suffix on issues")
	f.Int("concurrency", 0, "Files linted in parallel (0=number of CPUs)")
	f.Bool("watch", false, "Lint again whenever a stylesheet changes")
	f.Int("cache-size", 0, "Parsed files kept between watch runs (0=default)")
}

// runLint builds the configuration, lints and writes the report.
// Exit code logic follows a "soft gate": only errors fail unless strict.
func runLint(cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr())

	lintConfig, err := buildLintConfig(logger)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	if !lint.ValidOutputFormat(outputFormat) {
		entry := logger.WithField("format", outputFormat)
		if suggestion := lint.SuggestOutputFormat(outputFormat); suggestion != "" {
			entry = entry.WithField("did_you_mean", suggestion)
		}
		entry.Warn("unknown output format, using issues")
	}
	format := lint.DetermineOutputFormat(outputFormat, quiet)

	logger.WithField("paths", lintConfig.ScanPaths).Debug("linting")

	if getBoolWithFallback("watch", "lint.watch", false) {
		return runWatch(cmd, lintConfig, format, quiet)
	}

	lintResult, err := lint.Lint(cmd.Context(), lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if !quiet {
		lint.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			return errLintFailed
		}

		if lintConfig.Threshold > 0 && lintResult.CompliancePercentage < lintConfig.Threshold {
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nStrict mode: compliance %.1f%% is below threshold %.1f%%\n",
					lintResult.CompliancePercentage, lintConfig.Threshold)
			}
			return errLintFailed
		}
	} else if lintResult.ErrorCount > 0 {
		return errLintFailed
	}

	return nil
}

// runWatch reports every run and never fails on issues; it stops on interrupt.
func runWatch(cmd *cobra.Command, lintConfig lint.LintConfig, format lint.OutputFormat, quiet bool) error {
	cache, err := lint.NewDeclarationCache(getIntWithFallback("cache-size", "lint.cache-size", 0))
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	lintConfig.Cache = cache

	out := cmd.OutOrStdout()
	runs := 0
	return lint.Watch(cmd.Context(), lintConfig, lint.WatchOptions{
		OnResult: func(result *lint.LintResult) {
			runs++
			if quiet {
				return
			}
			if runs > 1 {
				fmt.Fprintf(out, "\n--- %s: re-linted after change ---\n", time.Now().Format(time.TimeOnly))
			}
			lint.WriteOutput(out, result, format, lintConfig)
		},
	})
}
