package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssvars"
	lint "github.com/yacobolo/cssvars/internal/cssvars"
)

const (
	defaultConfigFile = ".cssvars.yaml"
	envPrefix         = "CSSVARS_"
)

// defaultPaths is scanned when no paths are configured
var defaultPaths = []string{"**/*.{css,scss,less}"}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags, only those set on the command line. Flag defaults are
	// supplied by the getters so they never shadow file or env values.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSVARS_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable onto a config key:
//
//	CSSVARS_RULE_EXCEPTION_VALUES -> rule.exception-values
//	CSSVARS_LINT_MAX_SAME_ISSUES  -> lint.max-same-issues
//	CSSVARS_VERBOSE               -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"rule", "lint"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildRule compiles the rule section
func buildRule() (*cssvars.Rule, error) {
	properties := getStringWithFallback("properties", "rule.properties", "")
	exceptions := getStringWithFallback("exception-values", "rule.exception-values", "")

	rule, err := cssvars.NewRule(properties, cssvars.Options{ExceptionValues: exceptions})
	if err != nil {
		return nil, fmt.Errorf("invalid rule configuration: %w", err)
	}
	return rule, nil
}

// buildLintConfig constructs the linter's LintConfig from koanf state.
func buildLintConfig(logger logrus.FieldLogger) (lint.LintConfig, error) {
	rule, err := buildRule()
	if err != nil {
		return lint.LintConfig{}, err
	}

	severity := getStringWithFallback("severity", "rule.severity", lint.SeverityError)
	if !lint.ValidSeverity(severity) {
		return lint.LintConfig{}, fmt.Errorf("invalid rule configuration: unknown severity %q (want error or warning)", severity)
	}

	// Handle paths: check flag key first, then config key
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = defaultPaths
	}

	return lint.LintConfig{
		Rule:               rule,
		ScanPaths:          scanPaths,
		Severity:           severity,
		Concurrency:        getIntWithFallback("concurrency", "lint.concurrency", 0),
		Logger:             logger,
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Threshold:          getFloat64WithFallback("threshold", "lint.threshold", 0.0),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}, nil
}

// newLogger builds the stderr logger. An explicit log level wins, then
// --quiet (errors only), then --verbose (debug). Default is warn so normal
// runs only print the report.
func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	level := logrus.WarnLevel
	switch {
	case k.String("log-level") != "":
		parsed, err := logrus.ParseLevel(k.String("log-level"))
		if err == nil {
			level = parsed
		}
	case getBoolWithFallback("quiet", "quiet", false):
		level = logrus.ErrorLevel
	case getBoolWithFallback("verbose", "verbose", false):
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
