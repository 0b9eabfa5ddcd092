package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssvars.yaml config file",
	Long:  `Create a .cssvars.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# cssvars configuration
# Docs: https://github.com/yacobolo/cssvars

# Shared settings
verbose: false

# Rule settings (patterns are written as /pattern/flags)
rule:
  properties: "/^color|border|background|fill|stroke|box-shadow/"
  exception-values: "/^(transparent|none|inherit|currentColor|0)$/"
  severity: error          # error | warning

# Linting settings
lint:
  paths:
    - "**/*.{css,scss,less}"
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
  concurrency: 0           # 0 = number of CPUs
  watch: false
  cache-size: 0            # parsed files kept between watch runs, 0 = default
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
