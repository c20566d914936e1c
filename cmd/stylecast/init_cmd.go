package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylecast.yaml config file",
	Long:  `Create a .stylecast.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylecast.yaml"); err == nil && !force {
			return fmt.Errorf(".stylecast.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylecast.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylecast.yaml")
		return nil
	},
}

const defaultConfig = `# stylecast configuration

# Shared settings
verbose: false
color: false

# Checking settings
check:
  paths:
    - "**/*.qss"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Resolution settings
resolve:
  sheets:
    - "**/*.qss"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
