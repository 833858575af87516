package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

var validateFile string

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Record file; defaults to the built-in record")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a blueprint record against the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		name := validateFile
		if name == "" {
			name = "built-in record"
		}
		fmt.Fprintf(out, "Record validation: %s\n", name)

		var (
			result *blueprint.ValidationResult
			err    error
		)
		if validateFile == "" {
			result, err = blueprint.Validate(blueprint.Default())
		} else {
			result, err = blueprint.ValidateFile(validateFile)
		}
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return fmt.Errorf("record validation failed: %w", err)
		}

		if result.Valid {
			fmt.Fprintf(out, "  [ OK ] Valid record\n")
			return nil
		}

		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("record %s has %d validation issue(s)", name, len(result.Issues))
	},
}
