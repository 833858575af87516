package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/blueprint/internal/blueprint"
	"github.com/agentx-labs/blueprint/internal/branding"
)

var (
	initOutput string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "blueprint.yaml", "Record file to create (.yaml, .yml, .json, .toml)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing record file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in record to a file",
	Long: `Write the built-in blueprint record to a file so it can be edited and
passed to "synth --file". The format follows the file extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !initForce {
			if _, err := os.Stat(initOutput); err == nil {
				return fmt.Errorf("record already exists: %s (use --force to overwrite)", initOutput)
			}
		}

		format, err := blueprint.FormatFromPath(initOutput)
		if err != nil {
			return err
		}
		data, err := blueprint.Marshal(blueprint.Default(), format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(initOutput, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", initOutput, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created %s\n", initOutput)
		fmt.Fprintf(out, "Run '%s synth --file %s' to generate the project.\n", branding.CLIName(), initOutput)
		return nil
	},
}
