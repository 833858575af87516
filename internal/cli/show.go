package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

var (
	showFile   string
	showFormat string
)

func init() {
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "Record file; defaults to the built-in record")
	showCmd.Flags().StringVar(&showFormat, "format", blueprint.FormatYAML, "Output format: yaml, json, toml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the blueprint record",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRecord(showFile)
		if err != nil {
			return err
		}

		data, err := blueprint.Marshal(opts, showFormat)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
