package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/blueprint/internal/synth"
)

var packlistDir string

func init() {
	packlistCmd.Flags().StringVarP(&packlistDir, "dir", "d", ".", "Synthesized package directory")
	rootCmd.AddCommand(packlistCmd)
}

var packlistCmd = &cobra.Command{
	Use:   "packlist",
	Short: "List the files that would be published",
	Long: `List the files npm would publish from a synthesized package, applying
.npmignore (or .gitignore when there is no .npmignore).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := synth.Packlist(afero.NewOsFs(), packlistDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}
