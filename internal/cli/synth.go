package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agentx-labs/blueprint/internal/blueprint"
	"github.com/agentx-labs/blueprint/internal/config"
	"github.com/agentx-labs/blueprint/internal/synth"
	"github.com/agentx-labs/blueprint/internal/toolchain"
)

var (
	synthFile       string
	synthOutputDir  string
	synthInstall    bool
	synthNoReadonly bool
)

func init() {
	synthCmd.Flags().StringVarP(&synthFile, "file", "f", "", "Record file (.yaml, .yml, .json, .toml); defaults to the built-in record")
	synthCmd.Flags().StringVarP(&synthOutputDir, "output-dir", "o", "", "Directory to synthesize into (default from config output_dir)")
	synthCmd.Flags().BoolVar(&synthInstall, "install", false, "Install dependencies after synthesis")
	synthCmd.Flags().BoolVar(&synthNoReadonly, "no-readonly", false, "Leave generated files writable")
	rootCmd.AddCommand(synthCmd)
}

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize the project files from a record",
	Long: `Construct the blueprint record and synthesize it once.

Managed files are rewritten on every run and marked read-only. Files the
user owns (README.md, .projenrc.ts, sample sources) are only created when
missing. Files generated by a previous run that are no longer needed are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRecord(synthFile)
		if err != nil {
			return err
		}

		outDir := synthOutputDir
		if outDir == "" {
			outDir = config.OutputDir()
		}

		gen := synth.New(afero.NewOsFs(), logger)
		gen.Readonly = !synthNoReadonly

		project := blueprint.New(opts)
		result, err := project.Synth(cmd.Context(), gen, outDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Synthesized %s into %s\n", opts.PackageName, result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}

		if !synthInstall {
			return nil
		}

		if err := toolchain.CheckNode(cmd.Context(), synth.NodeVersion); err != nil {
			logger.Warn("node version check failed", zap.Error(err))
		}
		installer := &toolchain.Installer{
			Manager: config.PackageManager(),
			Stdout:  out,
			Stderr:  cmd.ErrOrStderr(),
		}
		fmt.Fprintf(out, "\nInstalling dependencies with %s...\n", config.PackageManager())
		if err := installer.Install(cmd.Context(), result.OutputDir); err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
		return nil
	},
}
