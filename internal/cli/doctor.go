package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/blueprint/internal/config"
	"github.com/agentx-labs/blueprint/internal/synth"
	"github.com/agentx-labs/blueprint/internal/toolchain"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools synthesized projects need",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runConfigCheck(out)
		runRuntimeCheck(cmd, out)
		return nil
	},
}

func runConfigCheck(out io.Writer) {
	fmt.Fprintln(out, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [INFO] %s not found, using defaults\n", path)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", path)
}

func runRuntimeCheck(cmd *cobra.Command, out io.Writer) {
	fmt.Fprintln(out, "Runtime check:")

	if err := toolchain.CheckNode(cmd.Context(), synth.NodeVersion); err != nil {
		fmt.Fprintf(out, "  [MISS] %v\n", err)
	} else {
		fmt.Fprintf(out, "  [ OK ] node >= %s\n", synth.NodeVersion)
	}

	checkBinary(out, config.PackageManager())
	checkBinary(out, "git")
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}
