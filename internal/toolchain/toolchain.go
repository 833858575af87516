package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Supported package managers.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
	ManagerPNPM = "pnpm"
)

// Installer installs dependencies in a synthesized package.
type Installer struct {
	// Manager is the package manager binary; defaults to npm.
	Manager string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs "<manager> install" in dir and streams its output.
func (i *Installer) Install(ctx context.Context, dir string) error {
	manager := i.Manager
	if manager == "" {
		manager = ManagerNPM
	}

	bin, err := exec.LookPath(manager)
	if err != nil {
		return fmt.Errorf("installing dependencies requires %s: %w", manager, err)
	}

	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.Stdout = i.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = i.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s install exited with code %d", manager, exitErr.ExitCode())
		}
		return fmt.Errorf("running %s install: %w", manager, err)
	}
	return nil
}

// NodeVersion returns the version reported by "node --version".
func NodeVersion(ctx context.Context) (*semver.Version, error) {
	bin, err := exec.LookPath("node")
	if err != nil {
		return nil, fmt.Errorf("node runtime requires Node.js: %w", err)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running node --version: %w", err)
	}
	return ParseVersion(out.String())
}

// ParseVersion parses tool output such as "v18.19.0\n".
func ParseVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", s, err)
	}
	return v, nil
}

// CheckNode verifies that the installed Node.js satisfies minimum, a plain
// version such as "18.0.0".
func CheckNode(ctx context.Context, minimum string) error {
	v, err := NodeVersion(ctx)
	if err != nil {
		return err
	}
	return checkVersion(v, minimum)
}

func checkVersion(v *semver.Version, minimum string) error {
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("node %s is older than the required %s", v, minimum)
	}
	return nil
}
