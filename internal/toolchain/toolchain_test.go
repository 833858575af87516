package toolchain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("v18.19.0\n")
	require.NoError(t, err)
	assert.Equal(t, "18.19.0", v.String())

	_, err = ParseVersion("not-a-version")
	assert.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		minimum string
		ok      bool
	}{
		{"18.0.0", "18.0.0", true},
		{"20.11.1", "18.0.0", true},
		{"16.20.2", "18.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			v, err := ParseVersion(tt.version)
			require.NoError(t, err)
			err = checkVersion(v, tt.minimum)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "older than")
			}
		})
	}
}

func TestInstall_MissingManager(t *testing.T) {
	i := &Installer{Manager: "blueprint-test-no-such-manager"}
	err := i.Install(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blueprint-test-no-such-manager")
}

func TestInstall_RunsInDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the package manager")
	}

	binDir := t.TempDir()
	script := "#!/bin/sh\necho \"$1 in $(pwd)\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "fakepm"), []byte(script), 0o755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := t.TempDir()
	var stdout bytes.Buffer
	i := &Installer{Manager: "fakepm", Stdout: &stdout, Stderr: &bytes.Buffer{}}
	require.NoError(t, i.Install(context.Background(), dir))

	// macOS temp dirs resolve through a symlink.
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "install in "+resolved)
}

func TestInstall_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	i := &Installer{Manager: "false", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := i.Install(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 1")
}
