package platform

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// Permission modes for generated files.
const (
	ModeWritable os.FileMode = 0o644
	ModeReadonly os.FileMode = 0o444
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(fsys afero.Fs, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fsys.Chmod(path, mode)
}

// MakeWritable restores write permission on path if it exists. Missing files
// are not an error.
func MakeWritable(fsys afero.Fs, path string) error {
	if _, err := fsys.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return Chmod(fsys, path, ModeWritable)
}
