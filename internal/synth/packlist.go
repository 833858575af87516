package synth

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Files npm always ships regardless of ignore rules.
var alwaysPacked = []string{"package.json", "README*", "LICENSE*", "LICENCE*"}

// Paths npm never ships.
var neverPacked = []string{".git", "node_modules", "package-lock.json", ".npmrc", ".npmignore", ".gitignore"}

// Packlist returns the slash-separated paths under dir that npm would publish.
// Rules come from .npmignore, or from .gitignore when no .npmignore exists.
// Unlike git, a negated pattern can re-include a file inside an excluded
// directory; this matches how npm treats .npmignore.
func Packlist(fsys afero.Fs, dir string) ([]string, error) {
	rules, err := afero.ReadFile(fsys, filepath.Join(dir, ".npmignore"))
	if os.IsNotExist(err) {
		rules, err = afero.ReadFile(fsys, filepath.Join(dir, ".gitignore"))
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	patterns := parseIgnore(rules)

	var files []string
	err = afero.Walk(fsys, dir, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if isNeverPacked(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if isAlwaysPacked(rel) || !ignored(rel, patterns) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func isAlwaysPacked(rel string) bool {
	if strings.Contains(rel, "/") {
		return false
	}
	for _, pattern := range alwaysPacked {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func isNeverPacked(rel string) bool {
	first := strings.SplitN(rel, "/", 2)[0]
	for _, name := range neverPacked {
		if first == name {
			return true
		}
	}
	return false
}
