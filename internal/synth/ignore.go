package synth

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

// gitignoreLines are the entries synthesis guarantees in .gitignore.
func gitignoreLines(opts blueprint.Options) []string {
	lines := []string{
		"/node_modules/",
		"/lib",
		"/dist/",
		"*.tsbuildinfo",
		"*.log",
		"npm-debug.log*",
		".DS_Store",
	}
	if opts.Jest {
		lines = append(lines, "/coverage/", "/test-reports/")
	}
	return lines
}

// npmignoreLines keep sources and tooling out of the published package while
// compiled output under lib/ stays in.
func npmignoreLines(opts blueprint.Options) []string {
	lines := []string{
		"/" + stateDir + "/",
		"/src/",
		"!/lib/",
		"!/lib/**/*.js",
		"!/lib/**/*.d.ts",
		"dist",
		"/tsconfig.json",
		"/tsconfig.dev.json",
		"tsconfig.tsbuildinfo",
		"/test/",
		"/.github/",
		"/.vscode/",
		"/.idea/",
		"/.gitattributes",
	}
	if opts.ProjenrcTs {
		lines = append(lines, "/.projenrc.ts")
	}
	if opts.ESLint {
		lines = append(lines, "/.eslintrc.json")
	}
	if opts.Jest {
		lines = append(lines, "/coverage/", "/test-reports/", "/jest.config.json")
	}
	return lines
}

func renderIgnoreFile(lines []string) []byte {
	var b strings.Builder
	b.WriteString("# " + Marker + "\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	return []byte(b.String())
}

// Generated entries in .gitignore sit between these lines so later runs can
// rewrite them without touching what the user added.
var (
	ignoreBlockStart = "# " + Marker
	ignoreBlockEnd   = "# ~~ end of generated entries"
)

// ensureIgnoreLines keeps the generated block of the ignore file at filePath
// equal to lines, creating the file when absent. Lines outside the block
// belong to the user and are kept; a generated line the user already has is
// not repeated. Lines from an earlier run that are no longer wanted are
// dropped. It reports whether the file changed.
func ensureIgnoreLines(fsys afero.Fs, filePath string, lines []string) (bool, error) {
	content, err := afero.ReadFile(fsys, filePath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", filePath, err)
	}

	user := userIgnoreLines(string(content))
	present := make(map[string]bool, len(user))
	for _, l := range user {
		present[strings.TrimSpace(l)] = true
	}

	var block []string
	for _, l := range lines {
		if !present[l] {
			block = append(block, l)
			present[l] = true
		}
	}

	var b strings.Builder
	for _, l := range user {
		b.WriteString(l + "\n")
	}
	if len(block) > 0 {
		b.WriteString(ignoreBlockStart + "\n")
		for _, l := range block {
			b.WriteString(l + "\n")
		}
		b.WriteString(ignoreBlockEnd + "\n")
	}

	updated := b.String()
	if updated == string(content) {
		return false, nil
	}
	if err := afero.WriteFile(fsys, filePath, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", filePath, err)
	}
	return true, nil
}

// userIgnoreLines returns the lines of content outside the generated block,
// without trailing blank lines. A start line with no end line claims the
// rest of the file.
func userIgnoreLines(content string) []string {
	var (
		user    []string
		inBlock bool
	)
	for _, l := range strings.Split(content, "\n") {
		switch {
		case strings.TrimSpace(l) == ignoreBlockStart:
			inBlock = true
		case strings.TrimSpace(l) == ignoreBlockEnd:
			inBlock = false
		case !inBlock:
			user = append(user, l)
		}
	}
	for len(user) > 0 && strings.TrimSpace(user[len(user)-1]) == "" {
		user = user[:len(user)-1]
	}
	return user
}

// ignorePattern is one line of a .gitignore or .npmignore file.
type ignorePattern struct {
	glob     string
	negate   bool
	anchored bool
	dirOnly  bool
}

// parseIgnore reads gitignore-style patterns. Blank lines, comments and
// patterns doublestar cannot compile are skipped.
func parseIgnore(data []byte) []ignorePattern {
	var patterns []ignorePattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var p ignorePattern
		if strings.HasPrefix(line, "!") {
			p.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			p.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			p.anchored = true
			line = strings.TrimPrefix(line, "/")
		}
		// A slash anywhere else also anchors the pattern to the root.
		if strings.Contains(line, "/") {
			p.anchored = true
		}
		if line == "" || !doublestar.ValidatePattern(line) {
			continue
		}
		p.glob = line
		patterns = append(patterns, p)
	}
	return patterns
}

// matches reports whether the pattern selects rel, a slash-separated file
// path, or any directory containing it.
func (p ignorePattern) matches(rel string) bool {
	if !p.dirOnly && p.matchPath(rel) {
		return true
	}
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if p.matchPath(dir) {
			return true
		}
	}
	return false
}

func (p ignorePattern) matchPath(candidate string) bool {
	if p.anchored {
		ok, _ := doublestar.Match(p.glob, candidate)
		return ok
	}
	ok, _ := doublestar.Match(p.glob, path.Base(candidate))
	return ok
}

// ignored applies patterns in order; the last matching pattern wins.
func ignored(rel string, patterns []ignorePattern) bool {
	result := false
	for _, p := range patterns {
		if p.matches(rel) {
			result = !p.negate
		}
	}
	return result
}
