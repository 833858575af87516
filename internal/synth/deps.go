package synth

import (
	"sort"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

// Dependency types recorded in .blueprint/deps.json.
const (
	DepRuntime = "runtime"
	DepBuild   = "build"
	DepTest    = "test"
)

// depEntry is one row of .blueprint/deps.json.
type depEntry struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Type    string `json:"type"`
}

// impliedBuildDeps are always needed to compile a TypeScript package.
var impliedBuildDeps = []string{"typescript", "@types/node"}

var eslintDeps = []string{
	"eslint@^8",
	"@typescript-eslint/eslint-plugin@^7",
	"@typescript-eslint/parser@^7",
	"eslint-import-resolver-typescript",
	"eslint-plugin-import",
}

var jestDeps = []string{"jest", "@types/jest", "ts-jest"}

// resolveDeps combines the record's lists with the tooling each enabled
// feature needs. An entry from the record always wins over an implied one
// with the same name.
func resolveDeps(opts blueprint.Options) ([]depEntry, error) {
	deps, err := opts.Dependencies()
	if err != nil {
		return nil, err
	}
	devDeps, err := opts.DevDependencies()
	if err != nil {
		return nil, err
	}

	var entries []depEntry
	declared := make(map[string]bool)
	add := func(d blueprint.Dependency, typ string) {
		if declared[d.Name] {
			return
		}
		declared[d.Name] = true
		entries = append(entries, depEntry{Name: d.Name, Version: d.Constraint, Type: typ})
	}

	for _, d := range deps {
		add(d, DepRuntime)
	}
	for _, d := range devDeps {
		add(d, DepBuild)
	}

	implied := func(ids []string, typ string) error {
		for _, id := range ids {
			d, err := blueprint.ParseDependency(id)
			if err != nil {
				return err
			}
			add(d, typ)
		}
		return nil
	}
	if err := implied(impliedBuildDeps, DepBuild); err != nil {
		return nil, err
	}
	if opts.ESLint {
		if err := implied(eslintDeps, DepBuild); err != nil {
			return nil, err
		}
	}
	if opts.Jest {
		if err := implied(jestDeps, DepTest); err != nil {
			return nil, err
		}
	}
	if opts.ProjenrcTs {
		if err := implied([]string{"ts-node"}, DepBuild); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Type < entries[j].Type
	})
	return entries, nil
}

// versionOrAny returns the npm range for a dependency, "*" when unpinned.
func versionOrAny(e depEntry) string {
	if e.Version == "" {
		return "*"
	}
	return e.Version
}
