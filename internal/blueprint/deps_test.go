package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDependency(t *testing.T) {
	tests := []struct {
		id         string
		name       string
		constraint string
	}{
		{"projen", "projen", ""},
		{"ts-node@^10", "ts-node", "^10"},
		{"@amazon-codecatalyst/blueprints.blueprint", "@amazon-codecatalyst/blueprints.blueprint", ""},
		{"@types/node@>=18 <21", "@types/node", ">=18 <21"},
		{"typescript@~5.4", "typescript", "~5.4"},
		{"  fast-xml-parser  ", "fast-xml-parser", ""},
		{"typescript@latest", "typescript", "latest"},
		{"react@next", "react", "next"},
		{"@types/node@beta", "@types/node", "beta"},
		{"lib@file:../lib", "lib", "file:../lib"},
		{"x@github:user/repo", "x", "github:user/repo"},
		{"foo@npm:bar@^1", "foo", "npm:bar@^1"},
		{"@scope/foo@npm:@other/bar@^2", "@scope/foo", "npm:@other/bar@^2"},
		{"pkg@git+https://example.com/pkg.git#semver:^1", "pkg", "git+https://example.com/pkg.git#semver:^1"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d, err := ParseDependency(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.constraint, d.Constraint)
		})
	}
}

func TestParseDependency_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"scope only", "@scope"},
		{"scope with slash only", "@scope/"},
		{"missing name", "@^1.0.0"},
		{"bad range", "ts-node@>=not-a-version"},
		{"bad caret range", "ts-node@^banana"},
		{"tag with space", "ts-node@some tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDependency(tt.id)
			assert.Error(t, err)
		})
	}
}

func TestDependencyString(t *testing.T) {
	assert.Equal(t, "projen", Dependency{Name: "projen"}.String())
	assert.Equal(t, "ts-node@^10", Dependency{Name: "ts-node", Constraint: "^10"}.String())
}

func TestOptionsDependencies(t *testing.T) {
	opts := Default()

	deps, err := opts.Dependencies()
	require.NoError(t, err)
	require.Len(t, deps, 7)
	assert.Equal(t, "@amazon-codecatalyst/blueprint-component.issues", deps[6].Name)

	devDeps, err := opts.DevDependencies()
	require.NoError(t, err)
	require.Len(t, devDeps, 5)
	assert.Equal(t, Dependency{Name: "ts-node", Constraint: "^10"}, devDeps[0])
}
