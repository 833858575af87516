package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

func TestBuildTasks_Default(t *testing.T) {
	tasks := buildTasks(blueprint.Default())

	names := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		names = append(names, tk.Name)
	}
	assert.Equal(t, []string{"default", "compile", "eslint", "test", "package", "watch", "build"}, names)

	build, ok := findTask(tasks, "build")
	require.True(t, ok)
	assert.Equal(t, []step{{Spawn: "default"}, {Spawn: "compile"}, {Spawn: "test"}, {Spawn: "package"}}, build.Steps)

	eslint, ok := findTask(tasks, "eslint")
	require.True(t, ok)
	assert.Contains(t, eslint.Steps[0].Exec, ".projenrc.ts")
}

func TestBuildTasks_NoTestTooling(t *testing.T) {
	opts := blueprint.Default()
	opts.ESLint = false
	opts.Jest = false
	opts.ProjenrcTs = false

	tasks := buildTasks(opts)

	test, ok := findTask(tasks, "test")
	require.True(t, ok)
	assert.Empty(t, test.Steps)

	_, ok = findTask(tasks, "eslint")
	assert.False(t, ok)

	s := scripts(tasks)
	assert.NotContains(t, s, "test")
	assert.Equal(t, "blueprint synth", s["default"])
	assert.Equal(t, "npm run default && npm run compile && npm run package", s["build"])
}

func TestResolveDeps(t *testing.T) {
	opts := blueprint.Default()
	opts.Jest = true

	deps, err := resolveDeps(opts)
	require.NoError(t, err)

	byName := make(map[string]depEntry)
	for _, d := range deps {
		byName[d.Name] = d
	}

	assert.Equal(t, depEntry{Name: "projen", Type: DepRuntime}, byName["projen"])
	assert.Equal(t, depEntry{Name: "ts-node", Version: "^10", Type: DepBuild}, byName["ts-node"])
	assert.Equal(t, depEntry{Name: "jest", Type: DepTest}, byName["jest"])
	assert.Equal(t, DepBuild, byName["@types/node"].Type)

	for i := 1; i < len(deps); i++ {
		assert.LessOrEqual(t, deps[i-1].Name, deps[i].Name)
	}
}

func TestResolveDeps_RecordWins(t *testing.T) {
	opts := blueprint.Default()
	opts.DevDeps = []string{"typescript@~5.4"}

	deps, err := resolveDeps(opts)
	require.NoError(t, err)

	var count int
	for _, d := range deps {
		if d.Name == "typescript" {
			count++
			assert.Equal(t, "~5.4", d.Version)
		}
	}
	assert.Equal(t, 1, count)
}
