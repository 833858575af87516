package synth

import (
	"strings"

	"github.com/agentx-labs/blueprint/internal/blueprint"
)

// task is one entry in .blueprint/tasks.json and, when it has steps, one
// npm script in package.json.
type task struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Steps       []step `json:"steps,omitempty"`
}

// step runs a shell command or spawns another task.
type step struct {
	Exec  string `json:"exec,omitempty"`
	Spawn string `json:"spawn,omitempty"`
}

// buildTasks returns the task table in execution order.
func buildTasks(opts blueprint.Options) []task {
	synthCmd := "blueprint synth"
	if opts.ProjenrcTs {
		synthCmd = "ts-node --project tsconfig.dev.json .projenrc.ts"
	}

	tasks := []task{
		{Name: "default", Description: "Synthesize project files", Steps: []step{{Exec: synthCmd}}},
		{Name: "compile", Description: "Only compile", Steps: []step{{Exec: "tsc --build"}}},
	}

	testTask := task{Name: "test", Description: "Run tests"}
	if opts.Jest {
		testTask.Steps = append(testTask.Steps, step{Exec: "jest --passWithNoTests --updateSnapshot"})
	}
	if opts.ESLint {
		testTask.Steps = append(testTask.Steps, step{Spawn: "eslint"})
		lintTargets := []string{"src", "test"}
		if opts.ProjenrcTs {
			lintTargets = append(lintTargets, ".projenrc.ts")
		}
		tasks = append(tasks, task{
			Name:        "eslint",
			Description: "Runs eslint against the codebase",
			Steps: []step{{
				Exec: "eslint --ext .ts,.tsx --fix --no-error-on-unmatched-pattern " + strings.Join(lintTargets, " "),
			}},
		})
	}
	tasks = append(tasks, testTask)

	tasks = append(tasks,
		task{Name: "package", Description: "Creates the distribution package", Steps: []step{
			{Exec: "mkdir -p dist/js"},
			{Exec: "npm pack --pack-destination dist/js"},
		}},
		task{Name: "watch", Description: "Watch & compile in the background", Steps: []step{{Exec: "tsc --build -w"}}},
	)

	build := task{Name: "build", Description: "Full release build"}
	for _, name := range []string{"default", "compile", "test", "package"} {
		if t, ok := findTask(tasks, name); ok && len(t.Steps) > 0 {
			build.Steps = append(build.Steps, step{Spawn: name})
		}
	}
	return append(tasks, build)
}

func findTask(tasks []task, name string) (task, bool) {
	for _, t := range tasks {
		if t.Name == name {
			return t, true
		}
	}
	return task{}, false
}

// scripts renders tasks with steps as npm scripts.
func scripts(tasks []task) map[string]string {
	out := make(map[string]string, len(tasks))
	for _, t := range tasks {
		if len(t.Steps) == 0 {
			continue
		}
		parts := make([]string, 0, len(t.Steps))
		for _, s := range t.Steps {
			if s.Spawn != "" {
				parts = append(parts, "npm run "+s.Spawn)
				continue
			}
			parts = append(parts, s.Exec)
		}
		out[t.Name] = strings.Join(parts, " && ")
	}
	return out
}
