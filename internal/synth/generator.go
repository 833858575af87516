package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/agentx-labs/blueprint/internal/blueprint"
	"github.com/agentx-labs/blueprint/internal/platform"
)

// stateDir holds the manifests synthesis writes about itself.
const stateDir = ".blueprint"

var (
	depsManifest  = stateDir + "/deps.json"
	tasksManifest = stateDir + "/tasks.json"
	filesManifest = stateDir + "/files.json"
)

// file is one planned output.
type file struct {
	path    string // Slash-separated, relative to the output directory
	content []byte
	managed bool // Rewritten every run, read-only, listed in files.json
}

// Generator synthesizes blueprint packages onto a filesystem.
type Generator struct {
	Fs       afero.Fs
	Readonly bool             // Mark managed files read-only
	Now      func() time.Time // Clock for the license year
	Logger   *zap.Logger
}

var _ blueprint.Synthesizer = (*Generator)(nil)

// New returns a Generator writing to fsys with read-only managed files.
func New(fsys afero.Fs, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		Fs:       fsys,
		Readonly: true,
		Now:      time.Now,
		Logger:   logger,
	}
}

// Synthesize writes every file the record calls for under outDir. It stops
// at the first filesystem error.
func (g *Generator) Synthesize(ctx context.Context, opts blueprint.Options, outDir string) (*blueprint.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, warnings, err := plan(opts, g.now().Year())
	if err != nil {
		return nil, oops.In("synth").With("package", opts.PackageName).Wrapf(err, "planning files")
	}

	if err := g.Fs.MkdirAll(outDir, 0o755); err != nil {
		return nil, oops.In("synth").With("dir", outDir).Wrapf(err, "creating output directory")
	}

	result := &blueprint.Result{OutputDir: outDir, Warnings: warnings}

	managed := make(map[string]bool)
	for _, f := range files {
		if f.managed {
			managed[f.path] = true
		}
	}
	if err := g.removeStale(outDir, managed); err != nil {
		return nil, err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wrote, err := g.write(outDir, f)
		if err != nil {
			return nil, err
		}
		if wrote {
			result.Files = append(result.Files, f.path)
		}
	}

	changed, err := ensureIgnoreLines(g.Fs, g.abs(outDir, ".gitignore"), gitignoreLines(opts))
	if err != nil {
		return nil, oops.In("synth").With("path", ".gitignore").Wrap(err)
	}
	if changed {
		result.Files = append(result.Files, ".gitignore")
	}

	list := make([]string, 0, len(managed)+1)
	for p := range managed {
		list = append(list, p)
	}
	list = append(list, filesManifest)
	sort.Strings(list)
	content, err := marshalJSON(fileList{Files: list, Generated: Marker})
	if err != nil {
		return nil, oops.In("synth").Wrapf(err, "encoding %s", filesManifest)
	}
	if _, err := g.write(outDir, file{path: filesManifest, content: content, managed: true}); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, filesManifest)

	sort.Strings(result.Files)
	g.Logger.Info("synthesized blueprint",
		zap.String("package", opts.PackageName),
		zap.String("dir", outDir),
		zap.Int("files", len(result.Files)),
		zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

// write stores f under outDir. Unmanaged files that already exist are kept
// and reported as not written.
func (g *Generator) write(outDir string, f file) (bool, error) {
	target := g.abs(outDir, f.path)
	errb := oops.In("synth").With("path", f.path)

	exists, err := afero.Exists(g.Fs, target)
	if err != nil {
		return false, errb.Wrapf(err, "checking %s", f.path)
	}
	if exists && !f.managed {
		g.Logger.Debug("keeping user-owned file", zap.String("path", f.path))
		return false, nil
	}

	if err := g.Fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, errb.Wrapf(err, "creating directory for %s", f.path)
	}
	if err := platform.MakeWritable(g.Fs, target); err != nil {
		return false, errb.Wrapf(err, "making %s writable", f.path)
	}
	if err := afero.WriteFile(g.Fs, target, f.content, platform.ModeWritable); err != nil {
		return false, errb.Wrapf(err, "writing %s", f.path)
	}
	if f.managed && g.Readonly {
		if err := platform.Chmod(g.Fs, target, platform.ModeReadonly); err != nil {
			return false, errb.Wrapf(err, "marking %s read-only", f.path)
		}
	}

	g.Logger.Debug("wrote file", zap.String("path", f.path), zap.Bool("managed", f.managed))
	return true, nil
}

// removeStale deletes files recorded by the previous run that this run no
// longer produces.
func (g *Generator) removeStale(outDir string, keep map[string]bool) error {
	data, err := afero.ReadFile(g.Fs, g.abs(outDir, filesManifest))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oops.In("synth").With("path", filesManifest).Wrapf(err, "reading previous file list")
	}

	var previous fileList
	if err := json.Unmarshal(data, &previous); err != nil {
		g.Logger.Warn("ignoring unreadable file list", zap.String("path", filesManifest), zap.Error(err))
		return nil
	}

	for _, p := range previous.Files {
		if keep[p] || p == filesManifest || !filepath.IsLocal(filepath.FromSlash(p)) {
			continue
		}
		target := g.abs(outDir, p)
		if err := platform.MakeWritable(g.Fs, target); err != nil {
			return oops.In("synth").With("path", p).Wrapf(err, "making stale file writable")
		}
		if err := g.Fs.Remove(target); err != nil && !os.IsNotExist(err) {
			return oops.In("synth").With("path", p).Wrapf(err, "removing stale file")
		}
		g.Logger.Debug("removed stale file", zap.String("path", p))
	}
	return nil
}

func (g *Generator) abs(outDir, rel string) string {
	return filepath.Join(outDir, filepath.FromSlash(rel))
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// plan renders every output for opts without touching the filesystem.
func plan(opts blueprint.Options, year int) ([]file, []string, error) {
	var (
		files    []file
		warnings []string
	)

	deps, err := resolveDeps(opts)
	if err != nil {
		return nil, nil, err
	}
	tasks := buildTasks(opts)

	record, err := renderRecord(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding record: %w", err)
	}
	data := templateData{
		Options:     opts,
		Year:        year,
		Marker:      Marker,
		RecordJSON:  record,
		NodeVersion: NodeVersion,
	}

	add := func(path string, managed bool, render func() ([]byte, error)) error {
		content, err := render()
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
		files = append(files, file{path: path, content: content, managed: managed})
		return nil
	}
	fromTemplate := func(name string) func() ([]byte, error) {
		return func() ([]byte, error) { return renderTemplate(name, data) }
	}

	steps := []struct {
		path    string
		enabled bool
		managed bool
		render  func() ([]byte, error)
	}{
		{"package.json", true, true, func() ([]byte, error) { return renderPackageJSON(opts, deps, tasks) }},
		{"tsconfig.json", true, true, func() ([]byte, error) { return renderTSConfig(opts) }},
		{"tsconfig.dev.json", true, true, func() ([]byte, error) { return renderDevTSConfig(opts) }},
		{".eslintrc.json", opts.ESLint, true, func() ([]byte, error) { return renderESLintConfig(opts) }},
		{"jest.config.json", opts.Jest, true, renderJestConfig},
		{".npmignore", opts.NpmignoreEnabled, true, func() ([]byte, error) { return renderIgnoreFile(npmignoreLines(opts)), nil }},
		{".github/workflows/build.yml", opts.GitHub, true, fromTemplate("github/build.yml.tmpl")},
		{depsManifest, true, true, func() ([]byte, error) { return renderDepsManifest(deps) }},
		{tasksManifest, true, true, func() ([]byte, error) { return renderTasksManifest(tasks) }},
		{"README.md", true, false, fromTemplate("README.md.tmpl")},
		{".projenrc.ts", opts.ProjenrcTs, false, fromTemplate("projenrc.ts.tmpl")},
		{"src/index.ts", opts.SampleCode, false, fromTemplate("sample/index.ts.tmpl")},
		{"test/hello.test.ts", opts.SampleCode && opts.Jest, false, fromTemplate("sample/hello.test.ts.tmpl")},
	}

	for _, s := range steps {
		if !s.enabled {
			continue
		}
		if err := add(s.path, s.managed, s.render); err != nil {
			return nil, nil, err
		}
	}

	licenseTemplate := "licenses/" + opts.License + ".tmpl"
	if opts.License != "" && hasTemplate(licenseTemplate) {
		if err := add("LICENSE", true, fromTemplate(licenseTemplate)); err != nil {
			return nil, nil, err
		}
	} else if opts.License != "" {
		warnings = append(warnings, fmt.Sprintf("no license text for %q; LICENSE was not generated", opts.License))
	}

	return files, warnings, nil
}
