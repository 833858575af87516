package synth

import (
	"github.com/agentx-labs/blueprint/internal/blueprint"
)

// Marker is embedded in every generated file that supports it.
const Marker = `~~ Generated by blueprint. To modify, edit the blueprint record and run "blueprint synth".`

// NodeVersion is the minimum Node.js release generated packages target.
const NodeVersion = "18.0.0"

type packageAuthor struct {
	Name         string `json:"name"`
	Organization bool   `json:"organization"`
}

// packageJSON mirrors the field order npm and projen use.
type packageJSON struct {
	Name                   string            `json:"name"`
	Description            string            `json:"description,omitempty"`
	DisplayName            string            `json:"displayName,omitempty"`
	PublishingOrganization string            `json:"publishingOrganization,omitempty"`
	Scripts                map[string]string `json:"scripts"`
	Author                 packageAuthor     `json:"author"`
	DevDependencies        map[string]string `json:"devDependencies"`
	Dependencies           map[string]string `json:"dependencies"`
	Keywords               []string          `json:"keywords,omitempty"`
	Engines                map[string]string `json:"engines"`
	Main                   string            `json:"main"`
	License                string            `json:"license"`
	Homepage               string            `json:"homepage,omitempty"`
	Version                string            `json:"version"`
	Types                  string            `json:"types"`
	Generated              string            `json:"//"`
}

func renderPackageJSON(opts blueprint.Options, deps []depEntry, tasks []task) ([]byte, error) {
	pkg := packageJSON{
		Name:                   opts.PackageName,
		Description:            opts.Description,
		DisplayName:            opts.DisplayName,
		PublishingOrganization: opts.PublishingOrganization,
		Scripts:                scripts(tasks),
		Author: packageAuthor{
			Name:         opts.AuthorName,
			Organization: opts.PublishingOrganization != "",
		},
		DevDependencies: map[string]string{},
		Dependencies:    map[string]string{},
		Keywords:        opts.Keywords,
		Engines:         map[string]string{"node": ">= " + NodeVersion},
		Main:            "lib/index.js",
		License:         opts.License,
		Homepage:        opts.Homepage,
		Version:         "0.0.0",
		Types:           "lib/index.d.ts",
		Generated:       Marker,
	}

	for _, d := range deps {
		if d.Type == DepRuntime {
			pkg.Dependencies[d.Name] = versionOrAny(d)
		} else {
			pkg.DevDependencies[d.Name] = versionOrAny(d)
		}
	}

	return marshalJSON(pkg)
}

// defaultCompilerOptions are applied before the record's overrides.
func defaultCompilerOptions() map[string]interface{} {
	return map[string]interface{}{
		"alwaysStrict":                 true,
		"declaration":                  true,
		"esModuleInterop":              true,
		"experimentalDecorators":       true,
		"inlineSourceMap":              true,
		"inlineSources":                true,
		"lib":                          []string{"es2020"},
		"module":                       "CommonJS",
		"noEmitOnError":                false,
		"noFallthroughCasesInSwitch":   true,
		"noImplicitAny":                true,
		"noImplicitReturns":            true,
		"noImplicitThis":               true,
		"noUnusedLocals":               true,
		"noUnusedParameters":           true,
		"resolveJsonModule":            true,
		"strict":                       true,
		"strictNullChecks":             true,
		"strictPropertyInitialization": true,
		"stripInternal":                true,
		"target":                       "ES2020",
		"outDir":                       "lib",
		"rootDir":                      "src",
	}
}

// compilerOptions merges the record's overrides over the defaults.
func compilerOptions(opts blueprint.Options) map[string]interface{} {
	merged := defaultCompilerOptions()
	for k, v := range opts.TSConfig.CompilerOptions {
		merged[k] = v
	}
	return merged
}

type tsconfigJSON struct {
	CompilerOptions map[string]interface{} `json:"compilerOptions"`
	Include         []string               `json:"include"`
	Exclude         []string               `json:"exclude"`
	Generated       string                 `json:"//"`
}

func renderTSConfig(opts blueprint.Options) ([]byte, error) {
	return marshalJSON(tsconfigJSON{
		CompilerOptions: compilerOptions(opts),
		Include:         []string{"src/**/*.ts"},
		Exclude:         []string{"node_modules"},
		Generated:       Marker,
	})
}

// renderDevTSConfig covers tests and the config script; it has no rootDir so
// files outside src/ type-check.
func renderDevTSConfig(opts blueprint.Options) ([]byte, error) {
	co := compilerOptions(opts)
	delete(co, "rootDir")
	delete(co, "outDir")

	include := []string{"src/**/*.ts", "test/**/*.ts"}
	if opts.ProjenrcTs {
		include = append(include, ".projenrc.ts")
	}
	return marshalJSON(tsconfigJSON{
		CompilerOptions: co,
		Include:         include,
		Exclude:         []string{"node_modules"},
		Generated:       Marker,
	})
}

func renderESLintConfig(opts blueprint.Options) ([]byte, error) {
	ignore := []string{"*.js", "*.d.ts", "node_modules/", "*.generated.ts", "coverage"}
	if opts.ProjenrcTs {
		ignore = append(ignore, "!.projenrc.ts")
	}
	return marshalJSON(map[string]interface{}{
		"env":     map[string]bool{"jest": opts.Jest, "node": true},
		"root":    true,
		"plugins": []string{"@typescript-eslint", "import"},
		"parser":  "@typescript-eslint/parser",
		"parserOptions": map[string]interface{}{
			"ecmaVersion": 2018,
			"sourceType":  "module",
			"project":     "./tsconfig.dev.json",
		},
		"extends": []string{"plugin:import/typescript"},
		"settings": map[string]interface{}{
			"import/parsers":  map[string][]string{"@typescript-eslint/parser": {".ts", ".tsx"}},
			"import/resolver": map[string]interface{}{"node": map[string]interface{}{}, "typescript": map[string]interface{}{"project": "./tsconfig.dev.json", "alwaysTryTypes": true}},
		},
		"ignorePatterns": ignore,
		"rules": map[string]interface{}{
			"curly":                []interface{}{"error", "multi-line", "consistent"},
			"quotes":               []interface{}{"error", "single", map[string]bool{"avoidEscape": true}},
			"semi":                 []interface{}{"error", "always"},
			"no-duplicate-imports": []string{"error"},
			"no-trailing-spaces":   []string{"error"},
			"import/no-extraneous-dependencies": []interface{}{"error", map[string]interface{}{
				"devDependencies":      []string{"**/test/**", "**/build-tools/**", ".projenrc.ts"},
				"optionalDependencies": false,
				"peerDependencies":     true,
			}},
			"@typescript-eslint/no-floating-promises": []string{"error"},
		},
		"//": Marker,
	})
}

func renderJestConfig() ([]byte, error) {
	return marshalJSON(map[string]interface{}{
		"preset":                  "ts-jest",
		"testMatch":               []string{"<rootDir>/@(src|test)/**/*(*.)@(spec|test).ts?(x)"},
		"clearMocks":              true,
		"collectCoverage":         true,
		"coverageDirectory":       "coverage",
		"coverageReporters":       []string{"json", "lcov", "clover", "cobertura", "text"},
		"testPathIgnorePatterns":  []string{"/node_modules/"},
		"watchPathIgnorePatterns": []string{"/node_modules/"},
		"//":                      Marker,
	})
}

// projenrcRecord is the record as written into .projenrc.ts. A list that is
// set but empty renders as [] and only an unset list is left out.
type projenrcRecord struct {
	AuthorName             string             `json:"authorName"`
	PublishingOrganization string             `json:"publishingOrganization"`
	PackageName            string             `json:"packageName"`
	Name                   string             `json:"name"`
	DisplayName            string             `json:"displayName"`
	DefaultReleaseBranch   string             `json:"defaultReleaseBranch"`
	License                string             `json:"license"`
	ProjenrcTs             bool               `json:"projenrcTs"`
	SampleCode             bool               `json:"sampleCode"`
	GitHub                 bool               `json:"github"`
	ESLint                 bool               `json:"eslint"`
	Jest                   bool               `json:"jest"`
	NpmignoreEnabled       bool               `json:"npmignoreEnabled"`
	TSConfig               blueprint.TSConfig `json:"tsconfig"`
	CopyrightOwner         string             `json:"copyrightOwner"`
	Deps                   *[]string          `json:"deps,omitempty"`
	Description            string             `json:"description"`
	DevDeps                *[]string          `json:"devDeps,omitempty"`
	Keywords               *[]string          `json:"keywords,omitempty"`
	Homepage               string             `json:"homepage"`
}

// setList returns nil for an unset list so omitempty drops it.
func setList(list []string) *[]string {
	if list == nil {
		return nil
	}
	return &list
}

// renderRecord renders the record as the object literal passed to the
// blueprint constructor in .projenrc.ts.
func renderRecord(opts blueprint.Options) (string, error) {
	data, err := marshalJSON(projenrcRecord{
		AuthorName:             opts.AuthorName,
		PublishingOrganization: opts.PublishingOrganization,
		PackageName:            opts.PackageName,
		Name:                   opts.Name,
		DisplayName:            opts.DisplayName,
		DefaultReleaseBranch:   opts.DefaultReleaseBranch,
		License:                opts.License,
		ProjenrcTs:             opts.ProjenrcTs,
		SampleCode:             opts.SampleCode,
		GitHub:                 opts.GitHub,
		ESLint:                 opts.ESLint,
		Jest:                   opts.Jest,
		NpmignoreEnabled:       opts.NpmignoreEnabled,
		TSConfig:               opts.TSConfig,
		CopyrightOwner:         opts.CopyrightOwner,
		Deps:                   setList(opts.Deps),
		Description:            opts.Description,
		DevDeps:                setList(opts.DevDeps),
		Keywords:               setList(opts.Keywords),
		Homepage:               opts.Homepage,
	})
	if err != nil {
		return "", err
	}
	return string(trimNewline(data)), nil
}

func renderDepsManifest(deps []depEntry) ([]byte, error) {
	return marshalJSON(struct {
		Dependencies []depEntry `json:"dependencies"`
		Generated    string     `json:"//"`
	}{deps, Marker})
}

func renderTasksManifest(tasks []task) ([]byte, error) {
	byName := make(map[string]task, len(tasks))
	for _, t := range tasks {
		byName[t.Name] = t
	}
	return marshalJSON(struct {
		Tasks     map[string]task `json:"tasks"`
		Generated string          `json:"//"`
	}{byName, Marker})
}

// fileList is the content of .blueprint/files.json.
type fileList struct {
	Files     []string `json:"files"`
	Generated string   `json:"//"`
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
