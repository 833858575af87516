package blueprint

// Options is the blueprint record. Field order matches the order in which
// the record is rendered back into .projenrc.ts.
type Options struct {
	AuthorName             string   `yaml:"authorName" json:"authorName" toml:"authorName"`
	PublishingOrganization string   `yaml:"publishingOrganization" json:"publishingOrganization" toml:"publishingOrganization"`
	PackageName            string   `yaml:"packageName" json:"packageName" toml:"packageName"`
	Name                   string   `yaml:"name" json:"name" toml:"name"`
	DisplayName            string   `yaml:"displayName" json:"displayName" toml:"displayName"`
	DefaultReleaseBranch   string   `yaml:"defaultReleaseBranch" json:"defaultReleaseBranch" toml:"defaultReleaseBranch"`
	License                string   `yaml:"license" json:"license" toml:"license"`
	ProjenrcTs             bool     `yaml:"projenrcTs" json:"projenrcTs" toml:"projenrcTs"`
	SampleCode             bool     `yaml:"sampleCode" json:"sampleCode" toml:"sampleCode"`
	GitHub                 bool     `yaml:"github" json:"github" toml:"github"`
	ESLint                 bool     `yaml:"eslint" json:"eslint" toml:"eslint"`
	Jest                   bool     `yaml:"jest" json:"jest" toml:"jest"`
	NpmignoreEnabled       bool     `yaml:"npmignoreEnabled" json:"npmignoreEnabled" toml:"npmignoreEnabled"`
	TSConfig               TSConfig `yaml:"tsconfig,omitempty" json:"tsconfig,omitempty" toml:"tsconfig,omitempty"`
	CopyrightOwner         string   `yaml:"copyrightOwner" json:"copyrightOwner" toml:"copyrightOwner"`
	Deps                   []string `yaml:"deps,omitempty" json:"deps,omitempty" toml:"deps,omitempty"`
	Description            string   `yaml:"description" json:"description" toml:"description"`
	DevDeps                []string `yaml:"devDeps,omitempty" json:"devDeps,omitempty" toml:"devDeps,omitempty"`
	Keywords               []string `yaml:"keywords,omitempty" json:"keywords,omitempty" toml:"keywords,omitempty"`
	Homepage               string   `yaml:"homepage" json:"homepage" toml:"homepage"`
}

// TSConfig holds overrides applied on top of the generated tsconfig.json.
type TSConfig struct {
	// CompilerOptions maps a compiler option name to a bool or string value.
	CompilerOptions map[string]interface{} `yaml:"compilerOptions,omitempty" json:"compilerOptions,omitempty" toml:"compilerOptions,omitempty"`
}

// Dependency is a parsed dependency identifier such as "ts-node@^10".
type Dependency struct {
	Name       string `json:"name"`
	Constraint string `json:"version,omitempty"`
}

// String returns the identifier form "name[@constraint]".
func (d Dependency) String() string {
	if d.Constraint == "" {
		return d.Name
	}
	return d.Name + "@" + d.Constraint
}

// Result holds the outcome of a synthesis run.
type Result struct {
	OutputDir string
	Files     []string // Slash-separated paths relative to OutputDir, sorted
	Warnings  []string
}

// clone returns a deep copy so callers cannot mutate a Project's record.
func (o Options) clone() Options {
	c := o
	c.Deps = cloneStrings(o.Deps)
	c.DevDeps = cloneStrings(o.DevDeps)
	c.Keywords = cloneStrings(o.Keywords)
	if o.TSConfig.CompilerOptions != nil {
		c.TSConfig.CompilerOptions = make(map[string]interface{}, len(o.TSConfig.CompilerOptions))
		for k, v := range o.TSConfig.CompilerOptions {
			c.TSConfig.CompilerOptions[k] = v
		}
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
