package blueprint

import "context"

// Synthesizer turns a blueprint record into project files under outDir.
type Synthesizer interface {
	Synthesize(ctx context.Context, opts Options, outDir string) (*Result, error)
}

// Project is an immutable blueprint record bound for synthesis.
type Project struct {
	opts Options
}

// New captures opts. It performs no I/O and cannot fail; later changes to the
// caller's slices or maps do not reach the project.
func New(opts Options) *Project {
	return &Project{opts: opts.clone()}
}

// Options returns a copy of the project's record.
func (p *Project) Options() Options {
	return p.opts.clone()
}

// Synth hands the record to s exactly once. Errors from s are returned as-is.
func (p *Project) Synth(ctx context.Context, s Synthesizer, outDir string) (*Result, error) {
	return s.Synthesize(ctx, p.opts.clone(), outDir)
}
