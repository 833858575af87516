// Package synth writes the files of a TypeScript blueprint package from a
// blueprint record. It implements blueprint.Synthesizer: package.json,
// tsconfig files, lint and test configuration, ignore files, the license,
// optional sample code and CI workflow, and the .blueprint/ manifests that
// record dependencies, tasks and the set of generated files.
//
// Generated files are marked read-only and carry a "do not edit" marker where
// the format allows it. Files a user is expected to edit (README.md,
// .projenrc.ts, sample sources) are written only when missing. On each run,
// files recorded by the previous run but no longer produced are removed.
package synth
