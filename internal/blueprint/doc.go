// Package blueprint defines the blueprint record: the flat set of identity,
// licensing, dependency and compiler settings that describe a generated
// TypeScript blueprint package. It loads records from YAML, JSON or TOML files,
// validates them against an embedded JSON Schema, and hands them to a
// Synthesizer, which owns all file generation.
package blueprint
