package blueprint

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseDependency splits an identifier of the form "name", "name@version",
// "@scope/name" or "@scope/name@version". The version is split at the first
// "@" after the name, so npm aliases such as "foo@npm:bar@^1" keep their
// target intact. Versions that look like a range must parse as a semver
// constraint; dist-tags ("latest") and protocol specs ("file:", "github:",
// "npm:") are kept as written.
func ParseDependency(id string) (Dependency, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dependency{}, fmt.Errorf("empty dependency identifier")
	}

	name, constraint := id, ""
	// Index 0 is the scope marker, not a version separator.
	if at := strings.Index(id[1:], "@"); at >= 0 {
		name, constraint = id[:at+1], id[at+2:]
	}

	if strings.HasPrefix(name, "@") && !strings.Contains(name, "/") {
		return Dependency{}, fmt.Errorf("scoped dependency %q is missing a package name", id)
	}
	if name == "" || strings.HasSuffix(name, "/") {
		return Dependency{}, fmt.Errorf("dependency %q is missing a package name", id)
	}

	switch {
	case constraint == "":
	case isRange(constraint):
		if _, err := semver.NewConstraint(constraint); err != nil {
			return Dependency{}, fmt.Errorf("dependency %q has invalid version range %q: %w", name, constraint, err)
		}
	case strings.ContainsAny(constraint, " \t"):
		return Dependency{}, fmt.Errorf("dependency %q has invalid version %q", name, constraint)
	}

	return Dependency{Name: name, Constraint: constraint}, nil
}

// isRange reports whether v reads as a semver range rather than a dist-tag
// or a protocol spec.
func isRange(v string) bool {
	if strings.Contains(v, ":") {
		return false
	}
	return strings.ContainsRune("0123456789^~<>=*", rune(v[0]))
}

// Dependencies parses the runtime dependency list in order.
func (o Options) Dependencies() ([]Dependency, error) {
	return parseDependencies(o.Deps)
}

// DevDependencies parses the development dependency list in order.
func (o Options) DevDependencies() ([]Dependency, error) {
	return parseDependencies(o.DevDeps)
}

func parseDependencies(ids []string) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(ids))
	for _, id := range ids {
		d, err := ParseDependency(id)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	return deps, nil
}
