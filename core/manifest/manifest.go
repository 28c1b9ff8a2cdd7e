package manifest

import "strings"

// Constraint is a single version clause of a requirement (e.g. ">=2.0").
type Constraint struct {
	// Op is the comparison operator (==, !=, >=, <=, >, <, ~=).
	Op string
	// Version is the right-hand side of the clause.
	Version string
}

func (c Constraint) String() string {
	return c.Op + c.Version
}

// Requirement is one declared dependency: a package name with optional
// extras, version constraints and an environment marker.
type Requirement struct {
	// Name is the distribution name as written in the manifest.
	Name string
	// Extras are the optional feature sets requested (pkg[extra1,extra2]).
	Extras []string
	// Constraints are the version clauses, in declaration order.
	Constraints []Constraint
	// Marker is the raw environment marker after ";" if one was present.
	Marker string
}

// String renders the requirement back into canonical specifier form.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if len(r.Extras) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(r.Extras, ","))
		b.WriteString("]")
	}
	for i, c := range r.Constraints {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(c.String())
	}
	if r.Marker != "" {
		b.WriteString("; ")
		b.WriteString(r.Marker)
	}
	return b.String()
}

// Manifest is the parsed dependency declaration file. Requirements keep the
// order they were declared in; the installer consumes them as a whole, the
// order only matters for reporting.
type Manifest struct {
	// Path is the file the manifest was loaded from.
	Path string
	// Requirements are the parsed package specifiers.
	Requirements []Requirement
	// Options are pass-through installer option lines (-r, --index-url, ...).
	Options []string
}

// Names returns the declared package names in order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Requirements))
	for _, r := range m.Requirements {
		names = append(names, r.Name)
	}
	return names
}
