package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	constraintRe = regexp.MustCompile(`^(===|==|!=|>=|<=|~=|>|<)\s*([^\s,]+)$`)
)

// Load reads and parses the manifest file at path. A missing file is reported
// as-is so callers can distinguish it (errors.Is with fs.ErrNotExist) from a
// malformed specifier.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse reads requirement specifiers from r, one per line. Blank lines and
// comments are skipped; lines starting with "-" are installer options and are
// passed through unparsed.
func Parse(r io.Reader) (*Manifest, error) {
	m := &Manifest{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			m.Options = append(m.Options, line)
			continue
		}

		req, err := parseSpecifier(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		m.Requirements = append(m.Requirements, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// parseSpecifier parses a single requirement line such as
// "pandas>=2.0,<3.0" or "requests[socks]==2.31.0 ; python_version >= '3.8'".
func parseSpecifier(line string) (Requirement, error) {
	var req Requirement

	// Environment marker
	if i := strings.Index(line, ";"); i >= 0 {
		req.Marker = strings.TrimSpace(line[i+1:])
		line = strings.TrimSpace(line[:i])
	}

	// Split the name (with optional extras) from the constraint list. The
	// first comparison character starts the constraints.
	nameEnd := strings.IndexAny(line, "=<>!~")
	spec := line
	if nameEnd >= 0 {
		spec = strings.TrimSpace(line[:nameEnd])
	}

	// Extras
	if i := strings.Index(spec, "["); i >= 0 {
		if !strings.HasSuffix(spec, "]") {
			return req, fmt.Errorf("unterminated extras in %q", line)
		}
		for _, e := range strings.Split(spec[i+1:len(spec)-1], ",") {
			e = strings.TrimSpace(e)
			if e != "" {
				req.Extras = append(req.Extras, e)
			}
		}
		spec = spec[:i]
	}

	if !nameRe.MatchString(spec) {
		return req, fmt.Errorf("invalid package name %q", spec)
	}
	req.Name = spec

	if nameEnd < 0 {
		return req, nil
	}

	for _, clause := range strings.Split(line[nameEnd:], ",") {
		clause = strings.TrimSpace(clause)
		parts := constraintRe.FindStringSubmatch(clause)
		if parts == nil {
			return req, fmt.Errorf("invalid version constraint %q", clause)
		}
		req.Constraints = append(req.Constraints, Constraint{Op: parts[1], Version: parts[2]})
	}

	return req, nil
}

// stripComment removes trailing comments and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
