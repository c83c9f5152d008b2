package tree

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// referencePattern matches absolute references such as ${a.b[0].c}.
// Relative references (${.x}, ${..x}) are not supported and, like resolver
// calls with a colon, are left untouched.
var referencePattern = regexp.MustCompile(`\$\{([A-Za-z0-9_\-<>][A-Za-z0-9_\-.\[\]<>]*)\}`)

// interpolate resolves references inside s. A string that is exactly one
// reference takes the referenced node's value and type; references embedded
// in longer text are formatted with fmt.Sprint.
func (m *Map) interpolate(s string, seen []string) (any, error) {
	matches := referencePattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(s) {
		return m.reference(s[matches[0][2]:matches[0][3]], seen)
	}

	var builder strings.Builder

	last := 0

	for _, match := range matches {
		builder.WriteString(s[last:match[0]])

		value, err := m.reference(s[match[2]:match[3]], seen)
		if err != nil {
			return nil, err
		}

		builder.WriteString(fmt.Sprint(value))

		last = match[1]
	}

	builder.WriteString(s[last:])

	return builder.String(), nil
}

func (m *Map) reference(ref string, seen []string) (any, error) {
	if slices.Contains(seen, ref) {
		return nil, fmt.Errorf("%w: reference cycle through ${%s}", ErrPathNotFound, ref)
	}

	path, err := ParsePath(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: reference ${%s}: %w", ErrPathNotFound, ref, err)
	}

	node, err := m.Select(path)
	if err != nil {
		return nil, fmt.Errorf("resolving reference ${%s}: %w", ref, err)
	}

	return m.materialize(node, append(slices.Clone(seen), ref))
}
