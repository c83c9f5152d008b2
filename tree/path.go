package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned when a path string cannot be parsed.
var ErrInvalidPath = errors.New("invalid path")

// Segment is a single step of a Path: either a mapping key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path is an ordered sequence of segments. The zero value addresses the root.
type Path []Segment

// ParsePath parses a dot-separated path with optional bracketed indices,
// e.g. "db.replicas[2].host". The empty string yields the root path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}

	var path Path

	for _, part := range strings.Split(s, ".") {
		segs, err := parsePart(part)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, s, err)
		}

		path = append(path, segs...)
	}

	return path, nil
}

func parsePart(part string) ([]Segment, error) {
	key, rest, hasIndex := strings.Cut(part, "[")
	if key == "" && (!hasIndex || part == "") {
		return nil, errors.New("empty segment")
	}

	var segs []Segment

	if key != "" {
		if strings.ContainsAny(key, "]") {
			return nil, fmt.Errorf("unexpected ']' in %q", part)
		}

		segs = append(segs, Segment{Key: key})
	}

	for hasIndex {
		var raw string

		var closed bool

		raw, rest, closed = strings.Cut(rest, "]")
		if !closed {
			return nil, fmt.Errorf("unclosed '[' in %q", part)
		}

		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("bad index %q", raw)
		}

		segs = append(segs, Segment{Index: index, IsIndex: true})

		if rest == "" {
			break
		}

		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q after index", rest)
		}

		rest = rest[1:]
	}

	return segs, nil
}

// String renders the path back to its canonical text form.
func (p Path) String() string {
	var builder strings.Builder

	for i, seg := range p {
		switch {
		case seg.IsIndex:
			builder.WriteString("[" + strconv.Itoa(seg.Index) + "]")
		case i > 0:
			builder.WriteString("." + seg.Key)
		default:
			builder.WriteString(seg.Key)
		}
	}

	return builder.String()
}
