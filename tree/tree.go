package tree

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"

	olebedev "github.com/olebedev/config"
)

// ErrPathNotFound is returned when a path segment or a reference cannot be found in the tree.
var ErrPathNotFound = errors.New("path not found")

// ErrRootNotMapping is returned when a tree is built from a document whose root is not a mapping.
var ErrRootNotMapping = errors.New("root is not a mapping")

// Tree is a read-only hierarchical configuration.
//
// Nodes are map[string]any for mappings, []any for sequences, and any other
// value for scalar leaves.
type Tree interface {
	// Select returns the raw node at path. The node is shared with the tree
	// and must not be modified; use Materialize to obtain a private copy.
	Select(path Path) (any, error)
	// Has reports whether key is a top-level key of the tree.
	Has(key string) bool
	// Materialize deep copies node, resolving ${path} references against the tree.
	Materialize(node any) (any, error)
}

// Map is the native Tree implementation backed by nested maps and slices.
type Map struct {
	root map[string]any
}

var _ Tree = (*Map)(nil)

// New builds a Map from root. The input is deep copied and normalized, so
// later changes to root are not visible through the tree. A nil root yields
// an empty tree.
func New(root map[string]any) *Map {
	normalized, _ := normalize(root).(map[string]any)
	if normalized == nil {
		normalized = map[string]any{}
	}

	return &Map{root: normalized}
}

// FromConfig adapts a tree parsed by github.com/olebedev/config.
func FromConfig(cfg *olebedev.Config) (*Map, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrRootNotMapping)
	}

	root, ok := normalize(cfg.Root).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrRootNotMapping, cfg.Root)
	}

	return &Map{root: root}, nil
}

// Select walks path from the root. Any missing key, out-of-range index or
// attempt to descend into a scalar is reported as ErrPathNotFound. Key
// segments only match mappings and index segments only match sequences, so
// "list.0" and "m[0]" do not match.
func (m *Map) Select(path Path) (any, error) {
	var node any = m.root

	for i, segment := range path {
		next, ok := child(node, segment)
		if !ok {
			return nil, fmt.Errorf("%w: %s (at %s)", ErrPathNotFound, path, path[:i+1])
		}

		node = next
	}

	return node, nil
}

func child(node any, segment Segment) (any, bool) {
	switch value := node.(type) {
	case map[string]any:
		if segment.IsIndex {
			return nil, false
		}

		next, ok := value[segment.Key]

		return next, ok
	case []any:
		if !segment.IsIndex || segment.Index < 0 || segment.Index >= len(value) {
			return nil, false
		}

		return value[segment.Index], true
	default:
		return nil, false
	}
}

// Has reports whether key is a top-level key.
func (m *Map) Has(key string) bool {
	_, ok := m.root[key]

	return ok
}

// Keys returns the sorted top-level keys.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.root))
	for key := range m.root {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Materialize deep copies node and resolves every ${path} reference it contains.
func (m *Map) Materialize(node any) (any, error) {
	return m.materialize(node, nil)
}

func (m *Map) materialize(node any, seen []string) (any, error) {
	switch value := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))

		for key, child := range value {
			resolved, err := m.materialize(child, seen)
			if err != nil {
				return nil, err
			}

			out[key] = resolved
		}

		return out, nil
	case []any:
		out := make([]any, len(value))

		for i, child := range value {
			resolved, err := m.materialize(child, seen)
			if err != nil {
				return nil, err
			}

			out[i] = resolved
		}

		return out, nil
	case string:
		return m.interpolate(value, seen)
	default:
		return value, nil
	}
}

// normalize deep copies value, converting integer kinds to int, float32 to
// float64, every map to map[string]any and every slice to []any.
//
//nolint:cyclop // one case per supported kind
func normalize(value any) any {
	switch typed := value.(type) {
	case nil, string, bool, float64, int:
		return typed
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[key] = normalize(child)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, child := range typed {
			out[i] = normalize(child)
		}

		return out
	case []byte:
		return slices.Clone(typed)
	case float32:
		return float64(typed)
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() <= math.MaxInt {
			return int(rv.Uint())
		}

		return value
	case reflect.Map:
		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}

		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}

		return out
	default:
		return value
	}
}
