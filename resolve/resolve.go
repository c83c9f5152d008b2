package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hydr8/tree"
)

// ErrNotAMapping is returned when a path resolves to a scalar or a sequence.
var ErrNotAMapping = errors.New("not a mapping")

// ErrUnknownScope is returned for a scope other than ScopeModule or ScopeFn.
var ErrUnknownScope = errors.New("unknown scope")

// Scope controls the granularity of automatic path derivation.
type Scope string

const (
	// ScopeModule derives the path from the namespace alone.
	ScopeModule Scope = "module"
	// ScopeFn appends the qualified local name to the namespace.
	ScopeFn Scope = "fn"
)

// Resolve returns the mapping at path as a plain, fully materialized map.
func Resolve(cfg tree.Tree, path string) (map[string]any, error) {
	parsed, err := tree.ParsePath(path)
	if err != nil {
		return nil, err
	}

	node, err := cfg.Select(parsed)
	if err != nil {
		return nil, fmt.Errorf("config path %q: %w", path, err)
	}

	if node == nil {
		return nil, fmt.Errorf("config path %q: %w", path, tree.ErrPathNotFound)
	}

	value, err := cfg.Materialize(node)
	if err != nil {
		return nil, fmt.Errorf("config path %q: %w", path, err)
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("config path %q resolved to %T: %w", path, value, ErrNotAMapping)
	}

	return mapping, nil
}

// ResolveAuto derives the path for loc with DerivePath and resolves it.
func ResolveAuto(cfg tree.Tree, loc Location, scope Scope) (map[string]any, error) {
	path, err := DerivePath(cfg, loc, scope)
	if err != nil {
		return nil, err
	}

	return Resolve(cfg, path)
}

// DerivePath builds a config path from loc.
//
// When the namespace has more than one segment and its first segment is not
// a top-level key of cfg, that segment is taken to be the project name and
// dropped:
//
//	myproject.data.loaders              -> data.loaders
//	myproject.data.loaders + Build (fn) -> data.loaders.Build
//
// The check runs against cfg on every call. A project name that happens to
// also be a top-level key is kept, and the resulting path will usually not
// exist.
func DerivePath(cfg tree.Tree, loc Location, scope Scope) (string, error) {
	parts := loc.Namespace()

	if len(parts) > 1 && !cfg.Has(parts[0]) {
		parts = parts[1:]
	}

	switch scope {
	case ScopeModule, "":
	case ScopeFn:
		parts = append(parts, loc.Name()...)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}

	return strings.Join(parts, "."), nil
}
