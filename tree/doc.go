// Package tree provides the hierarchical configuration tree consumed by the
// store, resolver and injection packages.
//
// A tree is a mapping from string keys to nested mappings (map[string]any),
// sequences ([]any) or scalar leaves. Paths are dot-separated with optional
// bracketed indices:
//
//	"db"                 -> tree["db"]
//	"db.replicas[1]"     -> tree["db"]["replicas"][1]
//	""                   -> the whole tree
//
// String values may reference other nodes with ${path}. References are
// resolved by Materialize; a reference that cannot be resolved is reported as
// ErrPathNotFound.
//
// Traversal is delegated to github.com/olebedev/config, and FromConfig adapts
// trees parsed by that library.
package tree
