package inject

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/0xalexb/hydr8/resolve"
	"github.com/0xalexb/hydr8/store"
)

var (
	// ErrNoExplicitPath is returned by mapping access on a Proxy created without AtPath.
	ErrNoExplicitPath = errors.New("no explicit path to resolve as a mapping: pass AtPath to Use")
	// ErrKeyNotFound is returned by Proxy.Get for a key absent from the resolved mapping.
	ErrKeyNotFound = errors.New("key not found")
)

// Option configures a Proxy.
type Option func(*Proxy)

// AtPath sets an explicit config path. Without it, wrapped functions derive
// their path from their location, and mapping access fails.
func AtPath(path string) Option {
	return func(p *Proxy) {
		p.path = path
		p.hasPath = true
	}
}

// AsDict injects the whole resolved mapping as the single argument name
// instead of matching keys to parameters.
func AsDict(name string) Option {
	return func(p *Proxy) {
		p.asDict = name
	}
}

// WithScope sets the derivation scope used when no path is given.
func WithScope(scope resolve.Scope) Option {
	return func(p *Proxy) {
		p.scope = scope
	}
}

// Item is a key/value pair of a resolved mapping.
type Item struct {
	Key   string
	Value any
}

// Proxy reads configuration from a store on behalf of wrapped functions, and
// doubles as a lazy read-only view of the mapping at its path.
//
// Creating a Proxy never touches the store. The mapping view resolves on first
// access and keeps the result for the life of the Proxy.
type Proxy struct {
	store   *store.Store
	path    string
	hasPath bool
	asDict  string
	scope   resolve.Scope

	mu       sync.Mutex
	resolved map[string]any
}

// Use creates a Proxy reading from st.
func Use(st *store.Store, opts ...Option) *Proxy {
	proxy := &Proxy{
		store: st,
		scope: resolve.ScopeModule,
	}

	for _, apply := range opts {
		apply(proxy)
	}

	return proxy
}

// Path returns the explicit path and whether one was set.
func (p *Proxy) Path() (string, bool) {
	return p.path, p.hasPath
}

// resolveFor resolves the mapping for a wrapped function at loc. It is not
// cached, so every call observes the store's current tree.
func (p *Proxy) resolveFor(ctx context.Context, loc resolve.Location) (map[string]any, error) {
	cfg, err := p.store.GetContext(ctx)
	if err != nil {
		return nil, err
	}

	if p.hasPath {
		return resolve.Resolve(cfg, p.path)
	}

	return resolve.ResolveAuto(cfg, loc, p.scope)
}

func (p *Proxy) mapping() (map[string]any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved != nil {
		return p.resolved, nil
	}

	if !p.hasPath {
		return nil, ErrNoExplicitPath
	}

	cfg, err := p.store.Get()
	if err != nil {
		return nil, err
	}

	resolved, err := resolve.Resolve(cfg, p.path)
	if err != nil {
		return nil, err
	}

	p.resolved = resolved

	return resolved, nil
}

// Resolved reports whether the mapping view has been resolved.
func (p *Proxy) Resolved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.resolved != nil
}

// Lookup returns a copy of the value at key and whether it exists.
func (p *Proxy) Lookup(key string) (any, bool, error) {
	resolved, err := p.mapping()
	if err != nil {
		return nil, false, err
	}

	value, ok := resolved[key]

	return clone(value), ok, nil
}

// Get returns a copy of the value at key, or ErrKeyNotFound.
func (p *Proxy) Get(key string) (any, error) {
	value, ok, err := p.Lookup(key)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return value, nil
}

// Contains reports whether key exists in the mapping.
func (p *Proxy) Contains(key string) (bool, error) {
	_, ok, err := p.Lookup(key)

	return ok, err
}

// Len returns the number of keys in the mapping.
func (p *Proxy) Len() (int, error) {
	resolved, err := p.mapping()
	if err != nil {
		return 0, err
	}

	return len(resolved), nil
}

// Keys returns the keys of the mapping in sorted order.
func (p *Proxy) Keys() ([]string, error) {
	resolved, err := p.mapping()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(resolved))
	for key := range resolved {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys, nil
}

// Values returns copies of the values in key order.
func (p *Proxy) Values() ([]any, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(items))
	for i, item := range items {
		values[i] = item.Value
	}

	return values, nil
}

// Items returns copies of the key/value pairs in key order.
func (p *Proxy) Items() ([]Item, error) {
	keys, err := p.Keys()
	if err != nil {
		return nil, err
	}

	resolved, _ := p.mapping()

	items := make([]Item, len(keys))
	for i, key := range keys {
		items[i] = Item{Key: key, Value: clone(resolved[key])}
	}

	return items, nil
}

// All returns an iterator over the key/value pairs in key order.
func (p *Proxy) All() (iter.Seq2[string, any], error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}

	return func(yield func(string, any) bool) {
		for _, item := range items {
			if !yield(item.Key, item.Value) {
				return
			}
		}
	}, nil
}

// Map returns a deep copy of the resolved mapping.
func (p *Proxy) Map() (map[string]any, error) {
	resolved, err := p.mapping()
	if err != nil {
		return nil, err
	}

	copied, _ := clone(resolved).(map[string]any)

	return copied, nil
}

// String formats the mapping if it is already resolved. It never triggers resolution.
func (p *Proxy) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved != nil {
		return fmt.Sprint(p.resolved)
	}

	if p.hasPath {
		return fmt.Sprintf("inject.Proxy(path=%q, unresolved)", p.path)
	}

	return "inject.Proxy(unresolved)"
}
