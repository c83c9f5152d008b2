package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/0xalexb/hydr8/tree"
)

// ErrUninitialized is returned by Get when no tree was set and no override is active.
var ErrUninitialized = errors.New("configuration not initialized: call Init first")

// Store holds the current configuration tree.
//
// Init and Override both set the current tree. When an Override scope exits
// it restores the tree that was current when the scope began, even if Init
// was called inside the scope. A Store is safe for concurrent use, but
// Override scopes are shared by every goroutine using the Store; goroutines
// that need independent overrides should use WithOverride.
type Store struct {
	mu      sync.RWMutex
	current tree.Tree
	depth   int
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for override tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an uninitialized Store.
func New(opts ...Option) *Store {
	store := &Store{
		logger: slog.Default(),
	}

	for _, apply := range opts {
		apply(store)
	}

	return store
}

// Init replaces the current tree unconditionally. Subsequent Get calls
// return cfg, including inside an active Override scope.
func (s *Store) Init(cfg tree.Tree) {
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
}

// Get returns the current tree.
func (s *Store) Get() (tree.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrUninitialized
	}

	return s.current, nil
}

// Override builds a tree from overrides alone and makes it current while fn
// runs. The previous tree is restored when fn returns or panics.
// Overrides replace the current tree; they are not merged into it.
func (s *Store) Override(overrides map[string]any, fn func(tree.Tree) error) error {
	scoped := tree.New(overrides)

	s.mu.Lock()
	previous := s.current
	s.current = scoped
	s.depth++
	depth := s.depth
	s.mu.Unlock()

	s.logger.Debug("configuration override entered", slog.Int("depth", depth))

	defer s.restore(previous)

	return fn(scoped)
}

func (s *Store) restore(previous tree.Tree) {
	s.mu.Lock()
	s.current = previous
	s.depth--
	depth := s.depth
	s.mu.Unlock()

	s.logger.Debug("configuration override exited", slog.Int("depth", depth))
}

type contextKey struct{}

// WithOverride returns a context carrying a tree built from overrides alone.
// GetContext prefers the innermost context override over the Store's own
// state, so overrides scoped by context never leak into other goroutines.
func WithOverride(ctx context.Context, overrides map[string]any) context.Context {
	return context.WithValue(ctx, contextKey{}, tree.Tree(tree.New(overrides)))
}

// GetContext returns the tree carried by ctx, or Get when ctx carries none.
func (s *Store) GetContext(ctx context.Context) (tree.Tree, error) {
	if ctx != nil {
		if cfg, ok := ctx.Value(contextKey{}).(tree.Tree); ok {
			return cfg, nil
		}
	}

	return s.Get()
}
