package hydr8

import (
	"github.com/0xalexb/hydr8/inject"
	"github.com/0xalexb/hydr8/store"
	"github.com/0xalexb/hydr8/tree"
)

//nolint:gochecknoglobals // process default, use store.New for isolated stores.
var defaultStore = store.New()

// Default returns the process default store used by the package-level functions.
func Default() *store.Store {
	return defaultStore
}

// Init replaces the default store's tree.
func Init(cfg tree.Tree) {
	defaultStore.Init(cfg)
}

// Get returns the default store's current tree, or store.ErrUninitialized.
func Get() (tree.Tree, error) {
	return defaultStore.Get()
}

// Override runs fn with a tree built from overrides alone as the default
// store's current tree, restoring the previous one afterwards.
func Override(overrides map[string]any, fn func(tree.Tree) error) error {
	return defaultStore.Override(overrides, fn)
}

// Use creates a Proxy reading from the default store.
func Use(opts ...inject.Option) *inject.Proxy {
	return inject.Use(defaultStore, opts...)
}
