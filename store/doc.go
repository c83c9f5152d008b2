// Package store holds the current configuration tree with explicit lifecycle
// control: Init sets it, Get reads it, and Override temporarily replaces it
// for the duration of a callback.
//
// Overrides nest. Each scope restores exactly the tree that was current when
// it began:
//
//	st := store.New()
//	st.Init(tree.New(map[string]any{"a": 1}))
//
//	_ = st.Override(map[string]any{"b": 2}, func(tree.Tree) error {
//	    // current tree is {b: 2}
//	    return st.Override(map[string]any{"c": 3}, func(tree.Tree) error {
//	        // current tree is {c: 3}
//	        return nil
//	    })
//	})
//	// current tree is {a: 1} again
//
// For goroutine-local scoping, WithOverride attaches an override to a
// context.Context and GetContext reads it.
package store
