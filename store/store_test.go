package store_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/0xalexb/hydr8/logging"
	"github.com/0xalexb/hydr8/store"
	"github.com/0xalexb/hydr8/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(t *testing.T, st *store.Store) []string {
	t.Helper()

	cfg, err := st.Get()
	require.NoError(t, err)

	m, ok := cfg.(*tree.Map)
	require.True(t, ok)

	return m.Keys()
}

func TestStore_InitAndGet(t *testing.T) {
	t.Parallel()

	st := store.New()
	cfg := tree.New(map[string]any{"db": map[string]any{"host": "localhost"}})

	st.Init(cfg)

	got, err := st.Get()
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestStore_InitReplaces(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"a": 1}))
	st.Init(tree.New(map[string]any{"b": 2}))

	assert.Equal(t, []string{"b"}, keysOf(t, st))
}

func TestStore_GetBeforeInit(t *testing.T) {
	t.Parallel()

	st := store.New()

	got, err := st.Get()
	require.ErrorIs(t, err, store.ErrUninitialized)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestStore_OverrideRestores(t *testing.T) {
	t.Parallel()

	st := store.New()
	cfg := tree.New(map[string]any{"db": map[string]any{"host": "localhost"}})
	st.Init(cfg)

	err := st.Override(map[string]any{"db": map[string]any{"host": "override-host"}}, func(tmp tree.Tree) error {
		current, err := st.Get()
		require.NoError(t, err)
		assert.Same(t, tmp, current)

		host, err := current.Select(tree.Path{{Key: "db"}, {Key: "host"}})
		require.NoError(t, err)
		assert.Equal(t, "override-host", host)

		return nil
	})
	require.NoError(t, err)

	got, err := st.Get()
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestStore_OverrideNested(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"a": 1}))

	err := st.Override(map[string]any{"b": 2}, func(tree.Tree) error {
		assert.Equal(t, []string{"b"}, keysOf(t, st))

		err := st.Override(map[string]any{"c": 3}, func(tree.Tree) error {
			assert.Equal(t, []string{"c"}, keysOf(t, st))

			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"b"}, keysOf(t, st))

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, keysOf(t, st))
}

func TestStore_OverrideWithoutInit(t *testing.T) {
	t.Parallel()

	st := store.New()

	err := st.Override(map[string]any{"x": 1}, func(tree.Tree) error {
		assert.Equal(t, []string{"x"}, keysOf(t, st))

		return nil
	})
	require.NoError(t, err)

	_, err = st.Get()
	require.ErrorIs(t, err, store.ErrUninitialized)
}

func TestStore_OverrideRestoresOnError(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"a": 1}))

	callErr := errors.New("callback failed")

	err := st.Override(map[string]any{"b": 2}, func(tree.Tree) error {
		return callErr
	})
	require.ErrorIs(t, err, callErr)

	assert.Equal(t, []string{"a"}, keysOf(t, st))
}

func TestStore_OverrideRestoresOnPanic(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"a": 1}))

	require.Panics(t, func() {
		_ = st.Override(map[string]any{"b": 2}, func(tree.Tree) error {
			panic("boom")
		})
	})

	assert.Equal(t, []string{"a"}, keysOf(t, st))
}

func TestStore_OverrideDepths(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"base": 0}))

	var enter func(level int) error

	enter = func(level int) error {
		before := keysOf(t, st)
		key := string(rune('a' + level))

		err := st.Override(map[string]any{key: level}, func(tree.Tree) error {
			assert.Equal(t, []string{key}, keysOf(t, st))

			if level < 5 {
				return enter(level + 1)
			}

			return nil
		})

		assert.Equal(t, before, keysOf(t, st))

		return err
	}

	require.NoError(t, enter(0))
}

func TestStore_LogsOverrides(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug"}, &buf)
	st := store.New(store.WithLogger(logger))

	err := st.Override(map[string]any{"a": 1}, func(tree.Tree) error { return nil })
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "configuration override entered")
	assert.Contains(t, buf.String(), "configuration override exited")
}

func TestStore_GetContext(t *testing.T) {
	t.Parallel()

	st := store.New()
	base := tree.New(map[string]any{"a": 1})
	st.Init(base)

	got, err := st.GetContext(context.Background())
	require.NoError(t, err)
	assert.Same(t, base, got)

	ctx := store.WithOverride(context.Background(), map[string]any{"b": 2})
	inner := store.WithOverride(ctx, map[string]any{"c": 3})

	got, err = st.GetContext(ctx)
	require.NoError(t, err)
	assert.True(t, got.Has("b"))
	assert.False(t, got.Has("a"))

	got, err = st.GetContext(inner)
	require.NoError(t, err)
	assert.True(t, got.Has("c"))
	assert.False(t, got.Has("b"))

	got, err = st.Get()
	require.NoError(t, err)
	assert.Same(t, base, got)
}

func TestStore_GetContextUninitialized(t *testing.T) {
	t.Parallel()

	st := store.New(store.WithLogger(slog.New(slog.DiscardHandler)))

	_, err := st.GetContext(context.Background())
	require.ErrorIs(t, err, store.ErrUninitialized)
}

func TestStore_InitInsideOverride(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"a": 1}))

	err := st.Override(map[string]any{"b": 2}, func(tree.Tree) error {
		st.Init(tree.New(map[string]any{"c": 3}))
		assert.Equal(t, []string{"c"}, keysOf(t, st))

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, keysOf(t, st), "scope exit restores the tree current before it began")
}

func TestStore_InitInsideNestedOverride(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Init(tree.New(map[string]any{"a": 1}))

	err := st.Override(map[string]any{"b": 2}, func(tree.Tree) error {
		err := st.Override(map[string]any{"c": 3}, func(tree.Tree) error {
			st.Init(tree.New(map[string]any{"d": 4}))

			return nil
		})
		assert.Equal(t, []string{"b"}, keysOf(t, st))

		return err
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, keysOf(t, st))
}
