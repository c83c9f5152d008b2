package hydr8_test

import (
	"errors"
	"testing"

	"github.com/0xalexb/hydr8"
	"github.com/0xalexb/hydr8/inject"
	"github.com/0xalexb/hydr8/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests below share the process default store and do not run in parallel.

func TestDefault_InitGet(t *testing.T) {
	hydr8.Init(tree.New(map[string]any{"a": map[string]any{"b": 1}}))

	cfg, err := hydr8.Get()
	require.NoError(t, err)
	assert.True(t, cfg.Has("a"))

	st, err := hydr8.Default().Get()
	require.NoError(t, err)
	assert.Same(t, cfg, st)
}

func TestDefault_Override(t *testing.T) {
	hydr8.Init(tree.New(map[string]any{"a": 1}))

	errBoom := errors.New("boom")

	err := hydr8.Override(map[string]any{"b": 2}, func(cfg tree.Tree) error {
		current, err := hydr8.Get()
		require.NoError(t, err)
		assert.Same(t, cfg, current)
		assert.True(t, current.Has("b"))
		assert.False(t, current.Has("a"))

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	cfg, err := hydr8.Get()
	require.NoError(t, err)
	assert.True(t, cfg.Has("a"))
	assert.False(t, cfg.Has("b"))
}

func TestDefault_Use(t *testing.T) {
	hydr8.Init(tree.New(map[string]any{"db": map[string]any{"host": "localhost"}}))

	db := hydr8.Use(inject.AtPath("db"))

	host, err := db.Get("host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)
}
