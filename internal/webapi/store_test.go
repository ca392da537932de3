package webapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensmetry/detect/internal/evaluate"
)

func TestRunStore_PutGet(t *testing.T) {
	store := NewRunStore()

	first := store.Put(&evaluate.Result{Category: "small"})
	second := store.Put(&evaluate.Result{Category: "large"})
	assert.NotEqual(t, first, second)

	res, err := store.Get(first)
	require.NoError(t, err)
	assert.Equal(t, "small", string(res.Category))
}

func TestRunStore_GetUnknown(t *testing.T) {
	_, err := NewRunStore().Get("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunStore_EvictsOldestAtCapacity(t *testing.T) {
	store := NewRunStore()
	store.limit = 2

	first := store.Put(&evaluate.Result{Category: "small"})
	second := store.Put(&evaluate.Result{Category: "medium"})
	third := store.Put(&evaluate.Result{Category: "large"})

	_, err := store.Get(first)
	assert.ErrorIs(t, err, ErrRunNotFound)

	res, err := store.Get(second)
	require.NoError(t, err)
	assert.Equal(t, "medium", string(res.Category))

	res, err = store.Get(third)
	require.NoError(t, err)
	assert.Equal(t, "large", string(res.Category))
}
