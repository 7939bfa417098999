package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerBackend_LoadSave(t *testing.T) {
	ctx := context.Background()
	backend, err := OpenBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	data, err := backend.Load(ctx, CollectionSlots)
	require.NoError(t, err)
	assert.Nil(t, data)

	err = backend.Save(ctx, map[string][]byte{
		CollectionSlots:    []byte(`[{"id":"S1"}]`),
		CollectionSessions: []byte(`[]`),
	})
	require.NoError(t, err)

	data, err = backend.Load(ctx, CollectionSlots)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"S1"}]`, string(data))

	data, err = backend.Load(ctx, CollectionSessions)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestBadgerBackend_WithStore(t *testing.T) {
	ctx := context.Background()
	backend, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	store := NewStore(backend, nil)
	require.NoError(t, store.ReplaceSlots(ctx, testSlots()))

	slots, err := store.Slots(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}
