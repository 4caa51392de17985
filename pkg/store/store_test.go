package store_test

import (
	"context"
	"testing"

	"pos-service/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryRoundTrip(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	_, ok, err := m.Load(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Save(ctx, "slot", []byte(`{"a":1}`)))
	raw, ok, err := m.Load(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))
}

func TestTypedLoadFallsBackOnMissingKey(t *testing.T) {
	m := store.NewMemory()
	def := slot{Name: "default", Count: 3}

	got := store.Load(context.Background(), m, "absent", def)
	assert.Equal(t, def, got)
}

func TestTypedLoadFallsBackOnCorruptValue(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, "slot", []byte("{broken")))

	def := slot{Name: "default"}
	got := store.Load(ctx, m, "slot", def)
	assert.Equal(t, def, got, "corrupt payload must not crash, only fall back")
}

func TestTypedRoundTrip(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	want := []slot{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, store.Save(ctx, m, "slots", want))

	got := store.Load(ctx, m, "slots", []slot{})
	assert.Equal(t, want, got)
}
