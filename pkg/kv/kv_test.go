package kv

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	store, err := New(db)
	require.NoError(t, err)
	return store
}

func TestGet_AbsentKeyReturnsFallback(t *testing.T) {
	store := newTestStore(t)

	got, err := Get(context.Background(), store, "clients", []string{"fallback"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fallback"}, got)
}

func TestSetGet_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []entry{{ID: "a", Name: "Acme"}, {ID: "b", Name: "Bolt"}}

	require.NoError(t, Set(ctx, store, "clients", in))

	got, err := Get(ctx, store, "clients", []entry(nil))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestSet_OverwritesInFull(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, store, "products", []int{1, 2, 3}))
	require.NoError(t, Set(ctx, store, "products", []int{9}))

	got, err := Get(ctx, store, "products", []int(nil))
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got)
}

func TestSet_JSONNullReadsAsFallback(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Set[any](ctx, store, "company", nil))

	got, err := Get(ctx, store, "company", map[string]string{"name": ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": ""}, got)
}

func TestEmptyKeyFailsLoudly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := Get(ctx, store, "", 0)
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, Set(ctx, store, "  ", 1), ErrEmptyKey)
}
