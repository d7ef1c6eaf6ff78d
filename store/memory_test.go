package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func TestMemoryInsertAndFindAll(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Insert(ctx, "things", testDoc{ID: "a", Name: "first", Active: true}))
	require.NoError(t, mem.Insert(ctx, "things", testDoc{ID: "b", Name: "second", Active: false}))

	var all []testDoc
	require.NoError(t, mem.FindAll(ctx, "things", nil, 10, &all))
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)

	var active []testDoc
	require.NoError(t, mem.FindAll(ctx, "things", map[string]any{"active": true}, 10, &active))
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)
}

func TestMemoryFindAllHonorsLimit(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, mem.Insert(ctx, "things", testDoc{ID: id}))
	}

	var docs []testDoc
	require.NoError(t, mem.FindAll(ctx, "things", nil, 3, &docs))
	assert.Len(t, docs, 3)
}

func TestMemoryUpdateOne(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Insert(ctx, "things", testDoc{ID: "a", Name: "old", Active: true}))

	matched, err := mem.UpdateOne(ctx, "things", map[string]any{"id": "a"}, map[string]any{"name": "new"}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var docs []testDoc
	require.NoError(t, mem.FindAll(ctx, "things", nil, 10, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "new", docs[0].Name)
	assert.True(t, docs[0].Active, "untouched fields must survive a patch")

	matched, err = mem.UpdateOne(ctx, "things", map[string]any{"id": "missing"}, map[string]any{"name": "x"}, false)
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestMemoryUpsertStampsID(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	matched, err := mem.UpdateOne(ctx, "services", map[string]any{"key": "smink"}, map[string]any{"title": "Smink"}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var docs []map[string]any
	require.NoError(t, mem.FindAll(ctx, "services", nil, 10, &docs))
	require.Len(t, docs, 1)
	firstID, _ := docs[0]["id"].(string)
	assert.NotEmpty(t, firstID)

	// second upsert for the same key updates in place
	_, err = mem.UpdateOne(ctx, "services", map[string]any{"key": "smink"}, map[string]any{"title": "Smink 2"}, true)
	require.NoError(t, err)

	docs = nil
	require.NoError(t, mem.FindAll(ctx, "services", nil, 10, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Smink 2", docs[0]["title"])
	assert.Equal(t, firstID, docs[0]["id"], "id is immutable across upserts")
}

func TestMemoryDeleteOne(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Insert(ctx, "things", testDoc{ID: "a"}))

	deleted, err := mem.DeleteOne(ctx, "things", map[string]any{"id": "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = mem.DeleteOne(ctx, "things", map[string]any{"id": "a"})
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
