package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository_GetOrCreateByNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tags, err := repo.GetOrCreateByNames(ctx, []string{"  music  ", "music", "", "outdoor"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	byName := map[string]uint{}
	for _, tag := range tags {
		byName[tag.Name] = tag.ID
	}
	require.Contains(t, byName, "music")

	// Existing rows come back instead of duplicates
	again, err := repo.GetOrCreateByNames(ctx, []string{"music", "food"})
	require.NoError(t, err)
	require.Len(t, again, 2)
	for _, tag := range again {
		if tag.Name == "music" {
			assert.Equal(t, byName["music"], tag.ID)
		}
	}
}

func TestTagRepository_NamesAreCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	tags, err := repo.GetOrCreateByNames(context.Background(), []string{"Go", "go"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	names := []string{tags[0].Name, tags[1].Name}
	assert.ElementsMatch(t, []string{"Go", "go"}, names)
}
