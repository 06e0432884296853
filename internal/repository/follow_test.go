package repository

import (
	"context"
	"testing"

	"anondo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_FollowUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := createTestUser(t, db, "A", "a@e.com")
	b := createTestUser(t, db, "B", "b@e.com")

	created, err := repo.Follow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// A duplicate follow collapses onto the existing edge
	created, err = repo.Follow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", a.ID, b.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	following, err := repo.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// Follow is directed
	following, err = repo.IsFollowing(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, following)

	removed, err := repo.Unfollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Unfollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFollowRepository_Listings(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := createTestUser(t, db, "A", "a@e.com")
	b := createTestUser(t, db, "B", "b@e.com")
	c := createTestUser(t, db, "C", "c@e.com")

	_, err := repo.Follow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = repo.Follow(ctx, c.ID, b.ID)
	require.NoError(t, err)
	_, err = repo.Follow(ctx, a.ID, c.ID)
	require.NoError(t, err)

	followers, err := repo.Followers(ctx, b.ID, 10, 0, 0)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	followingList, err := repo.Following(ctx, a.ID, 10, 0, 0)
	require.NoError(t, err)
	assert.Len(t, followingList, 2)

	ids, err := repo.FollowingIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{b.ID, c.ID}, ids)
}

func TestUserRepository_ComputedFollowCounts(t *testing.T) {
	db := newTestDB(t)
	followRepo := NewFollowRepository(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	a := createTestUser(t, db, "A", "a@e.com")
	b := createTestUser(t, db, "B", "b@e.com")
	createTestEvent(t, db, b.ID)

	_, err := followRepo.Follow(ctx, a.ID, b.ID)
	require.NoError(t, err)

	got, err := userRepo.GetByID(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FollowersCount)
	assert.Equal(t, 0, got.FollowingCount)
	assert.Equal(t, 1, got.CreatedEventsCount)
	assert.True(t, got.IsFollowing)

	// Viewed anonymously, is_following is always false
	got, err = userRepo.GetByID(ctx, b.ID, 0)
	require.NoError(t, err)
	assert.False(t, got.IsFollowing)
}
