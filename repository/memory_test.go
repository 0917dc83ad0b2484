package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"dateme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(userID, username string) *models.User {
	return &models.User{
		UserID:        userID,
		Name:          "Test " + username,
		Username:      username,
		Password:      "$2a$10$fakehash",
		Interests:     []string{},
		LikedUsers:    []string{},
		DislikedUsers: []string{},
	}
}

func TestMemory_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.Insert(ctx, newTestUser("DM00001", "alice")))

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "DM00001", byName.UserID)

	byID, err := repo.FindByID(ctx, "DM00001")
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByID(ctx, "DM99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Insert_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.Insert(ctx, newTestUser("DM00001", "alice")))
	err := repo.Insert(ctx, newTestUser("DM00002", "alice"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMemory_NextUserID_Sequence(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	for i := 1; i <= 3; i++ {
		id, err := repo.NextUserID(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("DM%05d", i), id)
	}
}

func TestMemory_NextUserID_NoDuplicatesUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	const n = 50
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.NextUserID(ctx)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate userID %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemory_AddToLiked_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.Insert(ctx, newTestUser("DM00001", "alice")))

	require.NoError(t, repo.AddToLiked(ctx, "DM00001", "DM00002"))
	require.NoError(t, repo.AddToLiked(ctx, "DM00001", "DM00002"))

	user, err := repo.FindByID(ctx, "DM00001")
	require.NoError(t, err)
	assert.Equal(t, []string{"DM00002"}, user.LikedUsers)
}

func TestMemory_AddToDisliked_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.Insert(ctx, newTestUser("DM00001", "alice")))

	require.NoError(t, repo.AddToDisliked(ctx, "DM00001", "DM00003"))
	require.NoError(t, repo.AddToDisliked(ctx, "DM00001", "DM00003"))

	user, err := repo.FindByID(ctx, "DM00001")
	require.NoError(t, err)
	assert.Equal(t, []string{"DM00003"}, user.DislikedUsers)
}

func TestMemory_AddToLiked_ConcurrentSameOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.Insert(ctx, newTestUser("DM00001", "alice")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		target := fmt.Sprintf("DM%05d", (i%4)+2)
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.AddToLiked(ctx, "DM00001", target))
		}()
	}
	wg.Wait()

	user, err := repo.FindByID(ctx, "DM00001")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"DM00002", "DM00003", "DM00004", "DM00005"}, user.LikedUsers)
}

func TestMemory_ListExcluding(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.Insert(ctx, newTestUser("DM00001", "alice")))
	require.NoError(t, repo.Insert(ctx, newTestUser("DM00002", "bob")))
	require.NoError(t, repo.Insert(ctx, newTestUser("DM00003", "carol")))

	users, err := repo.ListExcluding(ctx, "DM00002")
	require.NoError(t, err)
	require.Len(t, users, 2)

	for _, u := range users {
		assert.NotEqual(t, "DM00002", u.UserID)
		assert.Empty(t, u.Password, "listing must not expose the password hash")
	}
}
