package repository

import (
	"context"
	"errors"

	"dateme/models"
)

var (
	// ErrNotFound means no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername means an insert collided with an existing
	// username.
	ErrDuplicateUsername = errors.New("username exists")
)

// Users is the persistence boundary for user records. All lookups are
// exact-match; AddToLiked/AddToDisliked are atomic set-adds, so
// repeating one is a no-op and concurrent calls cannot create
// duplicates. NextUserID hands out the dense "DM00001"-style sequence
// from an atomic counter.
type Users interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	CountAll(ctx context.Context) (int64, error)
	ListExcluding(ctx context.Context, userID string) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	AddToLiked(ctx context.Context, ownerID, targetID string) error
	AddToDisliked(ctx context.Context, ownerID, targetID string) error
	NextUserID(ctx context.Context) (string, error)
}
