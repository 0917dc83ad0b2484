package repository

import (
	"context"
	"fmt"
	"sync"

	"dateme/models"
)

// Memory is an in-process Users implementation with the same contract
// as the Mongo one. Tests run against it instead of a live database.
type Memory struct {
	mu    sync.Mutex
	users []models.User
	seq   int64
}

func NewMemory() *Memory {
	return &Memory{}
}

func (r *Memory) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Memory) FindByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].UserID == userID {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Memory) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.users)), nil
}

func (r *Memory) ListExcluding(_ context.Context, userID string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0, len(r.users))
	for i := range r.users {
		if r.users[i].UserID == userID {
			continue
		}
		u := r.users[i]
		u.Password = ""
		users = append(users, u)
	}
	return users, nil
}

func (r *Memory) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username || r.users[i].UserID == user.UserID {
			return ErrDuplicateUsername
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *Memory) AddToLiked(_ context.Context, ownerID, targetID string) error {
	return r.addToSet(ownerID, targetID, true)
}

func (r *Memory) AddToDisliked(_ context.Context, ownerID, targetID string) error {
	return r.addToSet(ownerID, targetID, false)
}

func (r *Memory) addToSet(ownerID, targetID string, liked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].UserID != ownerID {
			continue
		}
		set := &r.users[i].DislikedUsers
		if liked {
			set = &r.users[i].LikedUsers
		}
		for _, id := range *set {
			if id == targetID {
				return nil
			}
		}
		*set = append(*set, targetID)
		return nil
	}
	// Matches the Mongo UpdateOne behavior: no matched document is not
	// an error.
	return nil
}

func (r *Memory) NextUserID(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	return fmt.Sprintf("DM%05d", r.seq), nil
}
