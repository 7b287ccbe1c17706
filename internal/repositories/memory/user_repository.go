package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/repositories"
)

// UserRepository keeps accounts in process memory keyed by ID with a
// case-insensitive email index.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewUserRepository builds an empty account store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

// Insert stores a new account; duplicate emails are conflicts.
func (r *UserRepository) Insert(_ context.Context, user domain.User) (domain.User, error) {
	key := strings.ToLower(strings.TrimSpace(user.Email))
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[key]; taken {
		return domain.User{}, repositories.NewConflict("users.insert", fmt.Sprintf("email %q already registered", user.Email))
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	return user, nil
}

// Deactivate flips the account inactive. Missing IDs are ignored.
func (r *UserRepository) Deactivate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.byID[id]; ok {
		user.Active = false
		user.UpdatedAt = time.Now().UTC()
		r.byID[id] = user
	}
}

// FindByID returns the account or a not-found error.
func (r *UserRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, repositories.NewNotFound("users.find", fmt.Sprintf("user %q not found", id))
	}
	return user, nil
}

// FindByEmail resolves an account case-insensitively.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[key]
	if !ok {
		return domain.User{}, repositories.NewNotFound("users.find_email", fmt.Sprintf("user %q not found", email))
	}
	return r.byID[id], nil
}
