package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monastery360/api/internal/domain"
	pfirestore "github.com/monastery360/api/internal/platform/firestore"
)

const usersCollection = "users"

type userDocument struct {
	Name         string    `firestore:"name"`
	Email        string    `firestore:"email"`
	EmailLower   string    `firestore:"emailLower"`
	PasswordHash string    `firestore:"passwordHash"`
	Role         string    `firestore:"role"`
	Active       bool      `firestore:"active"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

// UserRepository persists accounts keyed by their ULID. The lowercased email
// is stored alongside for case-insensitive lookups.
type UserRepository struct {
	base *pfirestore.BaseRepository[domain.User]
}

// NewUserRepository constructs a Firestore-backed account repository.
func NewUserRepository(provider *pfirestore.Provider) (*UserRepository, error) {
	if provider == nil {
		return nil, errors.New("user repository: firestore provider is required")
	}

	encoder := func(ctx context.Context, u domain.User) (any, error) {
		return userDocument{
			Name:         u.Name,
			Email:        u.Email,
			EmailLower:   strings.ToLower(strings.TrimSpace(u.Email)),
			PasswordHash: u.PasswordHash,
			Role:         string(u.Role),
			Active:       u.Active,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		}, nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.User, error) {
		var doc userDocument
		if err := snap.DataTo(&doc); err != nil {
			return domain.User{}, err
		}
		return domain.User{
			ID:           snap.Ref.ID,
			Name:         doc.Name,
			Email:        doc.Email,
			PasswordHash: doc.PasswordHash,
			Role:         domain.Role(doc.Role),
			Active:       doc.Active,
			CreatedAt:    doc.CreatedAt,
			UpdatedAt:    doc.UpdatedAt,
		}, nil
	}
	return &UserRepository{base: pfirestore.NewBaseRepository[domain.User](provider, usersCollection, encoder, decoder)}, nil
}

// Insert creates the account document; a taken email is a conflict.
func (r *UserRepository) Insert(ctx context.Context, user domain.User) (domain.User, error) {
	if r == nil || r.base == nil {
		return domain.User{}, errors.New("user repository not initialised")
	}

	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return domain.User{}, pfirestore.Conflict("users.insert", fmt.Sprintf("email %q already registered", user.Email))
	}

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	docRef, err := r.base.DocumentRef(ctx, user.ID)
	if err != nil {
		return domain.User{}, err
	}
	payload := userDocument{
		Name:         user.Name,
		Email:        user.Email,
		EmailLower:   strings.ToLower(strings.TrimSpace(user.Email)),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Active:       user.Active,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if _, err := docRef.Create(ctx, payload); err != nil {
		return domain.User{}, pfirestore.WrapError("users.insert", err)
	}
	return user, nil
}

// FindByID loads an account by ULID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	if r == nil || r.base == nil {
		return domain.User{}, errors.New("user repository not initialised")
	}
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return doc.Data, nil
}

// FindByEmail resolves an account case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if r == nil || r.base == nil {
		return domain.User{}, errors.New("user repository not initialised")
	}
	key := strings.ToLower(strings.TrimSpace(email))

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("emailLower", "==", key).Limit(1)
	})
	if err != nil {
		return domain.User{}, err
	}
	if len(docs) == 0 {
		return domain.User{}, pfirestore.NotFound("users.find_email", fmt.Sprintf("user %q not found", email))
	}
	return docs[0].Data, nil
}
