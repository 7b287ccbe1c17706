package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/repositories"
)

const (
	passwordMinRunes = 6
	nameMaxRunes     = 80
)

var (
	// ErrInvalidCredentials indicates the email or password did not match.
	// Login never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("user: invalid credentials")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("user: email already registered")
	// ErrUserNotFound indicates the account does not exist.
	ErrUserNotFound = errors.New("user: not found")
	// ErrUserInactive indicates the account has been deactivated.
	ErrUserInactive = errors.New("user: account deactivated")
	// ErrInvalidRefreshToken indicates the refresh token failed verification.
	ErrInvalidRefreshToken = errors.New("user: invalid refresh token")
)

// UserServiceDeps bundles the dependencies for the user service.
type UserServiceDeps struct {
	Users  repositories.UserRepository
	Issuer *auth.Issuer
	Hasher auth.PasswordHasher
	Clock  func() time.Time
}

type userService struct {
	users  repositories.UserRepository
	issuer *auth.Issuer
	hasher auth.PasswordHasher
	clock  func() time.Time
}

// NewUserService wires dependencies into a UserService.
func NewUserService(deps UserServiceDeps) (UserService, error) {
	if deps.Users == nil {
		return nil, errors.New("user service: user repository is required")
	}
	if deps.Issuer == nil {
		return nil, errors.New("user service: token issuer is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &userService{
		users:  deps.Users,
		issuer: deps.Issuer,
		hasher: deps.Hasher,
		clock:  clock,
	}, nil
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (AuthSession, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > nameMaxRunes {
		fields["name"] = "name is required"
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		fields["email"] = "a valid email address is required"
	}

	if utf8.RuneCountInString(input.Password) < passwordMinRunes {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", passwordMinRunes)
	}

	if len(fields) > 0 {
		return AuthSession{}, &ValidationError{Fields: fields}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthSession{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock().UTC()
	user := domain.User{
		ID:           ulid.Make().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		if repositories.IsConflict(err) {
			return AuthSession{}, ErrEmailTaken
		}
		return AuthSession{}, fmt.Errorf("insert user: %w", err)
	}
	return s.session(created)
}

func (s *userService) Login(ctx context.Context, email, password string) (AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthSession{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return AuthSession{}, ErrInvalidCredentials
		}
		return AuthSession{}, fmt.Errorf("find user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return AuthSession{}, ErrInvalidCredentials
		}
		return AuthSession{}, fmt.Errorf("compare password: %w", err)
	}
	if !user.Active {
		return AuthSession{}, ErrUserInactive
	}
	return s.session(user)
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (AuthSession, error) {
	claims, err := s.issuer.Verify(refreshToken, auth.TokenUseRefresh)
	if err != nil {
		return AuthSession{}, ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return AuthSession{}, ErrInvalidRefreshToken
		}
		return AuthSession{}, fmt.Errorf("find user: %w", err)
	}
	if !user.Active {
		return AuthSession{}, ErrUserInactive
	}
	return s.session(user)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.users.FindByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		if repositories.IsNotFound(err) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	if !user.Active {
		return domain.User{}, ErrUserInactive
	}
	return user, nil
}

func (s *userService) session(user domain.User) (AuthSession, error) {
	access, expiresAt, err := s.issuer.IssueAccess(user.ID, user.Email, string(user.Role))
	if err != nil {
		return AuthSession{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, _, err := s.issuer.IssueRefresh(user.ID)
	if err != nil {
		return AuthSession{}, fmt.Errorf("issue refresh token: %w", err)
	}
	return AuthSession{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}
