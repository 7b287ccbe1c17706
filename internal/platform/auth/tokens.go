package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenUse distinguishes short-lived access tokens from refresh tokens.
type TokenUse string

const (
	// TokenUseAccess marks tokens accepted by the Authorization header.
	TokenUseAccess TokenUse = "access"
	// TokenUseRefresh marks tokens accepted only by the refresh endpoint.
	TokenUseRefresh TokenUse = "refresh"
)

var (
	// ErrTokenExpired signals that the provided token has expired.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid signals that the provided token is invalid for other reasons.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Claims is the JWT payload minted for authenticated users.
type Claims struct {
	jwt.RegisteredClaims

	UserID   string   `json:"userId"`
	Email    string   `json:"email,omitempty"`
	Role     string   `json:"role,omitempty"`
	TokenUse TokenUse `json:"tokenUse"`
}

// Identity converts the claims into the request identity.
func (c *Claims) Identity() *Identity {
	if c == nil {
		return nil
	}
	return &Identity{UID: c.UserID, Email: c.Email, Role: c.Role}
}

// TokenVerifier verifies signed tokens and returns their claims.
type TokenVerifier interface {
	Verify(token string, use TokenUse) (*Claims, error)
}

// Issuer mints and verifies HMAC-signed JWTs for the first-party auth flow.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer constructs an Issuer from the shared signing secret and token lifetimes.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	if accessTTL <= 0 {
		return nil, errors.New("auth: access token ttl must be positive")
	}
	if refreshTTL <= 0 {
		refreshTTL = accessTTL
	}
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// IssueAccess mints an access token for the given user.
func (i *Issuer) IssueAccess(userID, email, role string) (string, time.Time, error) {
	return i.issue(userID, email, role, TokenUseAccess, i.accessTTL)
}

// IssueRefresh mints a refresh token for the given user. Refresh tokens carry
// no role claim so a stale role is never replayed past a role change.
func (i *Issuer) IssueRefresh(userID string) (string, time.Time, error) {
	return i.issue(userID, "", "", TokenUseRefresh, i.refreshTTL)
}

func (i *Issuer) issue(userID, email, role string, use TokenUse, ttl time.Duration) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("auth: user id is required")
	}

	issuedAt := i.now().UTC()
	expiresAt := issuedAt.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   userID,
		Email:    email,
		Role:     role,
		TokenUse: use,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates the token, requiring the expected token use.
// Time claims are checked against the issuer clock rather than the parser's
// wall clock so tests can pin time.
func (i *Issuer) Verify(token string, use TokenUse) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}

	now := i.now().UTC()
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
		return nil, ErrTokenInvalid
	}
	if claims.TokenUse != use {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
