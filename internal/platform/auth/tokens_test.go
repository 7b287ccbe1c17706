package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer, err := NewIssuer("unit-test-secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return issuer
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	issuer := newTestIssuer(t)

	token, expiresAt, err := issuer.IssueAccess("user-1", "visitor@example.com", RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := issuer.Verify(token, TokenUseAccess)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "visitor@example.com" || claims.Role != RoleUser {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestVerifyRejectsRefreshTokenAsAccess(t *testing.T) {
	issuer := newTestIssuer(t)

	token, _, err := issuer.IssueRefresh("user-1")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if _, err := issuer.Verify(token, TokenUseAccess); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := issuer.Verify(token, TokenUseRefresh); err != nil {
		t.Fatalf("refresh verification failed: %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := newTestIssuer(t)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.IssueAccess("user-1", "", RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	issuer.now = time.Now
	if _, err := issuer.Verify(token, TokenUseAccess); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyHonoursIssuerClock(t *testing.T) {
	issuer := newTestIssuer(t)
	base := time.Now()
	issuer.now = func() time.Time { return base }

	token, _, err := issuer.IssueAccess("user-1", "", RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	// The wall clock still considers the token live; only the pinned
	// issuer clock has moved past expiry.
	issuer.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := issuer.Verify(token, TokenUseAccess); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired from issuer clock, got %v", err)
	}

	issuer.now = func() time.Time { return base.Add(30 * time.Minute) }
	if _, err := issuer.Verify(token, TokenUseAccess); err != nil {
		t.Fatalf("Verify within lifetime: %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := newTestIssuer(t)
	other, err := NewIssuer("a-different-secret", time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	token, _, err := other.IssueAccess("user-1", "", RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := issuer.Verify(token, TokenUseAccess); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestPasswordHasherRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("securepass")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := hasher.Compare(hash, "securepass"); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrongpass"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}
