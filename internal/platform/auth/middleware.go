package auth

import (
	"net/http"
	"strings"

	"github.com/monastery360/api/internal/platform/httpx"
)

const bearerPrefix = "bearer "

// Authenticate verifies the Authorization header when present and stores the
// resulting identity on the request context. Requests without a token pass
// through anonymously; malformed or expired tokens are rejected so a client
// never proceeds believing it is authenticated.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			if verifier == nil {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "authentication unavailable", http.StatusUnauthorized))
				return
			}

			claims, err := verifier.Verify(raw, TokenUseAccess)
			if err != nil {
				message := "invalid token"
				if err == ErrTokenExpired {
					message = "token expired"
				}
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", message, http.StatusUnauthorized))
				return
			}

			ctx := WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated identity.
func RequireAuth(next http.Handler) http.Handler {
	if next == nil {
		next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "authentication required", http.StatusUnauthorized))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects authenticated requests whose identity lacks the role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "authentication required", http.StatusUnauthorized))
				return
			}
			if !identity.HasRole(role) {
				httpx.WriteError(r.Context(), w, httpx.NewError("forbidden", "insufficient permissions", http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
