package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

// SessionVerifier is the boundary to the external auth system: a bearer
// token in, an identity out. Credentials are never checked here.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

type contextKey int

const identityKey contextKey = iota

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func AuthMiddleware(verifier SessionVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" || token == r.Header.Get("Authorization") {
				writeMessage(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeMessage(w, http.StatusUnauthorized, "invalid session token")
				} else {
					writeMessage(w, http.StatusServiceUnavailable, "session store unavailable")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// requireRole loads the request identity and checks it against the allowed
// roles. It writes the response itself when the check fails.
func requireRole(w http.ResponseWriter, r *http.Request, roles ...string) (domain.Identity, bool) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing identity")
		return domain.Identity{}, false
	}
	for _, role := range roles {
		if identity.Role == role {
			return identity, true
		}
	}
	writeMessage(w, http.StatusForbidden, "Unauthorized")
	return domain.Identity{}, false
}
