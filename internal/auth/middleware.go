package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

type claimsKey struct{}

// ClaimsFromContext returns the editor claims attached by Guard.Require.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims, ok && claims != nil
}

// Guard protects question writes with a bearer token. A Guard over a nil
// Service allows everything.
type Guard struct {
	svc *Service
}

func NewGuard(svc *Service) *Guard {
	return &Guard{svc: svc}
}

// Enabled reports whether requests are actually being checked.
func (g *Guard) Enabled() bool {
	return g != nil && g.svc != nil
}

// Allowed reports whether r carries a valid editor token.
func (g *Guard) Allowed(r *http.Request) bool {
	_, ok := g.check(r)
	return ok
}

// Require rejects requests without a valid editor token with a 401 envelope.
func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.check(r)
		if !ok {
			httperrors.RespondUnauthorized(w)
			return
		}
		if claims != nil {
			r = r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims))
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) check(r *http.Request) (*jwt.Claims, bool) {
	if !g.Enabled() {
		return nil, true
	}

	// Parse "Bearer <token>"
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := g.svc.ValidateToken(parts[1])
	if err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Msg("token validation failed")
		return nil, false
	}
	return claims, true
}
