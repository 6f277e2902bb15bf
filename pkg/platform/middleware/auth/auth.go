// Package auth is the request-time guard. One middleware, parameterized by
// role, covers both principal kinds; the role-specific behavior lives in the
// token verifier's signing domains.
package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"sportreg/internal/identity/models"
	"sportreg/pkg/requestcontext"
)

// TokenVerifier validates a bearer token against one role's signing domain
// and returns the subject ID.
type TokenVerifier interface {
	Verify(role models.Role, tokenString string) (int64, error)
}

// RequireRole rejects any request without a valid token for the required
// role before the downstream handler runs. The guard is stateless and
// re-evaluated on every request.
func RequireRole(role models.Role, verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			tok, ok := bearerToken(r)
			if !ok {
				logger.WarnContext(ctx, "guard rejected request - missing token",
					"request_id", requestcontext.RequestID(ctx),
					"role", role,
				)
				writeForbidden(w)
				return
			}

			subjectID, err := verifier.Verify(role, tok)
			if err != nil {
				logger.WarnContext(ctx, "guard rejected request - invalid token",
					"request_id", requestcontext.RequestID(ctx),
					"role", role,
				)
				writeForbidden(w)
				return
			}

			ctx = requestcontext.WithPrincipalID(ctx, subjectID)
			ctx = requestcontext.WithRole(ctx, string(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. A bare
// token without the Bearer prefix is also accepted for compatibility with
// existing clients.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after, after != ""
	}
	return header, true
}

func writeForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"forbidden","error_description":"valid token required"}`))
}
