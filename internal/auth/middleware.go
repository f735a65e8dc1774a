package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/CoinQuest_Go/internal/logger"
)

type ctxKey struct{}

// WithIdentity stores the caller identity in ctx
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the caller identity, or nil for unauthenticated requests
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(ctxKey{}).(*Identity)
	return id
}

// AuthIDFromContext returns the caller's auth id, or "" when absent
func AuthIDFromContext(ctx context.Context) string {
	if id := IdentityFromContext(ctx); id != nil {
		return id.AuthID
	}
	return ""
}

// Middleware rejects requests without a valid bearer token.
// EventSource clients cannot set headers, so the token may also arrive as ?access_token=.
func Middleware(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractToken(r)
			if err != nil {
				unauthorized(w, r, err)
				return
			}

			id, err := v.Verify(token)
			if err != nil {
				unauthorized(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func extractToken(r *http.Request) (string, error) {
	h := r.Header.Get(HeaderAuthorization)
	if h == "" {
		if q := r.URL.Query().Get(QueryParamToken); q != "" {
			return q, nil
		}
		return "", ErrMissingToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", BearerScheme)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
