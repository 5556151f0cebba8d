package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyToken contextKey = "bearer_token"
)

// RequireBearerToken stores the bearer token in the request context. The
// token is forwarded to the vehicle API, which is the one validating it.
func RequireBearerToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if token == strings.TrimSpace(authHeader) || token == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext returns the token stored by RequireBearerToken
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyToken).(string)
	return token
}
