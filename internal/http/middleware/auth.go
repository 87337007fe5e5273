package middleware

import (
	"context"
	"net/http"
	"strings"

	"jadwalkajian/backend/internal/auth"
)

type contextKey string

const (
	usernameKey contextKey = "username"
	isAdminKey  contextKey = "is_admin"
)

func UsernameFromContext(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(usernameKey).(string)
	return val, ok
}

func IsAdminFromContext(ctx context.Context) bool {
	val, ok := ctx.Value(isAdminKey).(bool)
	return ok && val
}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing Authorization", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				http.Error(w, "invalid Authorization", http.StatusUnauthorized)
				return
			}
			claims, err := auth.ParseAccessToken(secret, parts[1])
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
			ctx = context.WithValue(ctx, isAdminKey, claims.IsAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
