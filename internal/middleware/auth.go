package middleware

import (
	"context"
	"net/http"
	"strings"

	handlers "blogapi/internal/handler"
	"blogapi/internal/service"
)

type contextKey string

const adminKey contextKey = "admin"

// guardedPrefixes lists the resources whose mutating methods need a token.
var guardedPrefixes = []string{"/api/posts", "/api/media"}

// AdminFromContext returns the subject of a verified token, if any.
func AdminFromContext(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(adminKey).(string)
	return admin, ok
}

// AuthGuard verifies the admin JWT on POST, PUT, PATCH and DELETE requests
// under the guarded prefixes. When required is false it passes everything
// through.
func AuthGuard(required bool, authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		if !required {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) || !isGuarded(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Extracting the token from the header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				handlers.WriteError(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				handlers.WriteError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func isGuarded(path string) bool {
	for _, prefix := range guardedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
