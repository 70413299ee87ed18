package httpx

import (
	"context"
	"net/http"
	"strings"
)

// Authenticator resolves a bearer token to the identifier of the user it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

func AuthMiddleware(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "No authentication token, access denied", nil)
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if token == "" {
				JSONError(w, http.StatusUnauthorized, "No authentication token, access denied", nil)
				return
			}

			userID, err := authenticator.Authenticate(r.Context(), token)
			if err != nil || userID == "" {
				JSONError(w, http.StatusUnauthorized, "Token is not valid", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), userID, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
