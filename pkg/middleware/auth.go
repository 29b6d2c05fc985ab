package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/focomkt/lead-diagnostics-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute libera o fluxo do site de captação: submissão do formulário e
// consulta/exportação do plano estratégico não exigem autenticação. Todo o
// restante da API é de uso interno da agência.
func isPublicRoute(r *http.Request) bool {
	if r.URL.Path == "/healthcheck" || r.URL.Path == "/v1/login" {
		return true
	}

	if r.Method == http.MethodPost && r.URL.Path == "/v1/leads" {
		return true
	}

	if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/leads/") &&
		(strings.HasSuffix(r.URL.Path, "/plan") || strings.HasSuffix(r.URL.Path, "/plan/export")) {
		return true
	}

	return false
}
