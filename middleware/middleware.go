package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

// Revoker answers whether a token has been revoked (logout).
type Revoker interface {
	IsRevoked(token string) bool
}

// JWTAuthMiddleware rejects requests without a valid session token and puts
// the token claims on the request context.
func JWTAuthMiddleware(revoker Revoker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
				respondUnauthorized(w, "Authorization header missing")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if revoker != nil && revoker.IsRevoked(tokenStr) {
				logging.Logger.Warnf("Event ID: JWT_AUTH_REVOKED_TOKEN, Description: Revoked token used for request to %s %s", r.Method, r.URL.Path)
				respondUnauthorized(w, "Invalid token")
				return
			}

			claims, err := utils.ValidateToken(tokenStr)
			if err != nil {
				logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
				respondUnauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the session claims stored by JWTAuthMiddleware,
// or nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *utils.Claims {
	claims, _ := ctx.Value(claimsKey).(*utils.Claims)
	return claims
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
