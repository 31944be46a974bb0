package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"taxpal/internal/auth"
	"taxpal/internal/logger"
)

type contextKey string

const UserIDKey contextKey = "user_id"

type AuthMiddleware struct {
	jwt *auth.JWTManager
	log *logger.Logger
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwt: jwtManager,
		log: logger.New("auth-middleware"),
	}
}

// RequireAuth verifies the bearer credential and injects the owning
// user id into the request context. Downstream handlers never see a
// request that failed verification.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			unauthorized(w, "No token, authorization denied")
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			m.log.Debug("Rejected token: %v", err)
			unauthorized(w, "Token is not valid or expired")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// extractToken prefers 'Authorization: Bearer <token>' but still
// accepts the legacy x-auth-token header older SPA builds send.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return r.Header.Get("x-auth-token")
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
