package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"excelence-server/src/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ContextKey avoids collisions with other packages' context values.
type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	UserEmailKey ContextKey = "user_email"
)

// UserResolver re-resolves the bearer identity against the backing store on
// every request. There is no session cache.
type UserResolver interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ParseTokenFromRequest extracts and validates the bearer JWT, returning
// its claims if valid.
func ParseTokenFromRequest(r *http.Request, secret string) (jwt.MapClaims, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

// JWTAuthMiddleware is the authentication gate: it verifies the bearer
// token, then looks the user up again so revoked or deactivated accounts
// are rejected immediately.
func JWTAuthMiddleware(secret string, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ParseTokenFromRequest(r, secret)
			if err != nil {
				http.Error(w, "could not validate credentials", http.StatusUnauthorized)
				return
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				http.Error(w, "could not validate credentials", http.StatusUnauthorized)
				return
			}
			userID, err := uuid.Parse(sub)
			if err != nil {
				http.Error(w, "could not validate credentials", http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				http.Error(w, "could not validate credentials", http.StatusUnauthorized)
				return
			}
			if !user.IsActive {
				http.Error(w, "inactive user", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			ctx = context.WithValue(ctx, UserEmailKey, user.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
