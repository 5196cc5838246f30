package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"excelence-server/src/config"
	"excelence-server/src/models"
	"excelence-server/src/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
}

func Signup(store AuthStore, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode signup request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = util.NormalizeEmail(req.Email)

		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during signup - Email: %s", req.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		if !util.ValidatePassword(req.Password) {
			log.Printf("ERROR: Password validation failed during signup - Email: %s", req.Email)
			http.Error(w, "password must be at least 8 characters", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		user, err := store.CreateUser(r.Context(), req.Email, string(hashedPassword))
		if err != nil {
			if errors.Is(err, models.ErrDuplicateEmail) {
				log.Printf("ERROR: Signup failed - email already exists - Email: %s", req.Email)
				http.Error(w, "A user with this email already exists. Please log in or use a different email.", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Successful signup - Email: %s, ID: %s", user.Email, user.ID)

		go sendVerification(cfg, user)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.SignupResponse{
			ID:      user.ID,
			Email:   user.Email,
			Message: "Account created. Please confirm your email address.",
		})
	}
}

func Login(store AuthStore, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// OAuth2 password flow: form-encoded username (the email) and password.
		if err := r.ParseForm(); err != nil {
			log.Printf("ERROR: Failed to parse login form: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		email := util.NormalizeEmail(r.PostFormValue("username"))
		password := r.PostFormValue("password")

		user, err := store.GetUserByEmail(r.Context(), email)
		if err != nil {
			log.Printf("ERROR: Failed to find user during login - Email: %s: %v", email, err)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for %s from IP %s", email, r.RemoteAddr)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if !user.IsActive {
			log.Printf("ERROR: Inactive user attempted login - Email: %s", email)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if !user.EmailVerified {
			log.Printf("ERROR: Unverified user attempted login - Email: %s", email)
			http.Error(w, "Email not confirmed", http.StatusUnauthorized)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   user.ID.String(),
			"email": user.Email,
			"exp":   time.Now().Add(cfg.TokenTTL).Unix(),
		})

		tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for %s: %v", user.Email, err)
			http.Error(w, "Error generating token", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Successful login - Email: %s, ID: %s", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Token{
			AccessToken: tokenString,
			TokenType:   "bearer",
		})
	}
}

func ResendVerification(store AuthStore, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			log.Printf("ERROR: Failed to decode resend verification request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		user, err := store.GetUserByEmail(r.Context(), util.NormalizeEmail(req.Email))
		if err != nil {
			log.Printf("ERROR: Resend verification for unknown email: %s", req.Email)
			http.Error(w, "unknown email address", http.StatusBadRequest)
			return
		}

		if user.EmailVerified {
			http.Error(w, "email is already verified", http.StatusBadRequest)
			return
		}

		go sendVerification(cfg, user)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Verification email sent successfully",
		})
	}
}

// VerifyEmail completes the confirmation flow started at signup. The token
// is a short-lived HS256 JWT with a dedicated purpose claim so an access
// token cannot be replayed here.
func VerifyEmail(store AuthStore, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("invalid signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid or expired token", http.StatusBadRequest)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["purpose"] != "verify" {
			http.Error(w, "invalid or expired token", http.StatusBadRequest)
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusBadRequest)
			return
		}

		if err := store.MarkEmailVerified(r.Context(), userID); err != nil {
			log.Printf("ERROR: Failed to mark email verified - user: %s: %v", userID, err)
			http.Error(w, "invalid or expired token", http.StatusBadRequest)
			return
		}

		log.Printf("INFO: Email verified - user: %s", userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Email verified successfully",
		})
	}
}

// sendVerification runs off the request goroutine; delivery is best effort
// and must never hold up the response.
func sendVerification(cfg config.Config, user *models.User) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     user.ID.String(),
		"purpose": "verify",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		log.Printf("ERROR: Failed to generate verification token for %s: %v", user.Email, err)
		return
	}

	verifyURL := fmt.Sprintf("/api/v1/auth/verify?token=%s", tokenString)
	if err := util.SendVerificationNotice(cfg.SignupWebhookURL, user.Email, verifyURL); err != nil {
		log.Printf("ERROR: Failed to send verification notice for %s: %v", user.Email, err)
	}
}
