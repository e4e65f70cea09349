package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Authenticate looks a user up by (identifier, role) and verifies the
// password. An unseen pair is registered on the spot with the supplied
// password: first use wins, later logins must match it.
func Authenticate(ctx context.Context, db *sql.DB, userID, password, role string) error {
	var storedHash string
	err := db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE id=$1 AND role=$2`, userID, role).Scan(&storedHash)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		return nil
	case errors.Is(err, sql.ErrNoRows):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO users (id, role, password_hash, created_at) VALUES ($1,$2,$3,$4)`,
			userID, role, string(hash), time.Now().Unix())
		return err
	default:
		return err
	}
}

// POST /auth  { "userID": "...", "password": "...", "role": "teacher|student" }
func LoginHandler(a *AuthService, db *sql.DB) http.HandlerFunc {
	type out struct {
		Token string `json:"token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID   string `json:"userID"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.UserID = strings.TrimSpace(req.UserID)
		if req.UserID == "" || req.Password == "" {
			http.Error(w, "userID and password required", http.StatusBadRequest)
			return
		}
		if req.Role != "teacher" && req.Role != "student" {
			http.Error(w, "role must be teacher or student", http.StatusBadRequest)
			return
		}

		if err := Authenticate(r.Context(), db, req.UserID, req.Password, req.Role); err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, "incorrect password", http.StatusUnauthorized)
				return
			}
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}

		tok, err := a.IssueJWT(req.UserID, req.Role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{Token: tok})
	}
}
