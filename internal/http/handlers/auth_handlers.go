package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ricardomoraes/minimart-inventory/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate and return access + refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := refreshStore.Issue(user.Username)
	if err != nil {
		http.Error(w, "could not generate refresh token", http.StatusInternalServerError)
		return
	}

	err = json.NewEncoder(w).Encode(LoginResult{Token: token, RefreshToken: refreshToken})
	if err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RefreshHandler godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "refresh token"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	username, err := refreshStore.Lookup(req.RefreshToken)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByUsername(username)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	err = json.NewEncoder(w).Encode(LoginResult{Token: token, RefreshToken: req.RefreshToken})
	if err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// LogoutHandler godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param refresh body RefreshRequest true "refresh token"
// @Success 204 "Logged out"
// @Failure 400 {string} string "Invalid input"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := refreshStore.Revoke(req.RefreshToken); err != nil {
		log.Printf("could not revoke refresh token: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
