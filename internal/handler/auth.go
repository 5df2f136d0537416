package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/boolen-kitchen/api/internal/auth"
)

// AuthHandler handles merchant authentication. Credentials come from
// configuration; there is no user table in this deployment.
type AuthHandler struct {
	username     string
	passwordHash []byte
	jwtSecret    string
}

// NewAuthHandler creates a new AuthHandler. The configured password is
// hashed once at construction so login compares against a bcrypt digest
// even though the source is an environment variable.
func NewAuthHandler(username, password, jwtSecret string) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{username: username, passwordHash: hash, jwtSecret: jwtSecret}, nil
}

// RegisterRoutes registers auth endpoints on the given Chi router.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login handles username + password authentication.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if req.Username != h.username {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, req.Username)
	if err != nil {
		log.Printf("ERROR: generating token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
