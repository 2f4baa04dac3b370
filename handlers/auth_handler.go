package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"carplogAPI/internal/user"
	"carplogAPI/middleware"
	"carplogAPI/services"
)

var validate = validator.New()

type AuthHandler struct {
	userService *services.UserService
	auth        *middleware.JWTAuth
}

func NewAuthHandler(userService *services.UserService, auth *middleware.JWTAuth) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		auth:        auth,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondWithError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("Register Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// POST /api/auth/login
// Credentials arrive form-encoded, OAuth2 password-flow style: the
// email travels in the "username" field.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		respondWithError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := h.userService.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondWithError(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		log.Printf("Login Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.auth.Issue(u.ID)
	if err != nil {
		log.Printf("Login Handler: Failed to issue token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, user.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	u, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("Me Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	respondWithJSON(w, http.StatusOK, u.Public())
}

// PUT /api/auth/profile
// Replaces the whole profile subdocument with the supplied one.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var profile user.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdateProfile(ctx, userID, &profile)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("UpdateProfile Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s failed '%s' validation", fe.Field(), fe.Tag()))
	}
	return "Validation failed: " + strings.Join(details, ", ")
}
