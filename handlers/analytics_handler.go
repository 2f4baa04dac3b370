package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"carplogAPI/internal/analytics"
	"carplogAPI/middleware"
	"carplogAPI/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	userService      *services.UserService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService, userService *services.UserService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		userService:      userService,
	}
}

// POST /api/analytics/track  (no auth)
func (h *AnalyticsHandler) TrackEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req analytics.TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.analyticsService.Track(ctx, &req); err != nil {
		log.Printf("TrackEvent Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to track event")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "tracked"})
}

// GET /api/analytics/stats
// Gated by ordinary authentication only; there is no admin role.
func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.userService.Exists(ctx, userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("GetStats Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load analytics stats")
		return
	}

	resp, err := h.analyticsService.Stats(ctx)
	if err != nil {
		log.Printf("GetStats Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load analytics stats")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
