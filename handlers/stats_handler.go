package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"carplogAPI/middleware"
	"carplogAPI/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GET /api/stats/monthly?year=
func (h *StatsHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	raw := r.URL.Query().Get("year")
	if raw == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'year' is required")
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}

	monthly, err := h.statsService.Monthly(ctx, userID, year)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("GetMonthlyStats Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load monthly stats")
		return
	}

	respondWithJSON(w, http.StatusOK, monthly)
}

// GET /api/stats/yearly
func (h *StatsHandler) GetYearlyStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	yearly, err := h.statsService.Yearly(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("GetYearlyStats Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load yearly stats")
		return
	}

	respondWithJSON(w, http.StatusOK, yearly)
}
