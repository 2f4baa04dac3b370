package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"carplogAPI/internal/catch"
	"carplogAPI/middleware"
	"carplogAPI/services"
)

type CatchHandler struct {
	catchService *services.CatchService
}

func NewCatchHandler(catchService *services.CatchService) *CatchHandler {
	return &CatchHandler{
		catchService: catchService,
	}
}

// POST /api/catches
func (h *CatchHandler) CreateCatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req catch.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.catchService.Create(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("CreateCatch Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log catch")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// GET /api/catches?year=&month=&limit=
func (h *CatchHandler) GetCatches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var year, month *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		year = &parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			respondWithError(w, http.StatusBadRequest, "Invalid month")
			return
		}
		month = &parsed
	}

	limit := int64(0)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	catches, err := h.catchService.List(ctx, userID, year, month, limit)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		log.Printf("GetCatches Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load catches")
		return
	}

	respondWithJSON(w, http.StatusOK, catches)
}

// DELETE /api/catches/{id}
func (h *CatchHandler) DeleteCatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	catchID := mux.Vars(r)["id"]
	if catchID == "" {
		respondWithError(w, http.StatusBadRequest, "Catch id is required")
		return
	}

	if err := h.catchService.Delete(ctx, userID, catchID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Catch not found")
			return
		}
		log.Printf("DeleteCatch Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to delete catch")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Catch deleted successfully"})
}
