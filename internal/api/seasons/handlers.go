// internal/api/seasons/handlers.go
package seasons

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/canchalibre/canchalibre/internal/api/apiutil"
	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/league"
)

const (
	seasonQueryTimeout = 5 * time.Second
	seasonIDPathKey    = "id"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type seasonRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// GET /api/v1/seasons
func HandleSeasonsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	seasons, err := league.ListSeasons(ctx, database.Queries)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list seasons")
		http.Error(w, "Failed to list seasons", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"seasons": seasons}); err != nil {
		logger.Error().Err(err).Msg("Failed to write seasons response")
	}
}

// POST /api/v1/seasons
func HandleSeasonCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req seasonRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	startDate, err := apiutil.ParseDateField(req.StartDate, "startDate")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endDate, err := apiutil.ParseOptionalDateField(req.EndDate, "endDate")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	season, err := league.CreateSeason(ctx, database, req.Name, startDate, endDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, season); err != nil {
		logger.Error().Err(err).Str("season_id", season.ID).Msg("Failed to write season response")
	}
}

// POST /api/v1/seasons/{id}/activate
func HandleSeasonActivate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := apiutil.PathID(r, seasonIDPathKey)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	if err := league.ActivateSeason(ctx, database, seasonID); err != nil {
		if errors.Is(err, league.ErrSeasonNotFound) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to activate season")
		http.Error(w, "Failed to activate season", http.StatusInternalServerError)
		return
	}

	season, err := database.Queries.GetSeason(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to fetch activated season")
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, season); err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to write season response")
	}
}

// GET /api/v1/seasons/active
func HandleActiveSeason(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	season, err := league.ActiveSeason(ctx, database.Queries)
	if err != nil {
		if errors.Is(err, league.ErrNoActiveSeason) {
			http.Error(w, "No active season", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Msg("Failed to fetch active season")
		http.Error(w, "Failed to fetch active season", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, season); err != nil {
		logger.Error().Err(err).Msg("Failed to write season response")
	}
}
