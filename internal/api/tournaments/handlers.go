// internal/api/tournaments/handlers.go
package tournaments

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/canchalibre/canchalibre/internal/api/apiutil"
	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/league"
)

const (
	tournamentQueryTimeout = 5 * time.Second
	tournamentIDPathKey    = "id"
	matchdayIDPathKey      = "matchdayId"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type tournamentRequest struct {
	SeasonID string `json:"seasonId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

// POST /api/v1/tournaments
func HandleTournamentCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req tournamentRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	seasonID, err := apiutil.ParseRequiredString(req.SeasonID, "seasonId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), tournamentQueryTimeout)
	defer cancel()

	tournament, err := league.CreateTournament(ctx, database, seasonID, req.Name, req.Type)
	if err != nil {
		if errors.Is(err, league.ErrSeasonNotFound) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, tournament); err != nil {
		logger.Error().Err(err).Str("tournament_id", tournament.ID).Msg("Failed to write tournament response")
	}
}

// GET /api/v1/seasons/{id}/tournaments
func HandleTournamentsBySeason(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), tournamentQueryTimeout)
	defer cancel()

	tournaments, err := database.Queries.ListTournamentsBySeason(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to list tournaments")
		http.Error(w, "Failed to list tournaments", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"tournaments": tournaments}); err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to write tournaments response")
	}
}

// GET /api/v1/tournaments/{id}
func HandleTournamentDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tournamentID, err := apiutil.PathID(r, tournamentIDPathKey)
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), tournamentQueryTimeout)
	defer cancel()

	tournament, err := database.Queries.GetTournament(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to fetch tournament")
		http.Error(w, "Failed to fetch tournament", http.StatusInternalServerError)
		return
	}

	teams, err := database.Queries.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to list tournament teams")
		http.Error(w, "Failed to fetch tournament", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"tournament": tournament,
		"teams":      teams,
	}); err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to write tournament response")
	}
}

// POST /api/v1/tournaments/{id}/matchdays
func HandleMatchdayCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tournamentID, err := apiutil.PathID(r, tournamentIDPathKey)
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), tournamentQueryTimeout)
	defer cancel()

	matchday, err := league.NextMatchday(ctx, database, tournamentID)
	if err != nil {
		if errors.Is(err, league.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to create matchday")
		http.Error(w, "Failed to create matchday", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, matchday); err != nil {
		logger.Error().Err(err).Str("matchday_id", matchday.ID).Msg("Failed to write matchday response")
	}
}

// GET /api/v1/tournaments/{id}/matchdays
func HandleMatchdaysList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tournamentID, err := apiutil.PathID(r, tournamentIDPathKey)
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), tournamentQueryTimeout)
	defer cancel()

	matchdays, err := league.ListMatchdays(ctx, database.Queries, tournamentID)
	if err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to list matchdays")
		http.Error(w, "Failed to list matchdays", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"matchdays": matchdays}); err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to write matchdays response")
	}
}

// DELETE /api/v1/tournaments/{id}/matchdays/{matchdayId}
func HandleMatchdayDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tournamentID, err := apiutil.PathID(r, tournamentIDPathKey)
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}
	matchdayID, err := apiutil.PathID(r, matchdayIDPathKey)
	if err != nil {
		http.Error(w, "Invalid matchday ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), tournamentQueryTimeout)
	defer cancel()

	if err := league.DeleteLastMatchday(ctx, database, tournamentID, matchdayID); err != nil {
		switch {
		case errors.Is(err, league.ErrMatchdayNotFound), errors.Is(err, league.ErrTournamentNotFound):
			http.Error(w, "Matchday not found", http.StatusNotFound)
		case errors.Is(err, league.ErrNotLastMatchday):
			http.Error(w, "Only the last matchday can be deleted", http.StatusConflict)
		case errors.Is(err, league.ErrMatchdayHasMatches):
			http.Error(w, "Matchday still has matches", http.StatusConflict)
		default:
			logger.Error().Err(err).Str("matchday_id", matchdayID).Msg("Failed to delete matchday")
			http.Error(w, "Failed to delete matchday", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/tournaments/{id}/fixtures
// Generates a full round-robin schedule: one matchday per round, every
// pairing scheduled once.
func HandleGenerateFixtures(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tournamentID, err := apiutil.PathID(r, tournamentIDPathKey)
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}

	var req struct {
		StartDate string `json:"startDate"`
	}
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	startDate, err := apiutil.ParseDateField(req.StartDate, "startDate")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	matches, err := generateFixtures(ctx, tournamentID, startDate)
	if err != nil {
		switch {
		case errors.Is(err, league.ErrTournamentNotFound):
			http.Error(w, "Tournament not found", http.StatusNotFound)
		case errors.Is(err, league.ErrNoTeams):
			http.Error(w, "Tournament needs at least two teams", http.StatusBadRequest)
		default:
			logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to generate fixtures")
			http.Error(w, "Failed to generate fixtures", http.StatusInternalServerError)
		}
		return
	}

	logger.Info().Str("tournament_id", tournamentID).Int("matches", len(matches)).Msg("Fixtures generated")

	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{"matches": matches}); err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to write fixtures response")
	}
}
