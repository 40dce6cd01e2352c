// internal/api/enrollment/handlers.go
package enrollment

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
	enrollmentQueryTimeout = 5 * time.Second
	seasonIDPathKey        = "id"
	teamIDPathKey          = "teamId"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type enrollRequest struct {
	TeamID string `json:"teamId"`
}

// GET /api/v1/seasons/{id}/enrollments
func HandleEnrolledList(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), enrollmentQueryTimeout)
	defer cancel()

	teams, err := league.ListEnrolledTeams(ctx, database.Queries, seasonID)
	if err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to list enrolled teams")
		http.Error(w, "Failed to list enrolled teams", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": teams}); err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to write enrollments response")
	}
}

// POST /api/v1/seasons/{id}/enrollments
func HandleEnroll(w http.ResponseWriter, r *http.Request) {
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

	var req enrollRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	teamID, err := apiutil.ParseRequiredString(req.TeamID, "teamId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), enrollmentQueryTimeout)
	defer cancel()

	if err := league.EnrollTeam(ctx, database, seasonID, teamID); err != nil {
		switch {
		case errors.Is(err, league.ErrSeasonNotFound):
			http.Error(w, "Season not found", http.StatusNotFound)
		case errors.Is(err, league.ErrTeamNotFound):
			http.Error(w, "Team not found", http.StatusNotFound)
		default:
			logger.Error().Err(err).Str("season_id", seasonID).Str("team_id", teamID).Msg("Failed to enroll team")
			http.Error(w, "Failed to enroll team", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/v1/seasons/{id}/enrollments/{teamId}
func HandleUnenroll(w http.ResponseWriter, r *http.Request) {
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
	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), enrollmentQueryTimeout)
	defer cancel()

	if err := league.UnenrollTeam(ctx, database, seasonID, teamID); err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Str("team_id", teamID).Msg("Failed to unenroll team")
		http.Error(w, "Failed to unenroll team", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
