// internal/api/dashboard/handlers.go
package dashboard

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

const dashboardQueryTimeout = 5 * time.Second

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type summary struct {
	ActiveSeason     *appdb.Season `json:"activeSeason"`
	Teams            int64         `json:"teams"`
	EnrolledTeams    int64         `json:"enrolledTeams"`
	Tournaments      int64         `json:"tournaments"`
	ScheduledMatches int64         `json:"scheduledMatches"`
	PlayedMatches    int64         `json:"playedMatches"`
}

// GET /api/v1/dashboard
func HandleDashboard(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dashboardQueryTimeout)
	defer cancel()

	var result summary

	season, err := league.ActiveSeason(ctx, database.Queries)
	switch {
	case err == nil:
		result.ActiveSeason = &season
	case errors.Is(err, league.ErrNoActiveSeason):
		// Dashboard still renders without an active season.
	default:
		logger.Error().Err(err).Msg("Failed to resolve active season")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	result.Teams, err = database.Queries.CountTeams(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count teams")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	if result.ActiveSeason != nil {
		enrolled, err := database.Queries.ListEnrolledTeams(ctx, result.ActiveSeason.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to list enrolled teams")
			http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
			return
		}
		result.EnrolledTeams = int64(len(enrolled))

		tournaments, err := database.Queries.ListTournamentsBySeason(ctx, result.ActiveSeason.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to list tournaments")
			http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
			return
		}
		result.Tournaments = int64(len(tournaments))
	}

	result.ScheduledMatches, err = database.Queries.CountMatchesByStatus(ctx, league.MatchScheduled)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count scheduled matches")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}
	result.PlayedMatches, err = database.Queries.CountMatchesByStatus(ctx, league.MatchPlayed)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count played matches")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, result); err != nil {
		logger.Error().Err(err).Msg("Failed to write dashboard response")
	}
}
