// internal/api/standings/handlers.go
package standings

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/canchalibre/canchalibre/internal/api/apiutil"
	"github.com/canchalibre/canchalibre/internal/api/htmx"
	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/league"
)

const (
	standingsQueryTimeout = 5 * time.Second
	tournamentIDPathKey   = "id"
	playerIDPathKey       = "playerId"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

// GET /api/v1/tournaments/{id}/standings?includeIdle=true
func HandleStandings(w http.ResponseWriter, r *http.Request) {
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

	opts := league.StandingsOptions{
		IncludeIdle: r.URL.Query().Get("includeIdle") == "true",
	}

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	table, err := league.CalculateStandings(ctx, database.Queries, tournamentID, opts)
	if err != nil {
		if errors.Is(err, league.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to calculate standings")
		http.Error(w, "Failed to calculate standings", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := standingsTableComponent(table)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render standings table", "Failed to render standings") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"standings": table}); err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to write standings response")
	}
}

// GET /api/v1/tournaments/{id}/scorers
func HandleTopScorers(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	scorers, err := league.TopScorers(ctx, database.Queries, tournamentID)
	if err != nil {
		if errors.Is(err, league.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to aggregate scorers")
		http.Error(w, "Failed to aggregate scorers", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := scorersTableComponent(scorers)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render scorers table", "Failed to render scorers") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"scorers": scorers}); err != nil {
		logger.Error().Err(err).Str("tournament_id", tournamentID).Msg("Failed to write scorers response")
	}
}

// GET /api/v1/tournaments/{id}/players/{playerId}/stats
func HandlePlayerStats(w http.ResponseWriter, r *http.Request) {
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
	playerID, err := apiutil.PathID(r, playerIDPathKey)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	stats, err := league.StatsForPlayer(ctx, database.Queries, tournamentID, playerID)
	if err != nil {
		if errors.Is(err, league.ErrTournamentNotFound) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("tournament_id", tournamentID).Str("player_id", playerID).Msg("Failed to aggregate player stats")
		http.Error(w, "Failed to aggregate player stats", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, stats); err != nil {
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to write player stats response")
	}
}
