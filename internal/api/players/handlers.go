// internal/api/players/handlers.go
package players

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
	playerQueryTimeout = 5 * time.Second
	teamIDPathKey      = "id"
	playerIDPathKey    = "playerId"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type playerRequest struct {
	FullName string `json:"fullName"`
	Number   int64  `json:"number"`
	Position string `json:"position"`
	PhotoURL string `json:"photoUrl"`
}

// POST /api/v1/teams/{id}/players
func HandlePlayerCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	var req playerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	player, err := league.AddPlayer(ctx, database, league.AddPlayerParams{
		TeamID:   teamID,
		FullName: req.FullName,
		Number:   req.Number,
		Position: req.Position,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, league.ErrNoActiveSeason):
			http.Error(w, "No active season", http.StatusConflict)
		case errors.Is(err, league.ErrTeamNotFound):
			http.Error(w, "Team not found", http.StatusNotFound)
		case errors.Is(err, league.ErrTeamNotEnrolled):
			http.Error(w, "Team is not enrolled in the active season", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, player); err != nil {
		logger.Error().Err(err).Str("player_id", player.ID).Msg("Failed to write player response")
	}
}

// GET /api/v1/teams/{id}/players?seasonId=
func HandleSquadList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	seasonID := r.URL.Query().Get("seasonId")
	if seasonID == "" {
		season, err := league.ActiveSeason(ctx, database.Queries)
		if err != nil {
			if errors.Is(err, league.ErrNoActiveSeason) {
				http.Error(w, "No active season", http.StatusNotFound)
				return
			}
			logger.Error().Err(err).Msg("Failed to resolve active season")
			http.Error(w, "Failed to list players", http.StatusInternalServerError)
			return
		}
		seasonID = season.ID
	}

	squad, err := league.ListSquad(ctx, database.Queries, seasonID, teamID)
	if err != nil {
		logger.Error().Err(err).Str("team_id", teamID).Msg("Failed to list players")
		http.Error(w, "Failed to list players", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"players": squad}); err != nil {
		logger.Error().Err(err).Str("team_id", teamID).Msg("Failed to write players response")
	}
}

// GET /api/v1/players/{playerId}
func HandlePlayerDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := apiutil.PathID(r, playerIDPathKey)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	player, err := database.Queries.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to fetch player")
		http.Error(w, "Failed to fetch player", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, player); err != nil {
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to write player response")
	}
}

// DELETE /api/v1/players/{playerId}
func HandlePlayerDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := apiutil.PathID(r, playerIDPathKey)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	if err := league.RemovePlayer(ctx, database.Queries, playerID); err != nil {
		if errors.Is(err, league.ErrPlayerNotFound) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to delete player")
		http.Error(w, "Failed to delete player", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
