// internal/api/matches/handlers.go
package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/canchalibre/canchalibre/internal/api/apiutil"
	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/league"
	"github.com/canchalibre/canchalibre/internal/notify"
)

const (
	matchQueryTimeout = 5 * time.Second
	matchIDPathKey    = "id"
	kickoffLayout     = "2006-01-02T15:04"
)

var (
	database *appdb.DB
	notifier notify.Notifier
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB, n notify.Notifier) {
	database = db
	notifier = n
}

type matchRequest struct {
	TournamentID string `json:"tournamentId"`
	MatchdayID   string `json:"matchdayId"`
	LocalTeamID  string `json:"localTeamId"`
	AwayTeamID   string `json:"awayTeamId"`
	Date         string `json:"date"`
	Field        string `json:"field"`
	GroupID      string `json:"groupId"`
}

type finalizeRequest struct {
	LocalGoals int64               `json:"localGoals"`
	AwayGoals  int64               `json:"awayGoals"`
	Events     []league.EventInput `json:"events"`
}

func parseMatchRequest(req matchRequest) (league.ScheduleMatchParams, error) {
	tournamentID, err := apiutil.ParseRequiredString(req.TournamentID, "tournamentId")
	if err != nil {
		return league.ScheduleMatchParams{}, err
	}
	matchdayID, err := apiutil.ParseRequiredString(req.MatchdayID, "matchdayId")
	if err != nil {
		return league.ScheduleMatchParams{}, err
	}
	localTeamID, err := apiutil.ParseRequiredString(req.LocalTeamID, "localTeamId")
	if err != nil {
		return league.ScheduleMatchParams{}, err
	}
	awayTeamID, err := apiutil.ParseRequiredString(req.AwayTeamID, "awayTeamId")
	if err != nil {
		return league.ScheduleMatchParams{}, err
	}
	date, err := time.Parse(kickoffLayout, req.Date)
	if err != nil {
		return league.ScheduleMatchParams{}, apiutil.FieldError{Field: "date", Reason: "must use the " + kickoffLayout + " format"}
	}

	return league.ScheduleMatchParams{
		TournamentID: tournamentID,
		MatchdayID:   matchdayID,
		LocalTeamID:  localTeamID,
		AwayTeamID:   awayTeamID,
		Date:         date,
		Field:        req.Field,
		GroupID:      req.GroupID,
	}, nil
}

// POST /api/v1/matches
func HandleMatchCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req matchRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	params, err := parseMatchRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	match, err := league.ScheduleMatch(ctx, database, params)
	if err != nil {
		switch {
		case errors.Is(err, league.ErrSameTeam):
			http.Error(w, "A team cannot play itself", http.StatusBadRequest)
		case errors.Is(err, league.ErrMatchdayNotFound):
			http.Error(w, "Matchday not found", http.StatusNotFound)
		case errors.Is(err, league.ErrTeamNotInTournament):
			http.Error(w, "Team is not part of this tournament", http.StatusBadRequest)
		default:
			logger.Error().Err(err).Msg("Failed to schedule match")
			http.Error(w, "Failed to schedule match", http.StatusInternalServerError)
		}
		return
	}

	// The fixture is committed; announcement failure only gets logged.
	announceFixture(r.Context(), match)

	if err := apiutil.WriteJSON(w, http.StatusCreated, match); err != nil {
		logger.Error().Err(err).Str("match_id", match.ID).Msg("Failed to write match response")
	}
}

func announceFixture(ctx context.Context, match appdb.Match) {
	if notifier == nil {
		return
	}

	lookupCtx, cancel := context.WithTimeout(ctx, matchQueryTimeout)
	defer cancel()

	local, err := database.Queries.GetTeam(lookupCtx, match.LocalTeamID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("match_id", match.ID).Msg("Failed to load teams for fixture announcement")
		return
	}
	away, err := database.Queries.GetTeam(lookupCtx, match.AwayTeamID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("match_id", match.ID).Msg("Failed to load teams for fixture announcement")
		return
	}

	subject := fmt.Sprintf("New fixture: %s vs %s", local.Name, away.Name)
	body := fmt.Sprintf("%s vs %s on %s", local.Name, away.Name, match.Date.Format("Mon Jan 2 15:04"))
	if match.Field != "" {
		body += " at " + match.Field
	}
	notify.Async(ctx, notifier, subject, body)
}

// GET /api/v1/matches?tournamentId=&matchdayId=&status=
func HandleMatchesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	filter := appdb.MatchFilter{
		TournamentID: r.URL.Query().Get("tournamentId"),
		MatchdayID:   r.URL.Query().Get("matchdayId"),
		Status:       r.URL.Query().Get("status"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	matches, err := league.ListMatches(ctx, database.Queries, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list matches")
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"matches": matches}); err != nil {
		logger.Error().Err(err).Msg("Failed to write matches response")
	}
}

// GET /api/v1/matches/{id}
func HandleMatchDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	match, err := database.Queries.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to fetch match")
		http.Error(w, "Failed to fetch match", http.StatusInternalServerError)
		return
	}

	events, err := league.ListEvents(ctx, database.Queries, matchID)
	if err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to list match events")
		http.Error(w, "Failed to fetch match", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"match":  match,
		"events": events,
	}); err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to write match response")
	}
}

// POST /api/v1/matches/{id}/events
func HandleEventCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	var event league.EventInput
	if err := apiutil.DecodeJSON(r, &event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	created, err := league.RecordEvent(ctx, database, matchID, event)
	if err != nil {
		switch {
		case errors.Is(err, league.ErrMatchNotFound):
			http.Error(w, "Match not found", http.StatusNotFound)
		case errors.Is(err, league.ErrMatchPlayed):
			http.Error(w, "Match is already finalized", http.StatusConflict)
		case errors.Is(err, league.ErrInvalidEventType):
			http.Error(w, "Unknown event type", http.StatusBadRequest)
		default:
			logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to record event")
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, created); err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to write event response")
	}
}

// GET /api/v1/matches/{id}/events
func HandleEventsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	events, err := league.ListEvents(ctx, database.Queries, matchID)
	if err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to list events")
		http.Error(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"events": events}); err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to write events response")
	}
}

// POST /api/v1/matches/{id}/finalize
func HandleMatchFinalize(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	var req finalizeRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	if err := league.FinalizeMatch(ctx, database, matchID, req.LocalGoals, req.AwayGoals, req.Events); err != nil {
		switch {
		case errors.Is(err, league.ErrMatchNotFound):
			http.Error(w, "Match not found", http.StatusNotFound)
		case errors.Is(err, league.ErrScoreMismatch):
			http.Error(w, "Ledger goals exceed the scoreline", http.StatusBadRequest)
		case errors.Is(err, league.ErrInvalidEventType):
			http.Error(w, "Unknown event type", http.StatusBadRequest)
		default:
			logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to finalize match")
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	match, err := database.Queries.GetMatch(ctx, matchID)
	if err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to fetch finalized match")
		http.Error(w, "Failed to fetch match", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, match); err != nil {
		logger.Error().Err(err).Str("match_id", matchID).Msg("Failed to write match response")
	}
}
