// internal/api/notices/handlers.go
package notices

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
	noticeQueryTimeout = 5 * time.Second
	seasonIDPathKey    = "id"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type noticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// POST /api/v1/seasons/{id}/notices
func HandleNoticeCreate(w http.ResponseWriter, r *http.Request) {
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

	var req noticeRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), noticeQueryTimeout)
	defer cancel()

	notice, err := league.PostNotice(ctx, database.Queries, seasonID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, league.ErrSeasonNotFound) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, notice); err != nil {
		logger.Error().Err(err).Str("notice_id", notice.ID).Msg("Failed to write notice response")
	}
}

// GET /api/v1/seasons/{id}/notices
func HandleNoticesList(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), noticeQueryTimeout)
	defer cancel()

	notices, err := league.ListNotices(ctx, database.Queries, seasonID)
	if err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to list notices")
		http.Error(w, "Failed to list notices", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"notices": notices}); err != nil {
		logger.Error().Err(err).Str("season_id", seasonID).Msg("Failed to write notices response")
	}
}
