// internal/api/teams/handlers.go
package teams

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/canchalibre/canchalibre/internal/api/apiutil"
	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/phone"
)

const (
	teamQueryTimeout = 5 * time.Second
	teamIDPathKey    = "id"
)

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type teamRequest struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logoUrl"`
	ContactPhone string `json:"contactPhone"`
}

type teamInput struct {
	Name         string
	LogoURL      string
	ContactPhone string
}

func parseTeamRequest(req teamRequest) (teamInput, error) {
	name, err := apiutil.ParseRequiredString(req.Name, "name")
	if err != nil {
		return teamInput{}, err
	}

	contact := strings.TrimSpace(req.ContactPhone)
	if contact != "" {
		normalized := phone.Normalize(contact)
		if normalized == "" {
			return teamInput{}, apiutil.FieldError{Field: "contactPhone", Reason: "must be a valid phone number"}
		}
		contact = normalized
	}

	return teamInput{
		Name:         name,
		LogoURL:      strings.TrimSpace(req.LogoURL),
		ContactPhone: contact,
	}, nil
}

// GET /api/v1/teams
func HandleTeamsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	teams, err := database.Queries.ListTeams(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list teams")
		http.Error(w, "Failed to list teams", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": teams}); err != nil {
		logger.Error().Err(err).Msg("Failed to write teams response")
	}
}

// POST /api/v1/teams
func HandleTeamCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req teamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := parseTeamRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := database.Queries.CreateTeam(ctx, appdb.CreateTeamParams{
		Name:         input.Name,
		LogoURL:      input.LogoURL,
		ContactPhone: input.ContactPhone,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create team")
		http.Error(w, "Failed to create team", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, team); err != nil {
		logger.Error().Err(err).Str("team_id", team.ID).Msg("Failed to write team response")
	}
}

// GET /api/v1/teams/{id}
func HandleTeamDetail(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := database.Queries.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("team_id", teamID).Msg("Failed to fetch team")
		http.Error(w, "Failed to fetch team", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, team); err != nil {
		logger.Error().Err(err).Str("team_id", teamID).Msg("Failed to write team response")
	}
}
