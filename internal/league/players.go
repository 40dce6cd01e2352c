package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// AddPlayerParams carries a new squad member.
type AddPlayerParams struct {
	TeamID   string
	FullName string
	Number   int64
	Position string
	PhotoURL string
}

// AddPlayer registers a player on a team's squad for the active season.
// The team must be enrolled in that season.
func AddPlayer(ctx context.Context, database *appdb.DB, params AddPlayerParams) (appdb.Player, error) {
	params.FullName = strings.TrimSpace(params.FullName)
	if params.FullName == "" {
		return appdb.Player{}, fmt.Errorf("player name is required")
	}
	if params.Number < 0 {
		return appdb.Player{}, fmt.Errorf("shirt number must not be negative")
	}

	season, err := ActiveSeason(ctx, database.Queries)
	if err != nil {
		return appdb.Player{}, err
	}

	if _, err := database.Queries.GetTeam(ctx, params.TeamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Player{}, ErrTeamNotFound
		}
		return appdb.Player{}, fmt.Errorf("fetch team: %w", err)
	}

	enrolled, err := database.Queries.IsTeamEnrolled(ctx, appdb.EnrollmentParams{
		SeasonID: season.ID,
		TeamID:   params.TeamID,
	})
	if err != nil {
		return appdb.Player{}, fmt.Errorf("check enrollment: %w", err)
	}
	if !enrolled {
		return appdb.Player{}, ErrTeamNotEnrolled
	}

	return database.Queries.CreatePlayer(ctx, appdb.CreatePlayerParams{
		TeamID:   params.TeamID,
		SeasonID: season.ID,
		FullName: params.FullName,
		Number:   params.Number,
		Position: strings.TrimSpace(params.Position),
		PhotoURL: strings.TrimSpace(params.PhotoURL),
	})
}

// ListSquad returns a team's players for a season, ordered by shirt number.
func ListSquad(ctx context.Context, q *appdb.Queries, seasonID, teamID string) ([]appdb.Player, error) {
	return q.ListPlayers(ctx, appdb.ListPlayersParams{SeasonID: seasonID, TeamID: teamID})
}

// RemovePlayer deletes a squad entry. Ledger events keep their recorded
// player id and name, so past statistics survive the removal.
func RemovePlayer(ctx context.Context, q *appdb.Queries, playerID string) error {
	affected, err := q.DeletePlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
