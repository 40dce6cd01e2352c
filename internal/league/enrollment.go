package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// EnrollTeam binds a team to a season. Enrolling an already-enrolled team is
// a no-op. Tournaments created before an enrollment change keep their team
// snapshot; enrollment never propagates into existing tournaments.
func EnrollTeam(ctx context.Context, database *appdb.DB, seasonID, teamID string) error {
	if _, err := database.Queries.GetSeason(ctx, seasonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("fetch season: %w", err)
	}
	if _, err := database.Queries.GetTeam(ctx, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("fetch team: %w", err)
	}

	return database.Queries.EnrollTeam(ctx, appdb.EnrollmentParams{
		SeasonID: seasonID,
		TeamID:   teamID,
	})
}

// UnenrollTeam removes the season/team pairing. Removing an absent pairing
// is a no-op.
func UnenrollTeam(ctx context.Context, database *appdb.DB, seasonID, teamID string) error {
	_, err := database.Queries.UnenrollTeam(ctx, appdb.EnrollmentParams{
		SeasonID: seasonID,
		TeamID:   teamID,
	})
	return err
}

// ListEnrolledTeams returns the teams enrolled in a season, ordered by name.
func ListEnrolledTeams(ctx context.Context, q *appdb.Queries, seasonID string) ([]appdb.Team, error) {
	return q.ListEnrolledTeams(ctx, seasonID)
}
