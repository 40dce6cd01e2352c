package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// CreateSeason registers a new season. Seasons are always created inactive;
// activation is a separate, explicit step.
func CreateSeason(ctx context.Context, database *appdb.DB, name string, startDate time.Time, endDate *time.Time) (appdb.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return appdb.Season{}, fmt.Errorf("season name is required")
	}

	var end sql.NullTime
	if endDate != nil {
		if endDate.Before(startDate) {
			return appdb.Season{}, fmt.Errorf("season end date must not be before start date")
		}
		end = sql.NullTime{Time: *endDate, Valid: true}
	}

	return database.Queries.CreateSeason(ctx, appdb.CreateSeasonParams{
		Name:      name,
		StartDate: startDate,
		EndDate:   end,
	})
}

// ActivateSeason makes the target season the single active one. Every other
// season is deactivated in the same transaction, so a failure partway leaves
// the previous active season untouched.
func ActivateSeason(ctx context.Context, database *appdb.DB, seasonID string) error {
	if _, err := database.Queries.GetSeason(ctx, seasonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("fetch season: %w", err)
	}

	return database.RunInTx(ctx, func(tx *appdb.DB) error {
		if err := tx.Queries.DeactivateAllSeasons(ctx); err != nil {
			return fmt.Errorf("deactivate seasons: %w", err)
		}
		affected, err := tx.Queries.ActivateSeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("activate season: %w", err)
		}
		if affected == 0 {
			return ErrSeasonNotFound
		}
		return nil
	})
}

// ActiveSeason resolves the current season. Callers that require one should
// treat ErrNoActiveSeason as a precondition failure, not a store error.
func ActiveSeason(ctx context.Context, q *appdb.Queries) (appdb.Season, error) {
	season, err := q.GetActiveSeason(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Season{}, ErrNoActiveSeason
		}
		return appdb.Season{}, err
	}
	return season, nil
}

// ListSeasons returns all seasons, newest first.
func ListSeasons(ctx context.Context, q *appdb.Queries) ([]appdb.Season, error) {
	return q.ListSeasons(ctx)
}
