package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

const (
	TournamentRoundRobin = "round_robin"
	TournamentGroups     = "groups"
	TournamentKnockout   = "knockout"
)

// TournamentTypeAllowed reports whether the competition format is known. The
// type is informational; it does not change scheduling behavior.
func TournamentTypeAllowed(t string) bool {
	switch t {
	case TournamentRoundRobin, TournamentGroups, TournamentKnockout:
		return true
	default:
		return false
	}
}

func tournamentOrErr(ctx context.Context, q *appdb.Queries, tournamentID string) (appdb.Tournament, error) {
	tournament, err := q.GetTournament(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Tournament{}, ErrTournamentNotFound
		}
		return appdb.Tournament{}, fmt.Errorf("fetch tournament: %w", err)
	}
	return tournament, nil
}

// CreateTournament creates a tournament under a season and snapshots the
// season's current enrollment as the tournament's team list. The snapshot is
// immutable: later enrollment changes do not alter it.
func CreateTournament(ctx context.Context, database *appdb.DB, seasonID, name, tournamentType string) (appdb.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return appdb.Tournament{}, fmt.Errorf("tournament name is required")
	}
	if !TournamentTypeAllowed(tournamentType) {
		return appdb.Tournament{}, fmt.Errorf("tournament type must be round_robin, groups, or knockout")
	}

	if _, err := database.Queries.GetSeason(ctx, seasonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Tournament{}, ErrSeasonNotFound
		}
		return appdb.Tournament{}, fmt.Errorf("fetch season: %w", err)
	}

	enrolled, err := database.Queries.ListEnrolledTeams(ctx, seasonID)
	if err != nil {
		return appdb.Tournament{}, fmt.Errorf("list enrolled teams: %w", err)
	}

	var tournament appdb.Tournament
	err = database.RunInTx(ctx, func(tx *appdb.DB) error {
		created, err := tx.Queries.CreateTournament(ctx, appdb.CreateTournamentParams{
			SeasonID: seasonID,
			Name:     name,
			Type:     tournamentType,
		})
		if err != nil {
			return fmt.Errorf("create tournament: %w", err)
		}
		for _, team := range enrolled {
			if err := tx.Queries.AddTournamentTeam(ctx, appdb.TournamentTeamParams{
				TournamentID: created.ID,
				TeamID:       team.ID,
			}); err != nil {
				return fmt.Errorf("snapshot team %s: %w", team.ID, err)
			}
		}
		tournament = created
		return nil
	})
	if err != nil {
		return appdb.Tournament{}, err
	}
	return tournament, nil
}

// NextMatchday appends the next sequentially numbered matchday. The count and
// insert run in one transaction and the (tournament, number) pair is unique,
// so concurrent callers cannot produce duplicate numbers; one of them fails.
func NextMatchday(ctx context.Context, database *appdb.DB, tournamentID string) (appdb.Matchday, error) {
	if _, err := database.Queries.GetTournament(ctx, tournamentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Matchday{}, ErrTournamentNotFound
		}
		return appdb.Matchday{}, fmt.Errorf("fetch tournament: %w", err)
	}

	var matchday appdb.Matchday
	err := database.RunInTx(ctx, func(tx *appdb.DB) error {
		count, err := tx.Queries.CountMatchdays(ctx, tournamentID)
		if err != nil {
			return fmt.Errorf("count matchdays: %w", err)
		}
		created, err := tx.Queries.CreateMatchday(ctx, appdb.CreateMatchdayParams{
			TournamentID: tournamentID,
			Number:       count + 1,
		})
		if err != nil {
			return fmt.Errorf("create matchday: %w", err)
		}
		matchday = created
		return nil
	})
	if err != nil {
		return appdb.Matchday{}, err
	}
	return matchday, nil
}

// DeleteLastMatchday removes the matchday holding the current maximum number.
// Any other matchday is rejected so numbers stay gapless, and a matchday with
// matches already scheduled under it cannot be removed.
func DeleteLastMatchday(ctx context.Context, database *appdb.DB, tournamentID, matchdayID string) error {
	matchday, err := database.Queries.GetMatchday(ctx, matchdayID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchdayNotFound
		}
		return fmt.Errorf("fetch matchday: %w", err)
	}
	if matchday.TournamentID != tournamentID {
		return ErrMatchdayNotFound
	}

	return database.RunInTx(ctx, func(tx *appdb.DB) error {
		last, err := tx.Queries.GetLastMatchday(ctx, tournamentID)
		if err != nil {
			return fmt.Errorf("fetch last matchday: %w", err)
		}
		if last.ID != matchday.ID {
			return ErrNotLastMatchday
		}

		matchCount, err := tx.Queries.CountMatchesByMatchday(ctx, matchday.ID)
		if err != nil {
			return fmt.Errorf("count matchday matches: %w", err)
		}
		if matchCount > 0 {
			return ErrMatchdayHasMatches
		}

		affected, err := tx.Queries.DeleteMatchday(ctx, matchday.ID)
		if err != nil {
			return fmt.Errorf("delete matchday: %w", err)
		}
		if affected == 0 {
			return ErrMatchdayNotFound
		}
		return nil
	})
}

// ListMatchdays returns the tournament's matchdays in ascending number order.
func ListMatchdays(ctx context.Context, q *appdb.Queries, tournamentID string) ([]appdb.Matchday, error) {
	return q.ListMatchdays(ctx, tournamentID)
}
