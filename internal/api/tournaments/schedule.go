package tournaments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/league"
)

const roundInterval = 7 * 24 * time.Hour

// generateFixtures builds a round-robin schedule for the tournament snapshot:
// one new matchday per round, rounds spaced a week apart.
func generateFixtures(ctx context.Context, tournamentID string, startDate time.Time) ([]appdb.Match, error) {
	if _, err := database.Queries.GetTournament(ctx, tournamentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, league.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("fetch tournament: %w", err)
	}

	teams, err := database.Queries.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list tournament teams: %w", err)
	}

	pairings, err := league.GenerateRoundRobin(teams)
	if err != nil {
		return nil, err
	}

	matchdays := make(map[int]appdb.Matchday)
	var matches []appdb.Match
	for _, pairing := range pairings {
		matchday, ok := matchdays[pairing.Round]
		if !ok {
			matchday, err = league.NextMatchday(ctx, database, tournamentID)
			if err != nil {
				return nil, err
			}
			matchdays[pairing.Round] = matchday
		}

		match, err := league.ScheduleMatch(ctx, database, league.ScheduleMatchParams{
			TournamentID: tournamentID,
			MatchdayID:   matchday.ID,
			LocalTeamID:  pairing.LocalTeam.ID,
			AwayTeamID:   pairing.AwayTeam.ID,
			Date:         startDate.Add(time.Duration(pairing.Round-1) * roundInterval),
		})
		if err != nil {
			return nil, fmt.Errorf("schedule round %d fixture: %w", pairing.Round, err)
		}
		matches = append(matches, match)
	}

	return matches, nil
}
