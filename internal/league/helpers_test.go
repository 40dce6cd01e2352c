package league

// NOTE: Tests cannot use t.Parallel() due to shared SQLite files.

import (
	"context"
	"testing"
	"time"

	appdb "github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/testutil"
)

func seedSeason(t *testing.T, database *appdb.DB, name string) appdb.Season {
	t.Helper()
	season, err := CreateSeason(context.Background(), database, name, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("create season %q: %v", name, err)
	}
	return season
}

func seedActiveSeason(t *testing.T, database *appdb.DB, name string) appdb.Season {
	t.Helper()
	season := seedSeason(t, database, name)
	if err := ActivateSeason(context.Background(), database, season.ID); err != nil {
		t.Fatalf("activate season %q: %v", name, err)
	}
	return season
}

func seedTeam(t *testing.T, database *appdb.DB, name string) appdb.Team {
	t.Helper()
	team, err := database.Queries.CreateTeam(context.Background(), appdb.CreateTeamParams{Name: name})
	if err != nil {
		t.Fatalf("create team %q: %v", name, err)
	}
	return team
}

func seedEnrolledTeam(t *testing.T, database *appdb.DB, seasonID, name string) appdb.Team {
	t.Helper()
	team := seedTeam(t, database, name)
	if err := EnrollTeam(context.Background(), database, seasonID, team.ID); err != nil {
		t.Fatalf("enroll team %q: %v", name, err)
	}
	return team
}

// seedTournament builds a season with the given team names enrolled and a
// tournament snapshotting them. Returns the tournament and teams in order.
func seedTournament(t *testing.T, database *appdb.DB, teamNames ...string) (appdb.Tournament, []appdb.Team) {
	t.Helper()
	season := seedActiveSeason(t, database, "Apertura 2026")
	teams := make([]appdb.Team, 0, len(teamNames))
	for _, name := range teamNames {
		teams = append(teams, seedEnrolledTeam(t, database, season.ID, name))
	}
	tournament, err := CreateTournament(context.Background(), database, season.ID, "Primera", TournamentRoundRobin)
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}
	return tournament, teams
}

func seedMatch(t *testing.T, database *appdb.DB, tournament appdb.Tournament, matchday appdb.Matchday, local, away appdb.Team) appdb.Match {
	t.Helper()
	match, err := ScheduleMatch(context.Background(), database, ScheduleMatchParams{
		TournamentID: tournament.ID,
		MatchdayID:   matchday.ID,
		LocalTeamID:  local.ID,
		AwayTeamID:   away.ID,
		Date:         time.Date(2026, 3, 7, 16, 0, 0, 0, time.UTC),
		Field:        "Cancha 1",
	})
	if err != nil {
		t.Fatalf("schedule match %s vs %s: %v", local.Name, away.Name, err)
	}
	return match
}

// finalize is a shorthand for FinalizeMatch with an already-consistent ledger.
func finalize(t *testing.T, database *appdb.DB, matchID string, localGoals, awayGoals int64, events []EventInput) {
	t.Helper()
	if err := FinalizeMatch(context.Background(), database, matchID, localGoals, awayGoals, events); err != nil {
		t.Fatalf("finalize match %s: %v", matchID, err)
	}
}

func newLeagueDB(t *testing.T) *appdb.DB {
	t.Helper()
	return testutil.NewTestDB(t)
}
