package league

import (
	"context"
	"testing"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// playRound finalizes one fixture between two teams with the given scoreline.
func playRound(t *testing.T, database *appdb.DB, tournament appdb.Tournament, local, away appdb.Team, localGoals, awayGoals int64) {
	t.Helper()
	ctx := context.Background()
	matchday, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("next matchday: %v", err)
	}
	match := seedMatch(t, database, tournament, matchday, local, away)
	finalize(t, database, match.ID, localGoals, awayGoals, nil)
}

func TestCalculateStandingsPoints(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro", "Union Sur")

	playRound(t, database, tournament, teams[0], teams[1], 3, 1) // Norte beats Centro
	playRound(t, database, tournament, teams[1], teams[2], 2, 2) // Centro draws Sur
	playRound(t, database, tournament, teams[2], teams[0], 0, 1) // Norte beats Sur

	table, err := CalculateStandings(ctx, database.Queries, tournament.ID, StandingsOptions{})
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("rows = %d, want 3", len(table))
	}

	if table[0].TeamID != teams[0].ID || table[0].Points != 6 {
		t.Fatalf("leader = %s with %d pts, want %s with 6", table[0].TeamName, table[0].Points, teams[0].Name)
	}
	if table[1].Points != 1 || table[2].Points != 1 {
		t.Fatalf("drawn teams points = %d and %d, want 1 and 1", table[1].Points, table[2].Points)
	}

	// Points handed out across the table always equal 3 per decisive match
	// plus 2 per draw.
	var total int64
	for _, row := range table {
		total += row.Points
	}
	if total != 3+2+3 {
		t.Fatalf("total points = %d, want 8", total)
	}
}

func TestCalculateStandingsTieBreaks(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro", "Union Sur", "Ferro Oeste")

	// Norte and Centro both win once. Norte by a wider margin.
	playRound(t, database, tournament, teams[0], teams[2], 4, 0)
	playRound(t, database, tournament, teams[1], teams[3], 2, 1)

	table, err := CalculateStandings(ctx, database.Queries, tournament.ID, StandingsOptions{})
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if table[0].TeamID != teams[0].ID {
		t.Fatalf("leader = %s, want %s on goal difference", table[0].TeamName, teams[0].Name)
	}
	if table[1].TeamID != teams[1].ID {
		t.Fatalf("runner-up = %s, want %s", table[1].TeamName, teams[1].Name)
	}
}

func TestCalculateStandingsGoalsForTieBreak(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro", "Union Sur", "Ferro Oeste")

	// Same points, same goal difference; Centro scored more.
	playRound(t, database, tournament, teams[0], teams[2], 1, 0)
	playRound(t, database, tournament, teams[1], teams[3], 3, 2)

	table, err := CalculateStandings(ctx, database.Queries, tournament.ID, StandingsOptions{})
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if table[0].TeamID != teams[1].ID {
		t.Fatalf("leader = %s, want %s on goals for", table[0].TeamName, teams[1].Name)
	}
}

func TestCalculateStandingsIdleTeams(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro", "Union Sur")
	playRound(t, database, tournament, teams[0], teams[1], 1, 0)

	public, err := CalculateStandings(ctx, database.Queries, tournament.ID, StandingsOptions{})
	if err != nil {
		t.Fatalf("public standings: %v", err)
	}
	if len(public) != 2 {
		t.Fatalf("public rows = %d, want 2 (idle team omitted)", len(public))
	}

	full, err := CalculateStandings(ctx, database.Queries, tournament.ID, StandingsOptions{IncludeIdle: true})
	if err != nil {
		t.Fatalf("full standings: %v", err)
	}
	if len(full) != 3 {
		t.Fatalf("full rows = %d, want 3", len(full))
	}
	// The idle team outranks the loser on goal difference, so look it up
	// by ID rather than position.
	var idle *TeamRow
	for i := range full {
		if full[i].TeamID == teams[2].ID {
			idle = &full[i]
		}
	}
	if idle == nil {
		t.Fatalf("no row for idle team %s", teams[2].Name)
	}
	if idle.Played != 0 || idle.Points != 0 || idle.GoalsFor != 0 || idle.GoalsAgainst != 0 {
		t.Fatalf("idle row = %+v, want zero-filled row for %s", *idle, teams[2].Name)
	}
}

func TestCalculateStandingsIgnoresScheduled(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")
	matchday, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("next matchday: %v", err)
	}
	seedMatch(t, database, tournament, matchday, teams[0], teams[1])

	table, err := CalculateStandings(ctx, database.Queries, tournament.ID, StandingsOptions{})
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("rows = %d, want 0 before any match is played", len(table))
	}
}
