package league

import (
	"context"
	"errors"
	"testing"
)

func TestCreateTournamentSnapshotsEnrollment(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, _ := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")

	// Teams enrolled after creation never join the snapshot.
	season, err := ActiveSeason(ctx, database.Queries)
	if err != nil {
		t.Fatalf("active season: %v", err)
	}
	seedEnrolledTeam(t, database, season.ID, "Union Sur")

	snapshot, err := database.Queries.ListTournamentTeams(ctx, tournament.ID)
	if err != nil {
		t.Fatalf("list tournament teams: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("snapshot teams = %d, want 2", len(snapshot))
	}
	for _, team := range snapshot {
		if team.Name == "Union Sur" {
			t.Fatalf("late enrollment leaked into snapshot")
		}
	}
}

func TestCreateTournamentUnknownType(t *testing.T) {
	database := newLeagueDB(t)

	season := seedActiveSeason(t, database, "Apertura 2026")
	if _, err := CreateTournament(context.Background(), database, season.ID, "Primera", "swiss"); err == nil {
		t.Fatalf("expected error for unknown tournament type")
	}
}

func TestNextMatchdayNumbersSequentially(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, _ := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")

	for want := int64(1); want <= 3; want++ {
		matchday, err := NextMatchday(ctx, database, tournament.ID)
		if err != nil {
			t.Fatalf("next matchday %d: %v", want, err)
		}
		if matchday.Number != want {
			t.Fatalf("matchday number = %d, want %d", matchday.Number, want)
		}
	}
}

func TestDeleteLastMatchdayOnly(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, _ := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")

	first, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("first matchday: %v", err)
	}
	second, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("second matchday: %v", err)
	}

	if err := DeleteLastMatchday(ctx, database, tournament.ID, first.ID); !errors.Is(err, ErrNotLastMatchday) {
		t.Fatalf("expected ErrNotLastMatchday, got %v", err)
	}
	if err := DeleteLastMatchday(ctx, database, tournament.ID, second.ID); err != nil {
		t.Fatalf("delete last matchday: %v", err)
	}

	// The freed number is reused, keeping numbering gapless.
	replacement, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("replacement matchday: %v", err)
	}
	if replacement.Number != 2 {
		t.Fatalf("replacement number = %d, want 2", replacement.Number)
	}
}

func TestDeleteMatchdayWithMatchesRefused(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")
	matchday, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("next matchday: %v", err)
	}
	seedMatch(t, database, tournament, matchday, teams[0], teams[1])

	err = DeleteLastMatchday(ctx, database, tournament.ID, matchday.ID)
	if !errors.Is(err, ErrMatchdayHasMatches) {
		t.Fatalf("expected ErrMatchdayHasMatches, got %v", err)
	}
}
