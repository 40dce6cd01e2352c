package league

import (
	"context"
	"errors"
	"testing"
)

func TestEnrollTeamIsIdempotent(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	season := seedSeason(t, database, "Apertura 2026")
	team := seedTeam(t, database, "Deportivo Centro")

	for i := 0; i < 3; i++ {
		if err := EnrollTeam(ctx, database, season.ID, team.ID); err != nil {
			t.Fatalf("enroll attempt %d: %v", i+1, err)
		}
	}

	enrolled, err := ListEnrolledTeams(ctx, database.Queries, season.ID)
	if err != nil {
		t.Fatalf("list enrolled: %v", err)
	}
	if len(enrolled) != 1 {
		t.Fatalf("enrolled teams = %d, want 1", len(enrolled))
	}
}

func TestEnrollTeamUnknownReferences(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	season := seedSeason(t, database, "Apertura 2026")
	team := seedTeam(t, database, "Deportivo Centro")

	if err := EnrollTeam(ctx, database, "no-such-season", team.ID); !errors.Is(err, ErrSeasonNotFound) {
		t.Fatalf("expected ErrSeasonNotFound, got %v", err)
	}
	if err := EnrollTeam(ctx, database, season.ID, "no-such-team"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestUnenrollTeamIsIdempotent(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	season := seedSeason(t, database, "Apertura 2026")
	team := seedEnrolledTeam(t, database, season.ID, "Deportivo Centro")

	if err := UnenrollTeam(ctx, database, season.ID, team.ID); err != nil {
		t.Fatalf("unenroll: %v", err)
	}
	if err := UnenrollTeam(ctx, database, season.ID, team.ID); err != nil {
		t.Fatalf("repeat unenroll: %v", err)
	}

	enrolled, err := ListEnrolledTeams(ctx, database.Queries, season.ID)
	if err != nil {
		t.Fatalf("list enrolled: %v", err)
	}
	if len(enrolled) != 0 {
		t.Fatalf("enrolled teams = %d, want 0", len(enrolled))
	}
}
