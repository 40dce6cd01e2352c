package league

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateSeasonStartsInactive(t *testing.T) {
	database := newLeagueDB(t)

	season := seedSeason(t, database, "Apertura 2026")
	if season.IsActive {
		t.Fatalf("new season should be inactive")
	}

	if _, err := ActiveSeason(context.Background(), database.Queries); !errors.Is(err, ErrNoActiveSeason) {
		t.Fatalf("expected ErrNoActiveSeason, got %v", err)
	}
}

func TestCreateSeasonValidation(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if _, err := CreateSeason(ctx, database, "   ", start, nil); err == nil {
		t.Fatalf("expected error for blank name")
	}

	before := start.AddDate(0, -1, 0)
	if _, err := CreateSeason(ctx, database, "Apertura", start, &before); err == nil {
		t.Fatalf("expected error for end date before start date")
	}
}

func TestActivateSeasonIsExclusive(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	first := seedSeason(t, database, "Apertura 2026")
	second := seedSeason(t, database, "Clausura 2026")

	if err := ActivateSeason(ctx, database, first.ID); err != nil {
		t.Fatalf("activate first: %v", err)
	}
	if err := ActivateSeason(ctx, database, second.ID); err != nil {
		t.Fatalf("activate second: %v", err)
	}

	active, err := ActiveSeason(ctx, database.Queries)
	if err != nil {
		t.Fatalf("active season: %v", err)
	}
	if active.ID != second.ID {
		t.Fatalf("active season = %s, want %s", active.ID, second.ID)
	}

	seasons, err := ListSeasons(ctx, database.Queries)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	activeCount := 0
	for _, s := range seasons {
		if s.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Fatalf("active seasons = %d, want 1", activeCount)
	}
}

func TestActivateSeasonMissing(t *testing.T) {
	database := newLeagueDB(t)

	err := ActivateSeason(context.Background(), database, "no-such-season")
	if !errors.Is(err, ErrSeasonNotFound) {
		t.Fatalf("expected ErrSeasonNotFound, got %v", err)
	}
}
