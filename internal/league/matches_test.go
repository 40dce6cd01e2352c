package league

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

func scheduledMatch(t *testing.T, database *appdb.DB) (appdb.Tournament, []appdb.Team, appdb.Match) {
	t.Helper()
	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro", "Union Sur")
	matchday, err := NextMatchday(context.Background(), database, tournament.ID)
	if err != nil {
		t.Fatalf("next matchday: %v", err)
	}
	match := seedMatch(t, database, tournament, matchday, teams[0], teams[1])
	return tournament, teams, match
}

func TestScheduleMatchDefaults(t *testing.T) {
	database := newLeagueDB(t)

	_, _, match := scheduledMatch(t, database)

	if match.Status != MatchScheduled {
		t.Fatalf("status = %q, want %q", match.Status, MatchScheduled)
	}
	if match.LocalGoals != 0 || match.AwayGoals != 0 {
		t.Fatalf("new match scoreline = %d-%d, want 0-0", match.LocalGoals, match.AwayGoals)
	}
	if match.GroupID != DefaultGroupID {
		t.Fatalf("group = %q, want %q", match.GroupID, DefaultGroupID)
	}
}

func TestScheduleMatchRejectsSameTeam(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")
	matchday, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("next matchday: %v", err)
	}

	_, err = ScheduleMatch(ctx, database, ScheduleMatchParams{
		TournamentID: tournament.ID,
		MatchdayID:   matchday.ID,
		LocalTeamID:  teams[0].ID,
		AwayTeamID:   teams[0].ID,
		Date:         time.Now(),
	})
	if !errors.Is(err, ErrSameTeam) {
		t.Fatalf("expected ErrSameTeam, got %v", err)
	}
}

func TestScheduleMatchRejectsOutsideSnapshot(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	tournament, teams := seedTournament(t, database, "Atletico Norte", "Deportivo Centro")
	matchday, err := NextMatchday(ctx, database, tournament.ID)
	if err != nil {
		t.Fatalf("next matchday: %v", err)
	}
	outsider := seedTeam(t, database, "Invitados FC")

	_, err = ScheduleMatch(ctx, database, ScheduleMatchParams{
		TournamentID: tournament.ID,
		MatchdayID:   matchday.ID,
		LocalTeamID:  teams[0].ID,
		AwayTeamID:   outsider.ID,
		Date:         time.Now(),
	})
	if !errors.Is(err, ErrTeamNotInTournament) {
		t.Fatalf("expected ErrTeamNotInTournament, got %v", err)
	}
}

func TestRecordGoalUpdatesScoreline(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[0].ID, PlayerName: "J. Perez", Minute: "12",
	}); err != nil {
		t.Fatalf("record local goal: %v", err)
	}
	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[1].ID, PlayerName: "M. Lopez", Minute: "34",
	}); err != nil {
		t.Fatalf("record away goal: %v", err)
	}
	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventCaution, TeamID: teams[1].ID, PlayerName: "M. Lopez", Minute: "40",
	}); err != nil {
		t.Fatalf("record caution: %v", err)
	}

	updated, err := database.Queries.GetMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("fetch match: %v", err)
	}
	if updated.LocalGoals != 1 || updated.AwayGoals != 1 {
		t.Fatalf("scoreline = %d-%d, want 1-1", updated.LocalGoals, updated.AwayGoals)
	}
}

func TestRecordEventValidation(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: "own_goal", TeamID: teams[0].ID,
	}); !errors.Is(err, ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}

	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[2].ID,
	}); err == nil {
		t.Fatalf("expected error for team not in match")
	}

	if _, err := RecordEvent(ctx, database, "no-such-match", EventInput{
		Type: EventGoal, TeamID: teams[0].ID,
	}); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestRecordEventDefaultsUnattributed(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	event, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[0].ID,
	})
	if err != nil {
		t.Fatalf("record event: %v", err)
	}
	if event.PlayerID != UnattributedPlayerID {
		t.Fatalf("player id = %q, want %q", event.PlayerID, UnattributedPlayerID)
	}
	if event.Minute != "--" {
		t.Fatalf("minute = %q, want --", event.Minute)
	}
}

func TestFinalizeMatch(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	finalize(t, database, match.ID, 2, 1, []EventInput{
		{Type: EventGoal, TeamID: teams[0].ID, PlayerID: "p1", PlayerName: "J. Perez", Minute: "12"},
		{Type: EventGoal, TeamID: teams[0].ID, PlayerID: "p1", PlayerName: "J. Perez", Minute: "55"},
		{Type: EventGoal, TeamID: teams[1].ID, PlayerID: "p2", PlayerName: "M. Lopez", Minute: "78"},
	})

	played, err := database.Queries.GetMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("fetch match: %v", err)
	}
	if played.Status != MatchPlayed {
		t.Fatalf("status = %q, want %q", played.Status, MatchPlayed)
	}
	if played.LocalGoals != 2 || played.AwayGoals != 1 {
		t.Fatalf("scoreline = %d-%d, want 2-1", played.LocalGoals, played.AwayGoals)
	}

	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[0].ID,
	}); !errors.Is(err, ErrMatchPlayed) {
		t.Fatalf("expected ErrMatchPlayed, got %v", err)
	}
}

func TestFinalizeMatchReplacesLedger(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	finalize(t, database, match.ID, 1, 0, []EventInput{
		{Type: EventGoal, TeamID: teams[0].ID, PlayerID: "p1", PlayerName: "J. Perez", Minute: "12"},
	})
	// Correcting a result re-finalizes; the old ledger must not accumulate.
	finalize(t, database, match.ID, 2, 0, []EventInput{
		{Type: EventGoal, TeamID: teams[0].ID, PlayerID: "p1", PlayerName: "J. Perez", Minute: "12"},
		{Type: EventGoal, TeamID: teams[0].ID, PlayerID: "p3", PlayerName: "A. Gomez", Minute: "80"},
	})

	events, err := ListEvents(ctx, database.Queries, match.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(events))
	}

	played, err := database.Queries.GetMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("fetch match: %v", err)
	}
	if played.LocalGoals != 2 || played.AwayGoals != 0 {
		t.Fatalf("scoreline = %d-%d, want 2-0", played.LocalGoals, played.AwayGoals)
	}
}

func TestFinalizeMatchScoreMismatch(t *testing.T) {
	database := newLeagueDB(t)

	_, teams, match := scheduledMatch(t, database)

	err := FinalizeMatch(context.Background(), database, match.ID, 1, 0, []EventInput{
		{Type: EventGoal, TeamID: teams[0].ID, Minute: "12"},
		{Type: EventGoal, TeamID: teams[0].ID, Minute: "30"},
	})
	if !errors.Is(err, ErrScoreMismatch) {
		t.Fatalf("expected ErrScoreMismatch, got %v", err)
	}
}

func TestListEventsSortsByMinute(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	minutes := []string{"78", "--", "12", "45+2"}
	for _, minute := range minutes {
		if _, err := RecordEvent(ctx, database, match.ID, EventInput{
			Type: EventCaution, TeamID: teams[0].ID, Minute: minute,
		}); err != nil {
			t.Fatalf("record event at %q: %v", minute, err)
		}
	}

	events, err := ListEvents(ctx, database.Queries, match.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}

	got := make([]string, 0, len(events))
	for _, e := range events {
		got = append(got, e.Minute)
	}
	// Non-numeric minutes sort first as zero, insertion order preserved.
	want := []string{"--", "45+2", "12", "78"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event order = %v, want %v", got, want)
		}
	}
}

func TestListEventsKeepsLedgerOrderForEqualMinutes(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	// Bursts land within the same wall-clock second; order must still be
	// the insertion order.
	players := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}
	for _, playerID := range players {
		if _, err := RecordEvent(ctx, database, match.ID, EventInput{
			Type: EventCaution, TeamID: teams[0].ID, PlayerID: playerID, Minute: "45",
		}); err != nil {
			t.Fatalf("record event for %s: %v", playerID, err)
		}
	}

	events, err := ListEvents(ctx, database.Queries, match.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != len(players) {
		t.Fatalf("events = %d, want %d", len(events), len(players))
	}
	for i, e := range events {
		if e.PlayerID != players[i] {
			t.Fatalf("event %d player = %s, want %s", i, e.PlayerID, players[i])
		}
	}
}

func TestRecordGoalIncrementsRelatively(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	_, teams, match := scheduledMatch(t, database)

	// Move the scoreline out from under the ledger; the goal event must
	// add to the current value, not overwrite it with a stale total.
	if err := database.Queries.IncrementMatchGoal(ctx, appdb.IncrementMatchGoalParams{
		ID:     match.ID,
		TeamID: teams[0].ID,
	}); err != nil {
		t.Fatalf("increment goal: %v", err)
	}

	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[0].ID, PlayerID: "p1", PlayerName: "J. Perez", Minute: "12",
	}); err != nil {
		t.Fatalf("record goal: %v", err)
	}
	if _, err := RecordEvent(ctx, database, match.ID, EventInput{
		Type: EventGoal, TeamID: teams[1].ID, PlayerID: "p2", PlayerName: "M. Lopez", Minute: "30",
	}); err != nil {
		t.Fatalf("record goal: %v", err)
	}

	updated, err := database.Queries.GetMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if updated.LocalGoals != 2 || updated.AwayGoals != 1 {
		t.Fatalf("score = %d-%d, want 2-1", updated.LocalGoals, updated.AwayGoals)
	}
}

func TestRecordGoalConcurrentCountsEveryGoal(t *testing.T) {
	database := newLeagueDB(t)
	ctx := context.Background()

	// One connection serializes statements without serializing callers,
	// so interleaved goal events still contend on the counter.
	database.SetMaxOpenConns(1)

	_, teams, match := scheduledMatch(t, database)

	const goals = 8
	var g errgroup.Group
	for i := 0; i < goals; i++ {
		g.Go(func() error {
			_, err := RecordEvent(ctx, database, match.ID, EventInput{
				Type: EventGoal, TeamID: teams[0].ID, Minute: "50",
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("record goal: %v", err)
	}

	updated, err := database.Queries.GetMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if updated.LocalGoals != goals {
		t.Fatalf("local goals = %d, want %d", updated.LocalGoals, goals)
	}
}
