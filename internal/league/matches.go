package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

const (
	MatchScheduled = "scheduled"
	MatchPlayed    = "played"

	EventGoal      = "goal"
	EventCaution   = "caution"
	EventDismissal = "dismissal"

	// UnattributedPlayerID is the sentinel for events recorded without a
	// rostered player (e.g. a goal credited to no one in particular).
	UnattributedPlayerID = "unknown"

	DefaultGroupID = "General"
)

// ScheduleMatchParams carries a new fixture.
type ScheduleMatchParams struct {
	TournamentID string
	MatchdayID   string
	LocalTeamID  string
	AwayTeamID   string
	Date         time.Time
	Field        string
	GroupID      string
}

// EventInput is one ledger entry supplied by a caller.
type EventInput struct {
	Type       string `json:"type"`
	TeamID     string `json:"teamId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Minute     string `json:"minute"`
}

// ScheduleMatch creates a fixture under a matchday. Both teams must belong to
// the tournament's snapshot and must differ. The match starts scheduled with
// an empty ledger and a 0-0 scoreline.
func ScheduleMatch(ctx context.Context, database *appdb.DB, params ScheduleMatchParams) (appdb.Match, error) {
	if params.LocalTeamID == params.AwayTeamID {
		return appdb.Match{}, ErrSameTeam
	}
	if params.GroupID == "" {
		params.GroupID = DefaultGroupID
	}

	matchday, err := database.Queries.GetMatchday(ctx, params.MatchdayID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Match{}, ErrMatchdayNotFound
		}
		return appdb.Match{}, fmt.Errorf("fetch matchday: %w", err)
	}
	if matchday.TournamentID != params.TournamentID {
		return appdb.Match{}, ErrMatchdayNotFound
	}

	for _, teamID := range []string{params.LocalTeamID, params.AwayTeamID} {
		ok, err := database.Queries.IsTournamentTeam(ctx, appdb.TournamentTeamParams{
			TournamentID: params.TournamentID,
			TeamID:       teamID,
		})
		if err != nil {
			return appdb.Match{}, fmt.Errorf("check tournament team: %w", err)
		}
		if !ok {
			return appdb.Match{}, ErrTeamNotInTournament
		}
	}

	return database.Queries.CreateMatch(ctx, appdb.CreateMatchParams{
		TournamentID: params.TournamentID,
		MatchdayID:   params.MatchdayID,
		LocalTeamID:  params.LocalTeamID,
		AwayTeamID:   params.AwayTeamID,
		Date:         params.Date,
		Field:        strings.TrimSpace(params.Field),
		GroupID:      strings.TrimSpace(params.GroupID),
	})
}

func validateEvent(match appdb.Match, event EventInput) error {
	switch event.Type {
	case EventGoal, EventCaution, EventDismissal:
	default:
		return ErrInvalidEventType
	}
	if event.TeamID != match.LocalTeamID && event.TeamID != match.AwayTeamID {
		return fmt.Errorf("event team %s is not playing match %s", event.TeamID, match.ID)
	}
	return nil
}

func normalizeEvent(event EventInput) EventInput {
	if event.PlayerID == "" {
		event.PlayerID = UnattributedPlayerID
	}
	if event.Minute == "" {
		event.Minute = "--"
	}
	return event
}

// RecordEvent appends one event to a match's ledger. A goal event increments
// the scoring team's counter in the same transaction, keeping the ledger and
// the scoreline consistent.
func RecordEvent(ctx context.Context, database *appdb.DB, matchID string, event EventInput) (appdb.MatchEvent, error) {
	match, err := database.Queries.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.MatchEvent{}, ErrMatchNotFound
		}
		return appdb.MatchEvent{}, fmt.Errorf("fetch match: %w", err)
	}
	if match.Status == MatchPlayed {
		return appdb.MatchEvent{}, ErrMatchPlayed
	}
	if err := validateEvent(match, event); err != nil {
		return appdb.MatchEvent{}, err
	}
	event = normalizeEvent(event)

	var created appdb.MatchEvent
	err = database.RunInTx(ctx, func(tx *appdb.DB) error {
		created, err = tx.Queries.CreateMatchEvent(ctx, appdb.CreateMatchEventParams{
			MatchID:    match.ID,
			Type:       event.Type,
			TeamID:     event.TeamID,
			PlayerID:   event.PlayerID,
			PlayerName: event.PlayerName,
			Minute:     event.Minute,
		})
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}

		if event.Type == EventGoal {
			if err := tx.Queries.IncrementMatchGoal(ctx, appdb.IncrementMatchGoalParams{
				ID:     match.ID,
				TeamID: event.TeamID,
			}); err != nil {
				return fmt.Errorf("update score: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return appdb.MatchEvent{}, err
	}
	return created, nil
}

// FinalizeMatch transitions a fixture to played with its final scoreline and
// ledger, as one atomic unit. Finalizing again replaces the ledger instead of
// appending, so a corrected re-finalization never double-counts goals.
func FinalizeMatch(ctx context.Context, database *appdb.DB, matchID string, localGoals, awayGoals int64, events []EventInput) error {
	if localGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("goal counts must not be negative")
	}

	match, err := database.Queries.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("fetch match: %w", err)
	}

	var localGoalEvents, awayGoalEvents int64
	for i, event := range events {
		if err := validateEvent(match, event); err != nil {
			return err
		}
		events[i] = normalizeEvent(event)
		if event.Type == EventGoal {
			if event.TeamID == match.LocalTeamID {
				localGoalEvents++
			} else {
				awayGoalEvents++
			}
		}
	}
	// An empty or partial ledger is accepted (results are often entered
	// without attribution), but a ledger with more goals than the scoreline
	// would diverge from it.
	if localGoalEvents > localGoals || awayGoalEvents > awayGoals {
		return ErrScoreMismatch
	}

	return database.RunInTx(ctx, func(tx *appdb.DB) error {
		if err := tx.Queries.DeleteMatchEvents(ctx, match.ID); err != nil {
			return fmt.Errorf("clear ledger: %w", err)
		}
		for _, event := range events {
			if _, err := tx.Queries.CreateMatchEvent(ctx, appdb.CreateMatchEventParams{
				MatchID:    match.ID,
				Type:       event.Type,
				TeamID:     event.TeamID,
				PlayerID:   event.PlayerID,
				PlayerName: event.PlayerName,
				Minute:     event.Minute,
			}); err != nil {
				return fmt.Errorf("insert event: %w", err)
			}
		}
		if err := tx.Queries.MarkMatchPlayed(ctx, appdb.UpdateMatchScoreParams{
			ID:         match.ID,
			LocalGoals: localGoals,
			AwayGoals:  awayGoals,
		}); err != nil {
			return fmt.Errorf("mark played: %w", err)
		}
		return nil
	})
}

// ListMatches returns fixtures matching the filter, ordered by date.
func ListMatches(ctx context.Context, q *appdb.Queries, filter appdb.MatchFilter) ([]appdb.Match, error) {
	return q.ListMatches(ctx, filter)
}

// ListEvents returns a match's ledger ordered by minute ascending.
// Non-numeric minutes sort as zero, i.e. earliest.
func ListEvents(ctx context.Context, q *appdb.Queries, matchID string) ([]appdb.MatchEvent, error) {
	events, err := q.ListMatchEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return parseMinute(events[i].Minute) < parseMinute(events[j].Minute)
	})
	return events, nil
}

func parseMinute(raw string) int {
	minute, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minute < 0 {
		return 0
	}
	return minute
}
