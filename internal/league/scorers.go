package league

import (
	"context"
	"fmt"
	"sort"
	"time"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// ScorerRow is one player's line in a top-scorers table.
type ScorerRow struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName"`
	Goals      int64  `json:"goals"`
}

// TopScorers folds goal events of a tournament's played matches by player.
// A player's display name and team come from the first event seen, so later
// spelling variants do not split the tally. Unattributed goals are skipped.
func TopScorers(ctx context.Context, q *appdb.Queries, tournamentID string) ([]ScorerRow, error) {
	if _, err := tournamentOrErr(ctx, q, tournamentID); err != nil {
		return nil, err
	}

	events, err := q.ListGoalEventsByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	teams, err := q.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	teamNames := make(map[string]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	tally := make(map[string]*ScorerRow)
	var order []string
	for _, event := range events {
		if event.PlayerID == UnattributedPlayerID {
			continue
		}
		row, ok := tally[event.PlayerID]
		if !ok {
			row = &ScorerRow{
				PlayerID:   event.PlayerID,
				PlayerName: event.PlayerName,
				TeamID:     event.TeamID,
				TeamName:   teamNames[event.TeamID],
			}
			tally[event.PlayerID] = row
			order = append(order, event.PlayerID)
		}
		row.Goals++
	}

	scorers := make([]ScorerRow, 0, len(order))
	for _, playerID := range order {
		scorers = append(scorers, *tally[playerID])
	}
	sort.SliceStable(scorers, func(i, j int) bool {
		return scorers[i].Goals > scorers[j].Goals
	})
	return scorers, nil
}

// PlayerMatchLine is one scoring appearance in a player's history.
type PlayerMatchLine struct {
	MatchID   string    `json:"matchId"`
	Date      time.Time `json:"date"`
	Opponent  string    `json:"opponent"`
	Goals     int64     `json:"goals"`
	Scoreline string    `json:"scoreline"`
}

// PlayerStats summarizes one player's tournament.
type PlayerStats struct {
	PlayerID      string            `json:"playerId"`
	PlayerName    string            `json:"playerName"`
	TeamID        string            `json:"teamId"`
	Goals         int64             `json:"goals"`
	Cautions      int64             `json:"cautions"`
	Dismissals    int64             `json:"dismissals"`
	MatchesPlayed int64             `json:"matchesPlayed"`
	History       []PlayerMatchLine `json:"history"`
}

// StatsForPlayer aggregates a player's ledger entries across a tournament's
// played matches. MatchesPlayed counts matches with any event for the player;
// History lists only matches they scored in, newest first.
func StatsForPlayer(ctx context.Context, q *appdb.Queries, tournamentID, playerID string) (PlayerStats, error) {
	if _, err := tournamentOrErr(ctx, q, tournamentID); err != nil {
		return PlayerStats{}, err
	}

	rows, err := q.ListPlayerEventsByTournament(ctx, appdb.PlayerEventsParams{
		PlayerID:     playerID,
		TournamentID: tournamentID,
	})
	if err != nil {
		return PlayerStats{}, err
	}

	teams, err := q.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		return PlayerStats{}, err
	}
	teamNames := make(map[string]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	stats := PlayerStats{PlayerID: playerID}
	seen := make(map[string]bool)
	goalsByMatch := make(map[string]int64)
	matchByID := make(map[string]appdb.Match)

	for _, row := range rows {
		if stats.PlayerName == "" {
			stats.PlayerName = row.Event.PlayerName
			stats.TeamID = row.Event.TeamID
		}
		if !seen[row.Match.ID] {
			seen[row.Match.ID] = true
			stats.MatchesPlayed++
		}
		switch row.Event.Type {
		case EventGoal:
			stats.Goals++
			goalsByMatch[row.Match.ID]++
			matchByID[row.Match.ID] = row.Match
		case EventCaution:
			stats.Cautions++
		case EventDismissal:
			stats.Dismissals++
		}
	}

	for matchID, goals := range goalsByMatch {
		match := matchByID[matchID]
		opponentID := match.AwayTeamID
		if stats.TeamID == match.AwayTeamID {
			opponentID = match.LocalTeamID
		}
		stats.History = append(stats.History, PlayerMatchLine{
			MatchID:   match.ID,
			Date:      match.Date,
			Opponent:  teamNames[opponentID],
			Goals:     goals,
			Scoreline: fmt.Sprintf("%d-%d", match.LocalGoals, match.AwayGoals),
		})
	}
	sort.SliceStable(stats.History, func(i, j int) bool {
		return stats.History[i].Date.After(stats.History[j].Date)
	})
	return stats, nil
}
