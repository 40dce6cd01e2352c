package league

import (
	"context"
	"sort"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// TeamRow is one team's line in a standings table.
type TeamRow struct {
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	Played       int64  `json:"played"`
	Won          int64  `json:"won"`
	Drawn        int64  `json:"drawn"`
	Lost         int64  `json:"lost"`
	GoalsFor     int64  `json:"goalsFor"`
	GoalsAgainst int64  `json:"goalsAgainst"`
	GoalDiff     int64  `json:"goalDiff"`
	Points       int64  `json:"points"`
}

// StandingsOptions controls which teams appear in the table.
type StandingsOptions struct {
	// IncludeIdle adds zero-filled rows for tournament teams that have not
	// played yet. The public table omits them.
	IncludeIdle bool
}

// CalculateStandings folds a tournament's played matches into a table.
// Ranking is points, then goal difference, then goals for, all descending;
// ties beyond that keep team-name order.
func CalculateStandings(ctx context.Context, q *appdb.Queries, tournamentID string, opts StandingsOptions) ([]TeamRow, error) {
	if _, err := tournamentOrErr(ctx, q, tournamentID); err != nil {
		return nil, err
	}

	teams, err := q.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(teams))
	for _, team := range teams {
		names[team.ID] = team.Name
	}

	matches, err := q.ListMatches(ctx, appdb.MatchFilter{
		TournamentID: tournamentID,
		Status:       MatchPlayed,
	})
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*TeamRow)
	rowFor := func(teamID string) *TeamRow {
		if row, ok := rows[teamID]; ok {
			return row
		}
		row := &TeamRow{TeamID: teamID, TeamName: names[teamID]}
		rows[teamID] = row
		return row
	}

	for _, match := range matches {
		local := rowFor(match.LocalTeamID)
		away := rowFor(match.AwayTeamID)

		local.Played++
		away.Played++
		local.GoalsFor += match.LocalGoals
		local.GoalsAgainst += match.AwayGoals
		away.GoalsFor += match.AwayGoals
		away.GoalsAgainst += match.LocalGoals

		switch {
		case match.LocalGoals > match.AwayGoals:
			local.Won++
			local.Points += pointsWin
			away.Lost++
		case match.LocalGoals < match.AwayGoals:
			away.Won++
			away.Points += pointsWin
			local.Lost++
		default:
			local.Drawn++
			away.Drawn++
			local.Points += pointsDraw
			away.Points += pointsDraw
		}
	}

	if opts.IncludeIdle {
		for _, team := range teams {
			rowFor(team.ID)
		}
	}

	table := make([]TeamRow, 0, len(rows))
	for _, row := range rows {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
		table = append(table, *row)
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamName < b.TeamName
	})
	return table, nil
}
