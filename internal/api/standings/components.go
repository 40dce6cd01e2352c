package standings

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/canchalibre/canchalibre/internal/league"
)

func standingsTableComponent(table []league.TeamRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildStandingsTableHTML(table))
		return err
	})
}

func scorersTableComponent(scorers []league.ScorerRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildScorersTableHTML(scorers))
		return err
	})
}

func buildStandingsTableHTML(table []league.TeamRow) string {
	if len(table) == 0 {
		return `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No matches played yet.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<table class="min-w-full text-sm">`)
	builder.WriteString(`<thead><tr class="border-b text-left text-gray-600">` +
		`<th class="px-2 py-1">#</th><th class="px-2 py-1">Team</th>` +
		`<th class="px-2 py-1 text-right">PJ</th><th class="px-2 py-1 text-right">G</th>` +
		`<th class="px-2 py-1 text-right">E</th><th class="px-2 py-1 text-right">P</th>` +
		`<th class="px-2 py-1 text-right">GF</th><th class="px-2 py-1 text-right">GC</th>` +
		`<th class="px-2 py-1 text-right">DG</th><th class="px-2 py-1 text-right">Pts</th>` +
		`</tr></thead><tbody>`)
	for i, row := range table {
		builder.WriteString(fmt.Sprintf(
			`<tr class="border-b" data-team-id="%s">`+
				`<td class="px-2 py-1">%d</td><td class="px-2 py-1">%s</td>`+
				`<td class="px-2 py-1 text-right">%d</td><td class="px-2 py-1 text-right">%d</td>`+
				`<td class="px-2 py-1 text-right">%d</td><td class="px-2 py-1 text-right">%d</td>`+
				`<td class="px-2 py-1 text-right">%d</td><td class="px-2 py-1 text-right">%d</td>`+
				`<td class="px-2 py-1 text-right">%d</td><td class="px-2 py-1 text-right font-semibold">%d</td>`+
				`</tr>`,
			html.EscapeString(row.TeamID),
			i+1,
			html.EscapeString(row.TeamName),
			row.Played, row.Won, row.Drawn, row.Lost,
			row.GoalsFor, row.GoalsAgainst, row.GoalDiff, row.Points,
		))
	}
	builder.WriteString(`</tbody></table>`)
	return builder.String()
}

func buildScorersTableHTML(scorers []league.ScorerRow) string {
	if len(scorers) == 0 {
		return `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No goals scored yet.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<table class="min-w-full text-sm">`)
	builder.WriteString(`<thead><tr class="border-b text-left text-gray-600">` +
		`<th class="px-2 py-1">#</th><th class="px-2 py-1">Player</th>` +
		`<th class="px-2 py-1">Team</th><th class="px-2 py-1 text-right">Goals</th>` +
		`</tr></thead><tbody>`)
	for i, row := range scorers {
		builder.WriteString(fmt.Sprintf(
			`<tr class="border-b" data-player-id="%s">`+
				`<td class="px-2 py-1">%d</td><td class="px-2 py-1">%s</td>`+
				`<td class="px-2 py-1">%s</td><td class="px-2 py-1 text-right font-semibold">%d</td>`+
				`</tr>`,
			html.EscapeString(row.PlayerID),
			i+1,
			html.EscapeString(row.PlayerName),
			html.EscapeString(row.TeamName),
			row.Goals,
		))
	}
	builder.WriteString(`</tbody></table>`)
	return builder.String()
}
