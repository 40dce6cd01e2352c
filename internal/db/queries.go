package db

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so queries can run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

func newID() string {
	return uuid.New().String()
}

// --- seasons ---

const seasonColumns = `id, name, start_date, end_date, is_active, created_at`

func scanSeason(row interface{ Scan(...any) error }) (Season, error) {
	var s Season
	err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt)
	return s, err
}

type CreateSeasonParams struct {
	Name      string
	StartDate time.Time
	EndDate   sql.NullTime
}

func (q *Queries) CreateSeason(ctx context.Context, arg CreateSeasonParams) (Season, error) {
	id := newID()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO seasons (id, name, start_date, end_date, is_active)
		VALUES (?, ?, ?, ?, 0)
		RETURNING `+seasonColumns,
		id, arg.Name, arg.StartDate, arg.EndDate,
	)
	return scanSeason(row)
}

func (q *Queries) GetSeason(ctx context.Context, id string) (Season, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+seasonColumns+` FROM seasons WHERE id = ?`, id)
	return scanSeason(row)
}

func (q *Queries) GetActiveSeason(ctx context.Context) (Season, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+seasonColumns+` FROM seasons WHERE is_active = 1`)
	return scanSeason(row)
}

func (q *Queries) ListSeasons(ctx context.Context) ([]Season, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+seasonColumns+` FROM seasons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []Season
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}

func (q *Queries) DeactivateAllSeasons(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `UPDATE seasons SET is_active = 0 WHERE is_active = 1`)
	return err
}

func (q *Queries) ActivateSeason(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, `UPDATE seasons SET is_active = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- teams ---

const teamColumns = `id, name, logo_url, contact_phone, created_at`

func scanTeam(row interface{ Scan(...any) error }) (Team, error) {
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.LogoURL, &t.ContactPhone, &t.CreatedAt)
	return t, err
}

func collectTeams(rows *sql.Rows) ([]Team, error) {
	defer rows.Close()
	var teams []Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

type CreateTeamParams struct {
	Name         string
	LogoURL      string
	ContactPhone string
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO teams (id, name, logo_url, contact_phone)
		VALUES (?, ?, ?, ?)
		RETURNING `+teamColumns,
		newID(), arg.Name, arg.LogoURL, arg.ContactPhone,
	)
	return scanTeam(row)
}

func (q *Queries) GetTeam(ctx context.Context, id string) (Team, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)
	return scanTeam(row)
}

func (q *Queries) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return collectTeams(rows)
}

func (q *Queries) CountTeams(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

// --- enrollments ---

type EnrollmentParams struct {
	SeasonID string
	TeamID   string
}

// EnrollTeam is idempotent: re-enrolling an enrolled team changes nothing.
func (q *Queries) EnrollTeam(ctx context.Context, arg EnrollmentParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO enrollments (season_id, team_id)
		VALUES (?, ?)`,
		arg.SeasonID, arg.TeamID,
	)
	return err
}

func (q *Queries) UnenrollTeam(ctx context.Context, arg EnrollmentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx,
		`DELETE FROM enrollments WHERE season_id = ? AND team_id = ?`,
		arg.SeasonID, arg.TeamID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) ListEnrolledTeams(ctx context.Context, seasonID string) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.logo_url, t.contact_phone, t.created_at
		FROM teams t
		JOIN enrollments e ON e.team_id = t.id
		WHERE e.season_id = ?
		ORDER BY t.name ASC`,
		seasonID,
	)
	if err != nil {
		return nil, err
	}
	return collectTeams(rows)
}

func (q *Queries) IsTeamEnrolled(ctx context.Context, arg EnrollmentParams) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE season_id = ? AND team_id = ?`,
		arg.SeasonID, arg.TeamID,
	).Scan(&count)
	return count > 0, err
}

// --- tournaments ---

const tournamentColumns = `id, season_id, name, type, created_at`

func scanTournament(row interface{ Scan(...any) error }) (Tournament, error) {
	var t Tournament
	err := row.Scan(&t.ID, &t.SeasonID, &t.Name, &t.Type, &t.CreatedAt)
	return t, err
}

type CreateTournamentParams struct {
	SeasonID string
	Name     string
	Type     string
}

func (q *Queries) CreateTournament(ctx context.Context, arg CreateTournamentParams) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO tournaments (id, season_id, name, type)
		VALUES (?, ?, ?, ?)
		RETURNING `+tournamentColumns,
		newID(), arg.SeasonID, arg.Name, arg.Type,
	)
	return scanTournament(row)
}

func (q *Queries) GetTournament(ctx context.Context, id string) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+tournamentColumns+` FROM tournaments WHERE id = ?`, id)
	return scanTournament(row)
}

func (q *Queries) ListTournamentsBySeason(ctx context.Context, seasonID string) ([]Tournament, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+tournamentColumns+` FROM tournaments WHERE season_id = ? ORDER BY created_at DESC`,
		seasonID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tournaments []Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

type TournamentTeamParams struct {
	TournamentID string
	TeamID       string
}

func (q *Queries) AddTournamentTeam(ctx context.Context, arg TournamentTeamParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO tournament_teams (tournament_id, team_id) VALUES (?, ?)`,
		arg.TournamentID, arg.TeamID,
	)
	return err
}

func (q *Queries) ListTournamentTeams(ctx context.Context, tournamentID string) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.logo_url, t.contact_phone, t.created_at
		FROM teams t
		JOIN tournament_teams tt ON tt.team_id = t.id
		WHERE tt.tournament_id = ?
		ORDER BY t.name ASC`,
		tournamentID,
	)
	if err != nil {
		return nil, err
	}
	return collectTeams(rows)
}

func (q *Queries) IsTournamentTeam(ctx context.Context, arg TournamentTeamParams) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tournament_teams WHERE tournament_id = ? AND team_id = ?`,
		arg.TournamentID, arg.TeamID,
	).Scan(&count)
	return count > 0, err
}

// --- matchdays ---

const matchdayColumns = `id, tournament_id, number, created_at`

func scanMatchday(row interface{ Scan(...any) error }) (Matchday, error) {
	var m Matchday
	err := row.Scan(&m.ID, &m.TournamentID, &m.Number, &m.CreatedAt)
	return m, err
}

func (q *Queries) CountMatchdays(ctx context.Context, tournamentID string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matchdays WHERE tournament_id = ?`, tournamentID,
	).Scan(&count)
	return count, err
}

type CreateMatchdayParams struct {
	TournamentID string
	Number       int64
}

func (q *Queries) CreateMatchday(ctx context.Context, arg CreateMatchdayParams) (Matchday, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO matchdays (id, tournament_id, number)
		VALUES (?, ?, ?)
		RETURNING `+matchdayColumns,
		newID(), arg.TournamentID, arg.Number,
	)
	return scanMatchday(row)
}

func (q *Queries) GetMatchday(ctx context.Context, id string) (Matchday, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+matchdayColumns+` FROM matchdays WHERE id = ?`, id)
	return scanMatchday(row)
}

func (q *Queries) ListMatchdays(ctx context.Context, tournamentID string) ([]Matchday, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+matchdayColumns+` FROM matchdays WHERE tournament_id = ? ORDER BY number ASC`,
		tournamentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matchdays []Matchday
	for rows.Next() {
		m, err := scanMatchday(rows)
		if err != nil {
			return nil, err
		}
		matchdays = append(matchdays, m)
	}
	return matchdays, rows.Err()
}

func (q *Queries) GetLastMatchday(ctx context.Context, tournamentID string) (Matchday, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+matchdayColumns+` FROM matchdays
		WHERE tournament_id = ?
		ORDER BY number DESC
		LIMIT 1`,
		tournamentID,
	)
	return scanMatchday(row)
}

func (q *Queries) DeleteMatchday(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, `DELETE FROM matchdays WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) CountMatchesByMatchday(ctx context.Context, matchdayID string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE matchday_id = ?`, matchdayID,
	).Scan(&count)
	return count, err
}

// --- matches ---

const matchColumns = `id, tournament_id, matchday_id, local_team_id, away_team_id,
	date, field, group_id, status, local_goals, away_goals, created_at, updated_at`

func scanMatch(row interface{ Scan(...any) error }) (Match, error) {
	var m Match
	err := row.Scan(
		&m.ID, &m.TournamentID, &m.MatchdayID, &m.LocalTeamID, &m.AwayTeamID,
		&m.Date, &m.Field, &m.GroupID, &m.Status, &m.LocalGoals, &m.AwayGoals,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func collectMatches(rows *sql.Rows) ([]Match, error) {
	defer rows.Close()
	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

type CreateMatchParams struct {
	TournamentID string
	MatchdayID   string
	LocalTeamID  string
	AwayTeamID   string
	Date         time.Time
	Field        string
	GroupID      string
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO matches (id, tournament_id, matchday_id, local_team_id, away_team_id,
			date, field, group_id, status, local_goals, away_goals)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'scheduled', 0, 0)
		RETURNING `+matchColumns,
		newID(), arg.TournamentID, arg.MatchdayID, arg.LocalTeamID, arg.AwayTeamID,
		arg.Date, arg.Field, arg.GroupID,
	)
	return scanMatch(row)
}

func (q *Queries) GetMatch(ctx context.Context, id string) (Match, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	return scanMatch(row)
}

// MatchFilter narrows ListMatches; empty fields match everything.
type MatchFilter struct {
	TournamentID string
	MatchdayID   string
	Status       string
}

func (q *Queries) ListMatches(ctx context.Context, filter MatchFilter) ([]Match, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.TournamentID != "" {
		conditions = append(conditions, "tournament_id = ?")
		args = append(args, filter.TournamentID)
	}
	if filter.MatchdayID != "" {
		conditions = append(conditions, "matchday_id = ?")
		args = append(args, filter.MatchdayID)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}

	query := `SELECT ` + matchColumns + ` FROM matches`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

type UpdateMatchScoreParams struct {
	ID         string
	LocalGoals int64
	AwayGoals  int64
}

type IncrementMatchGoalParams struct {
	ID     string
	TeamID string
}

// IncrementMatchGoal adds one goal to whichever side the team plays on.
// The relative update keeps concurrent goal events from losing counts.
func (q *Queries) IncrementMatchGoal(ctx context.Context, arg IncrementMatchGoalParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE matches
		SET local_goals = local_goals + (local_team_id = ?),
			away_goals = away_goals + (away_team_id = ?),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		arg.TeamID, arg.TeamID, arg.ID,
	)
	return err
}

func (q *Queries) MarkMatchPlayed(ctx context.Context, arg UpdateMatchScoreParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE matches
		SET local_goals = ?, away_goals = ?, status = 'played', updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		arg.LocalGoals, arg.AwayGoals, arg.ID,
	)
	return err
}

func (q *Queries) CountMatchesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE status = ?`, status,
	).Scan(&count)
	return count, err
}

func (q *Queries) ListMatchesStartingBetween(ctx context.Context, start, end time.Time) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+matchColumns+` FROM matches
		WHERE status = 'scheduled' AND date >= ? AND date < ?
		ORDER BY date ASC`,
		start, end,
	)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

// --- match events ---

const eventColumns = `id, match_id, type, team_id, player_id, player_name, minute, created_at`

func scanEvent(row interface{ Scan(...any) error }) (MatchEvent, error) {
	var e MatchEvent
	err := row.Scan(&e.ID, &e.MatchID, &e.Type, &e.TeamID, &e.PlayerID, &e.PlayerName, &e.Minute, &e.CreatedAt)
	return e, err
}

type CreateMatchEventParams struct {
	MatchID    string
	Type       string
	TeamID     string
	PlayerID   string
	PlayerName string
	Minute     string
}

func (q *Queries) CreateMatchEvent(ctx context.Context, arg CreateMatchEventParams) (MatchEvent, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO match_events (id, match_id, type, team_id, player_id, player_name, minute)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+eventColumns,
		newID(), arg.MatchID, arg.Type, arg.TeamID, arg.PlayerID, arg.PlayerName, arg.Minute,
	)
	return scanEvent(row)
}

func (q *Queries) ListMatchEvents(ctx context.Context, matchID string) ([]MatchEvent, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM match_events WHERE match_id = ? ORDER BY rowid ASC`,
		matchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []MatchEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (q *Queries) DeleteMatchEvents(ctx context.Context, matchID string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM match_events WHERE match_id = ?`, matchID)
	return err
}

// ListGoalEventsByTournament returns goal events of played matches only,
// in insertion order so first-seen attribution is deterministic.
func (q *Queries) ListGoalEventsByTournament(ctx context.Context, tournamentID string) ([]MatchEvent, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT e.id, e.match_id, e.type, e.team_id, e.player_id, e.player_name, e.minute, e.created_at
		FROM match_events e
		JOIN matches m ON m.id = e.match_id
		WHERE m.tournament_id = ? AND m.status = 'played' AND e.type = 'goal'
		ORDER BY e.rowid ASC`,
		tournamentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []MatchEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type PlayerEventsParams struct {
	PlayerID     string
	TournamentID string
}

// ListPlayerEventsByTournament returns every ledger event for a player in a
// tournament's played matches, paired with the owning match.
func (q *Queries) ListPlayerEventsByTournament(ctx context.Context, arg PlayerEventsParams) ([]PlayerEventRow, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT e.id, e.match_id, e.type, e.team_id, e.player_id, e.player_name, e.minute, e.created_at,
			m.id, m.tournament_id, m.matchday_id, m.local_team_id, m.away_team_id,
			m.date, m.field, m.group_id, m.status, m.local_goals, m.away_goals, m.created_at, m.updated_at
		FROM match_events e
		JOIN matches m ON m.id = e.match_id
		WHERE e.player_id = ? AND m.tournament_id = ? AND m.status = 'played'
		ORDER BY e.rowid ASC`,
		arg.PlayerID, arg.TournamentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []PlayerEventRow
	for rows.Next() {
		var r PlayerEventRow
		err := rows.Scan(
			&r.Event.ID, &r.Event.MatchID, &r.Event.Type, &r.Event.TeamID,
			&r.Event.PlayerID, &r.Event.PlayerName, &r.Event.Minute, &r.Event.CreatedAt,
			&r.Match.ID, &r.Match.TournamentID, &r.Match.MatchdayID,
			&r.Match.LocalTeamID, &r.Match.AwayTeamID, &r.Match.Date, &r.Match.Field,
			&r.Match.GroupID, &r.Match.Status, &r.Match.LocalGoals, &r.Match.AwayGoals,
			&r.Match.CreatedAt, &r.Match.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// --- players ---

const playerColumns = `id, team_id, season_id, full_name, number, position, photo_url, created_at`

func scanPlayer(row interface{ Scan(...any) error }) (Player, error) {
	var p Player
	err := row.Scan(&p.ID, &p.TeamID, &p.SeasonID, &p.FullName, &p.Number, &p.Position, &p.PhotoURL, &p.CreatedAt)
	return p, err
}

type CreatePlayerParams struct {
	TeamID   string
	SeasonID string
	FullName string
	Number   int64
	Position string
	PhotoURL string
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO players (id, team_id, season_id, full_name, number, position, photo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+playerColumns,
		newID(), arg.TeamID, arg.SeasonID, arg.FullName, arg.Number, arg.Position, arg.PhotoURL,
	)
	return scanPlayer(row)
}

func (q *Queries) GetPlayer(ctx context.Context, id string) (Player, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ?`, id)
	return scanPlayer(row)
}

type ListPlayersParams struct {
	SeasonID string
	TeamID   string
}

func (q *Queries) ListPlayers(ctx context.Context, arg ListPlayersParams) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+playerColumns+` FROM players
		WHERE season_id = ? AND team_id = ?
		ORDER BY number ASC, full_name ASC`,
		arg.SeasonID, arg.TeamID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (q *Queries) DeletePlayer(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- notices ---

const noticeColumns = `id, season_id, title, body, created_at`

func scanNotice(row interface{ Scan(...any) error }) (Notice, error) {
	var n Notice
	err := row.Scan(&n.ID, &n.SeasonID, &n.Title, &n.Body, &n.CreatedAt)
	return n, err
}

type CreateNoticeParams struct {
	SeasonID string
	Title    string
	Body     string
}

func (q *Queries) CreateNotice(ctx context.Context, arg CreateNoticeParams) (Notice, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO notices (id, season_id, title, body)
		VALUES (?, ?, ?, ?)
		RETURNING `+noticeColumns,
		newID(), arg.SeasonID, arg.Title, arg.Body,
	)
	return scanNotice(row)
}

func (q *Queries) ListNotices(ctx context.Context, seasonID string) ([]Notice, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+noticeColumns+` FROM notices WHERE season_id = ? ORDER BY created_at DESC`,
		seasonID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}
