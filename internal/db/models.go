package db

import (
	"database/sql"
	"time"
)

type Season struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	StartDate time.Time    `json:"startDate"`
	EndDate   sql.NullTime `json:"endDate"`
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logoUrl"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Tournament struct {
	ID        string    `json:"id"`
	SeasonID  string    `json:"seasonId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type Matchday struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	Number       int64     `json:"number"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Match struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	MatchdayID   string    `json:"matchdayId"`
	LocalTeamID  string    `json:"localTeamId"`
	AwayTeamID   string    `json:"awayTeamId"`
	Date         time.Time `json:"date"`
	Field        string    `json:"field"`
	GroupID      string    `json:"groupId"`
	Status       string    `json:"status"`
	LocalGoals   int64     `json:"localGoals"`
	AwayGoals    int64     `json:"awayGoals"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type MatchEvent struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"matchId"`
	Type       string    `json:"type"`
	TeamID     string    `json:"teamId"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Minute     string    `json:"minute"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Player struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	SeasonID  string    `json:"seasonId"`
	FullName  string    `json:"fullName"`
	Number    int64     `json:"number"`
	Position  string    `json:"position"`
	PhotoURL  string    `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type Notice struct {
	ID        string    `json:"id"`
	SeasonID  string    `json:"seasonId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerEventRow joins a ledger event with the played match it belongs to,
// for the scorer and player-stat aggregations.
type PlayerEventRow struct {
	Event MatchEvent
	Match Match
}
