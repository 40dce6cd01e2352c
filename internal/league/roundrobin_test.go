package league

import (
	"errors"
	"fmt"
	"testing"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

func namedTeams(n int) []appdb.Team {
	teams := make([]appdb.Team, n)
	for i := range teams {
		teams[i] = appdb.Team{ID: fmt.Sprintf("team-%d", i+1), Name: fmt.Sprintf("Team %d", i+1)}
	}
	return teams
}

func TestGenerateRoundRobinEveryPairOnce(t *testing.T) {
	cases := []struct {
		teams      int
		wantRounds int
		wantPairs  int
	}{
		{teams: 2, wantRounds: 1, wantPairs: 1},
		{teams: 4, wantRounds: 3, wantPairs: 6},
		{teams: 5, wantRounds: 5, wantPairs: 10},
		{teams: 6, wantRounds: 5, wantPairs: 15},
	}

	for _, tc := range cases {
		pairs, err := GenerateRoundRobin(namedTeams(tc.teams))
		if err != nil {
			t.Fatalf("%d teams: %v", tc.teams, err)
		}
		if len(pairs) != tc.wantPairs {
			t.Fatalf("%d teams: pairs = %d, want %d", tc.teams, len(pairs), tc.wantPairs)
		}

		seen := make(map[string]int)
		maxRound := 0
		for _, p := range pairs {
			if p.LocalTeam.ID == p.AwayTeam.ID {
				t.Fatalf("%d teams: team paired with itself", tc.teams)
			}
			a, b := p.LocalTeam.ID, p.AwayTeam.ID
			if a > b {
				a, b = b, a
			}
			seen[a+"|"+b]++
			if p.Round > maxRound {
				maxRound = p.Round
			}
		}
		if maxRound != tc.wantRounds {
			t.Fatalf("%d teams: rounds = %d, want %d", tc.teams, maxRound, tc.wantRounds)
		}
		for pair, count := range seen {
			if count != 1 {
				t.Fatalf("%d teams: pair %s appears %d times", tc.teams, pair, count)
			}
		}
	}
}

func TestGenerateRoundRobinOddTeamsSitOneOut(t *testing.T) {
	pairs, err := GenerateRoundRobin(namedTeams(5))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	byRound := make(map[int]int)
	for _, p := range pairs {
		byRound[p.Round]++
	}
	for round, count := range byRound {
		if count != 2 {
			t.Fatalf("round %d has %d fixtures, want 2", round, count)
		}
	}
}

func TestGenerateRoundRobinTooFewTeams(t *testing.T) {
	if _, err := GenerateRoundRobin(namedTeams(1)); !errors.Is(err, ErrNoTeams) {
		t.Fatalf("expected ErrNoTeams, got %v", err)
	}
}
