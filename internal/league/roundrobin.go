package league

import (
	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// Pairing is one fixture produced by the round-robin generator.
type Pairing struct {
	Round     int
	LocalTeam appdb.Team
	AwayTeam  appdb.Team
}

// GenerateRoundRobin produces a single round-robin schedule for the given
// teams using the circle method. Round numbers start at 1 and map directly to
// matchday numbers. With an odd team count one team sits out each round.
func GenerateRoundRobin(teams []appdb.Team) ([]Pairing, error) {
	if len(teams) < 2 {
		return nil, ErrNoTeams
	}

	working := make([]*appdb.Team, 0, len(teams)+1)
	for i := range teams {
		working = append(working, &teams[i])
	}
	if len(working)%2 == 1 {
		working = append(working, nil)
	}

	rounds := len(working) - 1
	pairs := make([]Pairing, 0, rounds*len(working)/2)

	for round := 0; round < rounds; round++ {
		for i := 0; i < len(working)/2; i++ {
			left := working[i]
			right := working[len(working)-1-i]
			if left == nil || right == nil {
				continue
			}
			local := *left
			away := *right
			// Alternate home advantage for the fixed seat.
			if i == 0 && round%2 == 1 {
				local, away = away, local
			}
			pairs = append(pairs, Pairing{
				Round:     round + 1,
				LocalTeam: local,
				AwayTeam:  away,
			})
		}
		rotate(working)
	}

	return pairs, nil
}

func rotate(teams []*appdb.Team) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}
