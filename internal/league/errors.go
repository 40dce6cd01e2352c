package league

import "errors"

var (
	ErrNoActiveSeason     = errors.New("no active season")
	ErrSeasonNotFound     = errors.New("season not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchdayNotFound   = errors.New("matchday not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrPlayerNotFound     = errors.New("player not found")

	ErrSameTeam           = errors.New("local and away team must differ")
	ErrTeamNotInTournament = errors.New("team is not part of this tournament")
	ErrTeamNotEnrolled    = errors.New("team is not enrolled in the active season")
	ErrNotLastMatchday    = errors.New("only the last matchday can be deleted")
	ErrMatchdayHasMatches = errors.New("matchday still has scheduled matches")
	ErrMatchPlayed        = errors.New("match is already played")
	ErrInvalidEventType   = errors.New("event type must be goal, caution, or dismissal")
	ErrScoreMismatch      = errors.New("goal counts do not match goal events")
	ErrNoTeams            = errors.New("tournament needs at least two teams")
)
