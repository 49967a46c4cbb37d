package team

import "time"

// Team is one club's standings row.
type Team struct {
	ID           int64
	Name         string
	LogoURL      *string
	GamesPlayed  int
	Wins         int
	Losses       int
	OTLosses     int
	GoalsFor     int
	GoalsAgainst int
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Input carries every mutable column. Create and Update both write all of
// them, so a zero value overwrites whatever was stored before.
type Input struct {
	Name         *string
	LogoURL      *string
	GamesPlayed  int
	Wins         int
	Losses       int
	OTLosses     int
	GoalsFor     int
	GoalsAgainst int
	Position     int
}

// Points uses the league scoring: two per win, one per overtime loss.
func (t Team) Points() int {
	return t.Wins*2 + t.OTLosses
}

func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// Standing is a team decorated with its derived table values.
type Standing struct {
	Rank           int
	Team           Team
	Points         int
	GoalDifference int
}

// Standings ranks teams in the order given, which callers take from the
// position-ordered listing.
func Standings(teams []Team) []Standing {
	out := make([]Standing, 0, len(teams))
	for i, t := range teams {
		out = append(out, Standing{
			Rank:           i + 1,
			Team:           t,
			Points:         t.Points(),
			GoalDifference: t.GoalDifference(),
		})
	}
	return out
}
