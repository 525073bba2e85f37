package rating

import "fmt"

// Milestones are the ratings that award a one-off achievement when crossed upwards.
var Milestones = []int{1200, 1400, 1600, 1800, 2000, 2200}

const (
	centuryThreshold     = 100
	fiveWicketsThreshold = 5
)

// MatchContext names a completed match for achievement rows.
type MatchContext struct {
	MatchID      uint
	TournamentID *uint
	Label        string // "Team A vs Team B"
}

// MatchAchievements returns the century and five-wicket hauls among lines,
// all credited to userID. Duplicates collapse on insert.
func MatchAchievements(userID uint, m MatchContext, lines []Line) []Achievement {
	var out []Achievement
	matchID := m.MatchID
	for _, l := range lines {
		if l.Runs >= centuryThreshold {
			out = append(out, Achievement{
				UserID:        userID,
				Kind:          KindCentury,
				SourceMatchID: matchID,
				MatchID:       &matchID,
				TournamentID:  m.TournamentID,
				Title:         fmt.Sprintf("Century - %d runs", l.Runs),
				Description:   fmt.Sprintf("Scored %d runs in %s", l.Runs, m.Label),
			})
		}
		if l.Wickets >= fiveWicketsThreshold {
			out = append(out, Achievement{
				UserID:        userID,
				Kind:          KindFiveWickets,
				SourceMatchID: matchID,
				MatchID:       &matchID,
				TournamentID:  m.TournamentID,
				Title:         fmt.Sprintf("Five-wicket haul - %d wickets", l.Wickets),
				Description:   fmt.Sprintf("Took %d wickets in %s", l.Wickets, m.Label),
			})
		}
	}
	return out
}

// MilestoneAchievements returns one achievement per milestone m with
// oldRating < m <= newRating.
func MilestoneAchievements(userID uint, oldRating, newRating float64) []Achievement {
	var out []Achievement
	for _, m := range Milestones {
		if oldRating < float64(m) && float64(m) <= newRating {
			out = append(out, Achievement{
				UserID:      userID,
				Kind:        KindRatingMilestone,
				Milestone:   m,
				Title:       fmt.Sprintf("Rating Milestone: %d", m),
				Description: fmt.Sprintf("Reached a rating of %d points", m),
			})
		}
	}
	return out
}
