package rating

// Career is the public summary of a user's record.
type Career struct {
	UserID uint `json:"user_id"`
	Rating struct {
		Current float64 `json:"current"`
		Peak    float64 `json:"peak"`
	} `json:"rating"`
	Matches struct {
		Played        int     `json:"played"`
		Won           int     `json:"won"`
		Lost          int     `json:"lost"`
		WinPercentage float64 `json:"win_percentage"`
	} `json:"matches"`
	Tournaments struct {
		Played int `json:"played"`
		Won    int `json:"won"`
	} `json:"tournaments"`
	Batting struct {
		Average    float64 `json:"average"`
		StrikeRate float64 `json:"strike_rate"`
		TotalRuns  int     `json:"total_runs"`
	} `json:"batting"`
	Bowling struct {
		Average      float64 `json:"average"`
		TotalWickets int     `json:"total_wickets"`
	} `json:"bowling"`
}

// BuildCareer combines the stored profile with performance sums. With no
// dismissals the batting average is the run total.
func BuildCareer(p *UserProfile, f *CareerFigures) Career {
	var c Career
	c.UserID = p.UserID
	c.Rating.Current = p.CurrentRating
	c.Rating.Peak = p.PeakRating
	c.Matches.Played = p.CareerMatches
	c.Matches.Won = p.CareerWins
	c.Matches.Lost = p.CareerLosses
	c.Matches.WinPercentage = Round2(p.WinPercentage())
	c.Tournaments.Played = p.TournamentsPlayed
	c.Tournaments.Won = p.TournamentsWon
	c.Batting.TotalRuns = p.CareerRuns
	c.Bowling.TotalWickets = p.CareerWickets

	if f == nil {
		return c
	}
	switch {
	case f.Dismissals > 0:
		c.Batting.Average = Round2(float64(f.BattingRuns) / float64(f.Dismissals))
	default:
		c.Batting.Average = float64(f.BattingRuns)
	}
	if f.BallsFaced > 0 {
		c.Batting.StrikeRate = Round2(float64(f.StrikeRateRuns) / float64(f.BallsFaced) * 100)
	}
	if f.Wickets > 0 {
		c.Bowling.Average = Round2(float64(f.WicketRunsAgainst) / float64(f.Wickets))
	}
	return c
}
