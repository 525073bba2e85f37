package rating

import "math"

// Performance scoring weights. Each sub-score is in [0,1].
const (
	centuryRuns        = 100.0
	strikeRateCeiling  = 150.0
	fiveWickets        = 5.0
	economyCeiling     = 10.0
	fieldingCeiling    = 3.0
	runsShare          = 0.6
	strikeRateShare    = 0.4
	wicketsShare       = 0.6
	economyShare       = 0.4
	battingWeight      = 0.5
	bowlingWeight      = 0.4
	fieldingWeight     = 0.1
	NeutralPerformance = 0.5
)

// Line is one player's raw match figures. Bowling workload is in legal
// balls; an over is six of them.
type Line struct {
	Runs             int
	BallsFaced       int
	Out              bool
	LegalBallsBowled int
	RunsConceded     int
	Wickets          int
	Catches          int
	Stumpings        int
	RunOuts          int
}

func (l Line) fieldingActs() int {
	return l.Catches + l.Stumpings + l.RunOuts
}

// Scores holds the sub-scores that applied and their weighted combination.
// A sub-score is zero when the player had no part in that discipline.
type Scores struct {
	Batting  float64
	Bowling  float64
	Fielding float64
	Overall  float64
}

// Score rates a player's match in [0,1]. Only disciplines the player took
// part in count; a player with no involvement scores NeutralPerformance.
func Score(l Line) Scores {
	var s Scores
	var total, weights float64

	if l.BallsFaced > 0 {
		strikeRate := float64(l.Runs) / float64(l.BallsFaced) * 100
		s.Batting = runsShare*math.Min(float64(l.Runs)/centuryRuns, 1) +
			strikeRateShare*math.Min(strikeRate/strikeRateCeiling, 1)
		total += s.Batting * battingWeight
		weights += battingWeight
	}

	if l.LegalBallsBowled > 0 {
		overs := float64(l.LegalBallsBowled) / 6
		economy := float64(l.RunsConceded) / overs
		s.Bowling = wicketsShare*math.Min(float64(l.Wickets)/fiveWickets, 1) +
			economyShare*math.Max(0, 1-economy/economyCeiling)
		total += s.Bowling * bowlingWeight
		weights += bowlingWeight
	}

	if acts := l.fieldingActs(); acts > 0 {
		s.Fielding = math.Min(float64(acts)/fieldingCeiling, 1)
		total += s.Fielding * fieldingWeight
		weights += fieldingWeight
	}

	if weights == 0 {
		s.Overall = NeutralPerformance
		return s
	}
	s.Overall = total / weights
	return s
}

// AverageScore is the mean overall score of a side's lines, or
// NeutralPerformance when nothing was recorded.
func AverageScore(lines []Line) float64 {
	if len(lines) == 0 {
		return NeutralPerformance
	}
	var sum float64
	for _, l := range lines {
		sum += Score(l).Overall
	}
	return sum / float64(len(lines))
}
