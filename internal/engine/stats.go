package engine

import (
	"fmt"
	"math"
)

// BallsPerOver is the number of legal deliveries in an over.
const BallsPerOver = 6

// Overs is a legal-ball count shown the cricket way: 3.2 means three overs
// and two balls.
type Overs struct {
	Completed int `json:"completed"`
	Balls     int `json:"balls"`
}

// OversFromBalls converts a legal-ball count.
func OversFromBalls(legal int) Overs {
	return Overs{Completed: legal / BallsPerOver, Balls: legal % BallsPerOver}
}

// LegalBalls converts back to a ball count.
func (o Overs) LegalBalls() int {
	return o.Completed*BallsPerOver + o.Balls
}

// Notation is the one-decimal scorecard value (3.2).
func (o Overs) Notation() float64 {
	return float64(o.Completed) + float64(o.Balls)/10
}

// Real is the overs as a true fraction (3.2 overs = 3.333...).
func (o Overs) Real() float64 {
	return float64(o.LegalBalls()) / BallsPerOver
}

func (o Overs) String() string {
	return fmt.Sprintf("%d.%d", o.Completed, o.Balls)
}

// PlayerStats are the running counters for one player over a match.
type PlayerStats struct {
	PlayerID        uint   `json:"player_id"`
	TeamID          uint   `json:"team_id"`
	Name            string `json:"name"`
	BattingPosition int    `json:"batting_position,omitempty"`

	Runs       int    `json:"runs"`
	BallsFaced int    `json:"balls_faced"`
	Fours      int    `json:"fours"`
	Sixes      int    `json:"sixes"`
	Out        bool   `json:"out"`
	HowOut     string `json:"how_out,omitempty"`

	LegalBallsBowled int `json:"legal_balls_bowled"`
	RunsConceded     int `json:"runs_conceded"`
	Wickets          int `json:"wickets"`
	Maidens          int `json:"maidens"`
	Wides            int `json:"wides"`
	NoBalls          int `json:"no_balls"`

	Catches   int `json:"catches"`
	Stumpings int `json:"stumpings"`
	RunOuts   int `json:"run_outs"`
}

// OversBowled renders the bowler's legal deliveries as overs.
func (s *PlayerStats) OversBowled() Overs {
	return OversFromBalls(s.LegalBallsBowled)
}

// StrikeRate is runs per hundred balls, 0 when no ball was faced.
func (s *PlayerStats) StrikeRate() float64 {
	if s.BallsFaced == 0 {
		return 0
	}
	return float64(s.Runs) / float64(s.BallsFaced) * 100
}

// Economy is runs conceded per (true) over, 0 when nothing was bowled.
func (s *PlayerStats) Economy() float64 {
	if s.LegalBallsBowled == 0 {
		return 0
	}
	return float64(s.RunsConceded) / s.OversBowled().Real()
}

// Batted reports whether the player came to the crease.
func (s *PlayerStats) Batted() bool {
	return s.BattingPosition > 0
}

// Bowled reports whether the player sent down any delivery.
func (s *PlayerStats) Bowled() bool {
	return s.LegalBallsBowled > 0 || s.Wides > 0 || s.NoBalls > 0
}

// Scorecard collects PlayerStats in first-involvement order.
type Scorecard struct {
	order []uint
	stats map[uint]*PlayerStats
}

func NewScorecard() *Scorecard {
	return &Scorecard{stats: make(map[uint]*PlayerStats)}
}

// For returns the stats of p, creating them on first use.
func (c *Scorecard) For(p *Player, teamID uint) *PlayerStats {
	if s, ok := c.stats[p.ID]; ok {
		return s
	}
	s := &PlayerStats{PlayerID: p.ID, TeamID: teamID, Name: p.Name}
	c.stats[p.ID] = s
	c.order = append(c.order, p.ID)
	return s
}

// Get returns the stats of a player id, or nil.
func (c *Scorecard) Get(id uint) *PlayerStats {
	return c.stats[id]
}

// All returns a copy of every recorded entry.
func (c *Scorecard) All() []PlayerStats {
	out := make([]PlayerStats, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.stats[id])
	}
	return out
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
