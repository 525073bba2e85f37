package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidOvers = errors.New("max overs must be at least 1")

// MarginUnit says whether a win was by runs or by wickets.
type MarginUnit string

const (
	ByRuns    MarginUnit = "runs"
	ByWickets MarginUnit = "wickets"
)

// Margin is the size of a win.
type Margin struct {
	Value int        `json:"value"`
	Unit  MarginUnit `json:"unit"`
}

func (m Margin) String() string {
	return fmt.Sprintf("by %d %s", m.Value, m.Unit)
}

// MatchResult is everything a finished simulation produced.
type MatchResult struct {
	Home         *Side         `json:"-"`
	Away         *Side         `json:"-"`
	BattingFirst uint          `json:"batting_first_team_id"`
	First        *Innings      `json:"first_innings"`
	Second       *Innings      `json:"second_innings"`
	Target       int           `json:"target"`
	WinnerID     uint          `json:"winner_team_id"`
	LoserID      uint          `json:"loser_team_id"`
	Margin       Margin        `json:"margin"`
	Stats        []PlayerStats `json:"player_stats"`
}

// InningsOf returns the innings the team batted in.
func (r *MatchResult) InningsOf(teamID uint) *Innings {
	if r.First.BattingTeamID == teamID {
		return r.First
	}
	return r.Second
}

// Winner returns the winning side.
func (r *MatchResult) Winner() *Side {
	if r.Home.TeamID == r.WinnerID {
		return r.Home
	}
	return r.Away
}

// Loser returns the beaten side.
func (r *MatchResult) Loser() *Side {
	if r.Home.TeamID == r.WinnerID {
		return r.Away
	}
	return r.Home
}

// Summary is the one-line result, e.g. "Strikers won by 4 wickets".
func (r *MatchResult) Summary() string {
	return r.Winner().Name + " won " + r.Margin.String()
}

// Simulator runs deliveries, overs, innings and matches. One Simulator
// belongs to one match; it is not safe for concurrent use because its
// random source is not.
type Simulator struct {
	calc       *Calculator
	dismissals DismissalResolver
	rng        Rand
}

// NewSimulator builds a simulator for one match under the given conditions.
func NewSimulator(tables Tables, conditions Conditions, rng Rand) *Simulator {
	return &Simulator{
		calc:       NewCalculator(tables, conditions),
		dismissals: NewDismissalResolver(tables),
		rng:        rng,
	}
}

// PreviewBall draws a single outcome without touching any scorecard.
func (s *Simulator) PreviewBall(bowler, batsman, keeper *Player, fieldingAverage float64) (Outcome, Delivery) {
	return s.calc.DrawDelivery(DeliveryContext{
		Bowler:          bowler,
		Batsman:         batsman,
		Keeper:          keeper,
		FieldingAverage: fieldingAverage,
	}, s.rng)
}

// SimulateMatch tosses, plays both innings and decides the winner.
// Both lineups are formed before any ball is bowled, so roster errors leave
// nothing behind.
func (s *Simulator) SimulateMatch(home, away Team, maxOvers int) (*MatchResult, error) {
	if maxOvers < 1 {
		return nil, ErrInvalidOvers
	}
	homeSide, err := NewSide(home)
	if err != nil {
		return nil, fmt.Errorf("team %q: %w", home.Name, err)
	}
	awaySide, err := NewSide(away)
	if err != nil {
		return nil, fmt.Errorf("team %q: %w", away.Name, err)
	}

	batFirst, batSecond := homeSide, awaySide
	if s.rng.Intn(2) == 1 {
		batFirst, batSecond = awaySide, homeSide
	}

	card := NewScorecard()
	first := s.SimulateInnings(FirstInnings, batFirst, batSecond, 0, maxOvers, card)
	target := first.Runs + 1
	second := s.SimulateInnings(SecondInnings, batSecond, batFirst, target, maxOvers, card)

	res := &MatchResult{
		Home:         homeSide,
		Away:         awaySide,
		BattingFirst: batFirst.TeamID,
		First:        first,
		Second:       second,
		Target:       target,
	}
	if second.Runs >= target {
		res.WinnerID, res.LoserID = batSecond.TeamID, batFirst.TeamID
		res.Margin = Margin{Value: MaxWickets - second.Wickets, Unit: ByWickets}
	} else {
		// No ties: level scores go to the side batting first by 0 runs.
		res.WinnerID, res.LoserID = batFirst.TeamID, batSecond.TeamID
		res.Margin = Margin{Value: first.Runs - second.Runs, Unit: ByRuns}
	}
	res.Stats = card.All()
	return res, nil
}
