package engine

// MaxWickets ends an innings once that many batsmen are out.
const MaxWickets = 10

// InningsKind orders the two innings of a match.
type InningsKind string

const (
	FirstInnings  InningsKind = "FIRST"
	SecondInnings InningsKind = "SECOND"
)

// Extras splits runs not scored off the bat.
type Extras struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
}

func (e Extras) Total() int {
	return e.Wides + e.NoBalls + e.Byes + e.LegByes
}

func (e *Extras) add(o Outcome) {
	switch o.Kind {
	case Wide:
		e.Wides += o.Runs
	case NoBall:
		e.NoBalls += o.Runs
	case Bye:
		e.Byes += o.Runs
	case LegBye:
		e.LegByes += o.Runs
	}
}

// Innings is one side's batting effort.
type Innings struct {
	Kind          InningsKind `json:"kind"`
	BattingTeamID uint        `json:"batting_team_id"`
	BowlingTeamID uint        `json:"bowling_team_id"`
	BattingTeam   string      `json:"batting_team"`
	BowlingTeam   string      `json:"bowling_team"`
	Runs          int         `json:"runs"`
	Wickets       int         `json:"wickets"`
	LegalBalls    int         `json:"legal_balls"`
	Target        int         `json:"target,omitempty"`
	Extras        Extras      `json:"extras"`
	Overs         []Over      `json:"overs"`
}

// OversBowled is the innings length in overs and balls.
func (i *Innings) OversBowled() Overs {
	return OversFromBalls(i.LegalBalls)
}

// RunRate is runs per over, 0 before the first legal ball.
func (i *Innings) RunRate() float64 {
	if i.LegalBalls == 0 {
		return 0
	}
	return round2(float64(i.Runs) / i.OversBowled().Real())
}

// Chased reports whether a set target was reached.
func (i *Innings) Chased() bool {
	return i.Target > 0 && i.Runs >= i.Target
}

// SimulateInnings bowls overs until the overs run out, ten wickets fall, the
// batting order is exhausted or the target (when positive) is reached. The
// target is checked between overs.
func (s *Simulator) SimulateInnings(kind InningsKind, batting, bowling *Side, target, maxOvers int, card *Scorecard) *Innings {
	inn := &Innings{
		Kind:          kind,
		BattingTeamID: batting.TeamID,
		BowlingTeamID: bowling.TeamID,
		BattingTeam:   batting.Name,
		BowlingTeam:   bowling.Name,
		Target:        target,
	}

	nextBatsman := 0
	take := func() *Player {
		if nextBatsman >= len(batting.Lineup) {
			return nil
		}
		p := batting.Lineup[nextBatsman]
		nextBatsman++
		card.For(p, batting.TeamID).BattingPosition = nextBatsman
		return p
	}

	striker := take()
	for over := 0; over < maxOvers && inn.Wickets < MaxWickets && striker != nil && !inn.Chased(); over++ {
		bowler := bowling.BowlerFor(over)
		batsman := striker
		o := playOver(over+1, bowler.ID, func(n int) Ball {
			return s.bowlBall(n, bowler, batsman, batting, bowling, card)
		})

		inn.Overs = append(inn.Overs, o)
		inn.Runs += o.Runs
		inn.Wickets += o.Wickets
		inn.LegalBalls += o.LegalBalls
		for _, b := range o.Balls {
			inn.Extras.add(b.Outcome)
		}
		if o.Maiden() {
			card.For(bowler, bowling.TeamID).Maidens++
		}
		if o.Wickets > 0 {
			striker = take()
		}
	}
	return inn
}
