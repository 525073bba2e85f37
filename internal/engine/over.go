package engine

// OverState tracks an over from its first ball to its end.
type OverState int

const (
	OverBowling OverState = iota
	OverComplete
	OverCompleteEarly
)

func (s OverState) String() string {
	switch s {
	case OverComplete:
		return "complete"
	case OverCompleteEarly:
		return "complete-early"
	}
	return "bowling"
}

// Over is one bowler's spell of up to six legal balls.
type Over struct {
	Number     int       `json:"number"`
	BowlerID   uint      `json:"bowler_id"`
	Balls      []Ball    `json:"balls"`
	Runs       int       `json:"runs"`
	Wickets    int       `json:"wickets"`
	LegalBalls int       `json:"legal_balls"`
	State      OverState `json:"-"`
}

// Maiden reports a full over with nothing conceded.
func (o *Over) Maiden() bool {
	return o.State == OverComplete && o.Runs == 0
}

// playOver keeps asking next for deliveries until six legal balls are in or
// a wicket falls. Wides and no-balls are rebowled.
func playOver(number int, bowlerID uint, next func(ballNumber int) Ball) Over {
	o := Over{Number: number, BowlerID: bowlerID, State: OverBowling}
	for o.State == OverBowling {
		b := next(len(o.Balls) + 1)
		o.Balls = append(o.Balls, b)
		o.Runs += b.Runs()
		if !b.Legal() {
			continue
		}
		o.LegalBalls++
		switch {
		case b.IsWicket():
			o.Wickets = 1
			o.State = OverCompleteEarly
		case o.LegalBalls == BallsPerOver:
			o.State = OverComplete
		}
	}
	return o
}
