package engine

// Ball is one delivery, legal or not.
type Ball struct {
	Number    int        `json:"number"`
	BowlerID  uint       `json:"bowler_id"`
	BatsmanID uint       `json:"batsman_id"`
	Outcome   Outcome    `json:"-"`
	Delivery  Delivery   `json:"delivery,omitempty"`
	Dismissal *Dismissal `json:"-"`
}

func (b Ball) Runs() int { return b.Outcome.Runs }
func (b Ball) Legal() bool { return b.Outcome.Kind.Legal() }
func (b Ball) IsWicket() bool { return b.Outcome.Kind == Wicket }

// FielderID is the catcher or stumper, if any.
func (b Ball) FielderID() *uint {
	if b.Dismissal == nil || b.Dismissal.Fielder == nil {
		return nil
	}
	id := b.Dismissal.Fielder.ID
	return &id
}

// bowlBall draws one delivery and books it on the scorecard.
func (s *Simulator) bowlBall(number int, bowler, batsman *Player, batting, fielding *Side, card *Scorecard) Ball {
	out, delivery := s.calc.DrawDelivery(DeliveryContext{
		Bowler:          bowler,
		Batsman:         batsman,
		Keeper:          fielding.Keeper,
		FieldingAverage: fielding.FieldingAverage,
	}, s.rng)

	ball := Ball{
		Number:    number,
		BowlerID:  bowler.ID,
		BatsmanID: batsman.ID,
		Outcome:   out,
		Delivery:  delivery,
	}
	if out.Kind == Wicket {
		d := s.dismissals.Resolve(bowler, fielding.Keeper, fielding.Lineup, s.rng)
		ball.Dismissal = &d
	}

	record(ball, bowler, batsman, batting, fielding, card)
	return ball
}

func record(ball Ball, bowler, batsman *Player, batting, fielding *Side, card *Scorecard) {
	bat := card.For(batsman, batting.TeamID)
	bowl := card.For(bowler, fielding.TeamID)
	out := ball.Outcome

	bowl.RunsConceded += out.Runs
	if out.Kind.Legal() {
		bat.BallsFaced++
		bat.Runs += out.BatRuns()
		bowl.LegalBallsBowled++
	}

	switch out.Kind {
	case Four:
		bat.Fours++
	case Six:
		bat.Sixes++
	case Wide:
		bowl.Wides++
	case NoBall:
		bowl.NoBalls++
	case Wicket:
		bowl.Wickets++
		bat.Out = true
		if ball.Dismissal == nil {
			break
		}
		bat.HowOut = ball.Dismissal.Describe(bowler)
		if f := ball.Dismissal.Fielder; f != nil {
			switch ball.Dismissal.Kind {
			case Caught:
				card.For(f, fielding.TeamID).Catches++
			case Stumped:
				card.For(f, fielding.TeamID).Stumpings++
			}
		}
	}
}
