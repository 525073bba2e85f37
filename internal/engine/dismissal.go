package engine

// DismissalKind is how a batsman got out.
type DismissalKind string

const (
	Bowled    DismissalKind = "BOWLED"
	Caught    DismissalKind = "CAUGHT"
	LBW       DismissalKind = "LBW"
	Stumped   DismissalKind = "STUMPED"
	RunOut    DismissalKind = "RUN_OUT"
	HitWicket DismissalKind = "HIT_WICKET"

	dismissalCount = 6
)

const (
	stumpingKeeperSkill = 70
	stumpingBoost       = 1.5
	bowledBowlerSkill   = 80
	bowledBoost         = 1.3
)

// Dismissal is the resolved wicket. Fielder is set for catches and stumpings.
type Dismissal struct {
	Kind    DismissalKind
	Fielder *Player
}

// Describe renders the scorecard line, e.g. "c Smith b Jones".
func (d Dismissal) Describe(bowler *Player) string {
	b := "b " + nameOf(bowler)
	switch d.Kind {
	case Bowled:
		return b
	case Caught:
		if d.Fielder != nil && bowler != nil && d.Fielder.ID == bowler.ID {
			return "c & " + b
		}
		return "c " + nameOf(d.Fielder) + " " + b
	case LBW:
		return "lbw " + b
	case Stumped:
		return "st " + nameOf(d.Fielder) + " " + b
	case RunOut:
		return "run out"
	case HitWicket:
		return "hit wicket " + b
	}
	return string(d.Kind)
}

func nameOf(p *Player) string {
	if p == nil {
		return "sub"
	}
	return p.Name
}

// DismissalResolver draws the mode of dismissal on a wicket ball.
type DismissalResolver struct {
	weights [dismissalCount]DismissalWeight
}

func NewDismissalResolver(tables Tables) DismissalResolver {
	return DismissalResolver{weights: tables.Dismissal}
}

// Resolve picks a dismissal kind. A skilled keeper makes stumpings likelier and
// a strong bowler makes bowled likelier. Catches go to a random member of the
// fielding lineup and stumpings to the keeper.
func (r DismissalResolver) Resolve(bowler, keeper *Player, fielders []*Player, rng Rand) Dismissal {
	weights := make([]float64, dismissalCount)
	for i, w := range r.weights {
		weights[i] = w.Weight
		switch {
		case w.Kind == Stumped && keeper != nil && keeper.Keeping.Or(0) > stumpingKeeperSkill:
			weights[i] *= stumpingBoost
		case w.Kind == Bowled && bowler != nil && bowler.Bowling.Or(0) > bowledBowlerSkill:
			weights[i] *= bowledBoost
		}
	}

	d := Dismissal{Kind: r.weights[weightedIndex(rng, weights)].Kind}
	switch d.Kind {
	case Caught:
		if len(fielders) > 0 {
			d.Fielder = fielders[rng.Intn(len(fielders))]
		}
	case Stumped:
		d.Fielder = keeper
	}
	return d
}
