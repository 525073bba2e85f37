package engine

// Distribution holds one weight per outcome kind, indexed by OutcomeKind.
type Distribution [outcomeCount]float64

// Total sums every weight.
func (d Distribution) Total() float64 {
	var t float64
	for _, w := range d {
		t += w
	}
	return t
}

// Impact is how strongly each factor moves the weight of one outcome.
type Impact struct {
	Bowling  float64
	Batting  float64
	Pitch    float64
	Weather  float64
	Fielding float64
	Keeping  float64
}

// DismissalWeight pairs a dismissal kind with its base draw weight.
type DismissalWeight struct {
	Kind   DismissalKind
	Weight float64
}

// Tables is the configuration data the outcome calculator and dismissal
// resolver draw from. Values are copied on construction, so callers may
// tweak a Tables they own without affecting running simulations.
type Tables struct {
	Base      Distribution
	Impacts   [outcomeCount]Impact
	ExtraRuns [4]float64 // weights for 1, 2, 3 and 4 byes / leg-byes
	Dismissal [dismissalCount]DismissalWeight

	// MinWeight is the floor every adjusted weight is clamped to.
	MinWeight float64
}

// DefaultTables returns the standard limited-overs tables.
func DefaultTables() Tables {
	return Tables{
		Base: Distribution{
			Dot:    35.9,
			Single: 36.9,
			Two:    4.7,
			Three:  0.3,
			Four:   9.6,
			Six:    4.1,
			Wicket: 4.5,
			Wide:   2.5,
			NoBall: 0.5,
			Bye:    0.25,
			LegBye: 0.75,
		},
		Impacts: [outcomeCount]Impact{
			Dot:    {Bowling: 0.23, Batting: -0.238, Pitch: 0.01, Weather: 0.01, Fielding: 0.01, Keeping: 0.0},
			Single: {Bowling: 0.05, Batting: -0.0115, Pitch: -0.0109, Weather: -0.0109, Fielding: -0.0109, Keeping: 0.0},
			Two:    {Bowling: -0.2, Batting: 0.2, Pitch: -0.05, Weather: -0.05, Fielding: 0.0, Keeping: 0.0},
			Three:  {Bowling: -0.5, Batting: 0.5},
			Four:   {Bowling: -0.75, Batting: 0.75, Pitch: -0.05, Weather: -0.05, Fielding: -0.05, Keeping: -0.005},
			Six:    {Bowling: -1.0, Batting: 1.0, Pitch: -0.1, Weather: -0.1, Fielding: -0.05, Keeping: 0.0},
			Wicket: {Bowling: 1.0, Batting: -1.0, Pitch: 0.2, Weather: 0.2, Fielding: 0.1, Keeping: 0.05},
			Wide:   {Bowling: -0.8, Batting: 0.0, Pitch: 0.1, Weather: 0.1, Fielding: 0.0, Keeping: -0.1},
			NoBall: {Bowling: -1.0},
			Bye:    {Pitch: 0.1, Weather: 0.1, Keeping: -0.1},
			LegBye: {Pitch: -0.01, Weather: -0.01, Keeping: -0.1},
		},
		ExtraRuns: [4]float64{0.5, 0.3, 0.05, 0.15},
		Dismissal: [dismissalCount]DismissalWeight{
			{Kind: Bowled, Weight: 0.25},
			{Kind: Caught, Weight: 0.35},
			{Kind: LBW, Weight: 0.20},
			{Kind: Stumped, Weight: 0.05},
			{Kind: RunOut, Weight: 0.10},
			{Kind: HitWicket, Weight: 0.05},
		},
		MinWeight: 0.01,
	}
}

// BowlerType is a bowling style. It decides which deliveries a bowler can send down.
type BowlerType string

const (
	OffSpin BowlerType = "OFF_SPIN"
	LegSpin BowlerType = "LEG_SPIN"
	Fast    BowlerType = "FAST"
	Medium  BowlerType = "MEDIUM"
)

// IsSpin reports whether pitch and weather help this style through their spin value.
func (t BowlerType) IsSpin() bool {
	return t == OffSpin || t == LegSpin
}

// Valid reports a known bowler type.
func (t BowlerType) Valid() bool {
	switch t {
	case OffSpin, LegSpin, Fast, Medium:
		return true
	}
	return false
}

// Delivery names a delivery sub-skill shared by bowling and batting profiles.
type Delivery string

const (
	OffBreak   Delivery = "off_break"
	ArmBall    Delivery = "arm_ball"
	Doosra     Delivery = "doosra"
	CarromBall Delivery = "carrom_ball"
	LegBreak   Delivery = "leg_break"
	Googly     Delivery = "googly"
	Slider     Delivery = "slider"
	Flipper    Delivery = "flipper"
	TopSpin    Delivery = "top_spin"
	Pace       Delivery = "pace"
	Swing      Delivery = "swing"
	Seam       Delivery = "seam"
	Bouncer    Delivery = "bouncer"
	Yorker     Delivery = "yorkers"
	Variation  Delivery = "variation"
)

var deliveryCatalogue = map[BowlerType][]Delivery{
	OffSpin: {OffBreak, ArmBall, Doosra, CarromBall},
	LegSpin: {LegBreak, Googly, Slider, Flipper, TopSpin},
	Fast:    {Pace, Swing, Seam, Bouncer, Yorker},
	Medium:  {Pace, Swing, Seam, Yorker},
}

// DeliveriesFor lists the candidate deliveries for a bowler type.
// Unknown types only bowl a generic variation.
func DeliveriesFor(t BowlerType) []Delivery {
	if d, ok := deliveryCatalogue[t]; ok {
		return append([]Delivery(nil), d...)
	}
	return []Delivery{Variation}
}
