package engine

// Assistance is what a pitch or the weather offers each bowling style (0-100).
type Assistance struct {
	Spin     int
	Seam     int
	Swing    int
	Humidity int
}

// For returns the assistance value a bowler type benefits from. Spinners use
// spin; everyone else the mean of seam and swing.
func (a Assistance) For(t BowlerType) float64 {
	if t.IsSpin() {
		return float64(a.Spin)
	}
	return float64(a.Seam+a.Swing) / 2
}

// Conditions are the optional pitch and weather profiles of a match.
type Conditions struct {
	Pitch   *Assistance
	Weather *Assistance
}

// DeliveryContext is everything the calculator looks at for one ball.
type DeliveryContext struct {
	Bowler          *Player
	Batsman         *Player
	Keeper          *Player
	FieldingAverage float64
}

// Calculator turns player skills and conditions into an outcome distribution.
type Calculator struct {
	tables     Tables
	conditions Conditions
}

// NewCalculator copies tables and conditions so later changes by the caller
// are not observed.
func NewCalculator(tables Tables, conditions Conditions) *Calculator {
	c := &Calculator{tables: tables}
	if conditions.Pitch != nil {
		p := *conditions.Pitch
		c.conditions.Pitch = &p
	}
	if conditions.Weather != nil {
		w := *conditions.Weather
		c.conditions.Weather = &w
	}
	return c
}

// Tables returns the calculator's tables.
func (c *Calculator) Tables() Tables {
	return c.tables
}

// Weights returns the adjusted distribution for one delivery and the
// delivery that was chosen. Without bowling or batting profiles the base
// distribution is returned unchanged and the delivery is empty.
func (c *Calculator) Weights(ctx DeliveryContext, rng Rand) (Distribution, Delivery) {
	bowler, batsman := ctx.Bowler, ctx.Batsman
	if bowler == nil || batsman == nil || bowler.BowlingProfile == nil || batsman.BattingProfile == nil {
		return c.tables.Base, ""
	}

	delivery, bowlSkill, batSkill := c.chooseDelivery(bowler.BowlingProfile, batsman.BattingProfile, rng)

	type factor struct {
		skill  float64
		impact func(Impact) float64
	}
	factors := []factor{
		{float64(bowlSkill), func(i Impact) float64 { return i.Bowling }},
		{float64(batSkill), func(i Impact) float64 { return i.Batting }},
	}
	style := bowler.BowlingProfile.Type
	if p := c.conditions.Pitch; p != nil {
		factors = append(factors, factor{p.For(style), func(i Impact) float64 { return i.Pitch }})
	}
	if w := c.conditions.Weather; w != nil {
		factors = append(factors, factor{w.For(style), func(i Impact) float64 { return i.Weather }})
	}
	if k := ctx.Keeper; k != nil && k.KeepingProfile != nil {
		factors = append(factors, factor{float64(k.KeepingProfile.Overall.Neutral()), func(i Impact) float64 { return i.Keeping }})
	}
	factors = append(factors, factor{ctx.FieldingAverage, func(i Impact) float64 { return i.Fielding }})

	weights := c.tables.Base
	for k := range weights {
		for _, f := range factors {
			weights[k] = c.adjust(f.skill, f.impact(c.tables.Impacts[k]), weights[k])
		}
	}
	return weights, delivery
}

func (c *Calculator) adjust(skill, impact, weight float64) float64 {
	skillFactor := (skill - 50) / 50
	return max(c.tables.MinWeight, weight+skillFactor*impact*weight)
}

// chooseDelivery picks one of the bowler's deliveries, favouring those where
// the bowler's sub-skill most exceeds the batsman's.
func (c *Calculator) chooseDelivery(bowling *BowlingProfile, batting *BattingProfile, rng Rand) (Delivery, int, int) {
	candidates := DeliveriesFor(bowling.Type)
	weights := make([]float64, len(candidates))
	bowl := make([]int, len(candidates))
	bat := make([]int, len(candidates))
	for i, d := range candidates {
		bowl[i] = bowling.Skills[d].Neutral()
		bat[i] = batting.Skills[d].Neutral()
		weights[i] = float64(max(1, bowl[i]-bat[i]+50))
	}
	i := weightedIndex(rng, weights)
	return candidates[i], bowl[i], bat[i]
}

// Draw samples one outcome for the delivery. Byes and leg-byes get their run
// count from the extra-runs table.
func (c *Calculator) Draw(ctx DeliveryContext, rng Rand) Outcome {
	out, _ := c.DrawDelivery(ctx, rng)
	return out
}

// DrawDelivery is Draw that also reports which delivery was bowled.
func (c *Calculator) DrawDelivery(ctx DeliveryContext, rng Rand) (Outcome, Delivery) {
	weights, delivery := c.Weights(ctx, rng)
	kind := OutcomeKind(weightedIndex(rng, weights[:]))
	out := NewOutcome(kind)
	if kind == Bye || kind == LegBye {
		out.Runs = weightedIndex(rng, c.tables.ExtraRuns[:]) + 1
	}
	return out, delivery
}
