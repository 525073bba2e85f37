// player/model.go
package player

import (
	"github.com/DhavalSuthar-24/cricsim/internal/engine"
	"github.com/DhavalSuthar-24/cricsim/internal/models"
	"gorm.io/gorm"
)

type PlayerType string

const (
	TypeBatsman             PlayerType = "BATSMAN"
	TypeBowler              PlayerType = "BOWLER"
	TypeAllRounder          PlayerType = "ALL_ROUNDER"
	TypeWicketKeeper        PlayerType = "WICKET_KEEPER"
	TypeWicketKeeperBatsman PlayerType = "WICKET_KEEPER_BATSMAN"
)

// Player is a squad member. Discipline skills are NULL when the player has
// never been rated in that discipline.
type Player struct {
	gorm.Model
	Name          string       `json:"name" gorm:"not null"`
	PlayerType    PlayerType   `json:"player_type" gorm:"index;default:'BATSMAN'"`
	BattingHand   string       `json:"batting_hand" gorm:"default:'RIGHT'"`
	BowlingStyle  string       `json:"bowling_style,omitempty"`
	OverallSkill  int          `json:"overall_skill" gorm:"default:50"`
	Batting       models.Skill `json:"batting"`
	Bowling       models.Skill `json:"bowling"`
	Fielding      models.Skill `json:"fielding"`
	Wicketkeeping models.Skill `json:"wicketkeeping"`
	Fitness       int          `json:"fitness" gorm:"default:50"`
	TeamID        *uint        `json:"team_id,omitempty" gorm:"index"`
	FirstEleven   bool         `json:"first_eleven" gorm:"default:false"`
	BasePrice     int          `json:"base_price" gorm:"default:100000"`
	SoldPrice     *int         `json:"sold_price,omitempty"`

	BowlingAttributes *BowlingAttributes `json:"bowling_attributes,omitempty" gorm:"foreignKey:PlayerID"`
	BattingAttributes *BattingAttributes `json:"batting_attributes,omitempty" gorm:"foreignKey:PlayerID"`
	KeepingAttributes *KeepingAttributes `json:"keeping_attributes,omitempty" gorm:"foreignKey:PlayerID"`
}

// BowlingAttributes holds the bowler's style and per-delivery skill.
type BowlingAttributes struct {
	gorm.Model
	PlayerID   uint              `json:"player_id" gorm:"uniqueIndex;not null"`
	BowlerType engine.BowlerType `json:"bowler_type" gorm:"default:'OFF_SPIN'"`

	OffBreak   models.Skill `json:"off_break"`
	ArmBall    models.Skill `json:"arm_ball"`
	Doosra     models.Skill `json:"doosra"`
	CarromBall models.Skill `json:"carrom_ball"`
	LegBreak   models.Skill `json:"leg_break"`
	Googly     models.Skill `json:"googly"`
	Slider     models.Skill `json:"slider"`
	Flipper    models.Skill `json:"flipper"`
	TopSpin    models.Skill `json:"top_spin"`
	Pace       models.Skill `json:"pace"`
	Swing      models.Skill `json:"swing"`
	Seam       models.Skill `json:"seam"`
	Bouncer    models.Skill `json:"bouncer"`
	Yorkers    models.Skill `json:"yorkers"`
	Variation  models.Skill `json:"variation"`
	Control    models.Skill `json:"control"`
}

// BattingAttributes is how well the batsman plays each delivery.
type BattingAttributes struct {
	gorm.Model
	PlayerID uint `json:"player_id" gorm:"uniqueIndex;not null"`

	OffBreak   models.Skill `json:"off_break"`
	ArmBall    models.Skill `json:"arm_ball"`
	Doosra     models.Skill `json:"doosra"`
	CarromBall models.Skill `json:"carrom_ball"`
	LegBreak   models.Skill `json:"leg_break"`
	Googly     models.Skill `json:"googly"`
	Slider     models.Skill `json:"slider"`
	Flipper    models.Skill `json:"flipper"`
	TopSpin    models.Skill `json:"top_spin"`
	Pace       models.Skill `json:"pace"`
	Swing      models.Skill `json:"swing"`
	Seam       models.Skill `json:"seam"`
	Bouncer    models.Skill `json:"bouncer"`
	Yorkers    models.Skill `json:"yorkers"`

	PowerHitting  models.Skill `json:"power_hitting"`
	Technique     models.Skill `json:"technique"`
	Footwork      models.Skill `json:"footwork"`
	ShotSelection models.Skill `json:"shot_selection"`
}

// KeepingAttributes marks a player as a genuine wicketkeeper.
type KeepingAttributes struct {
	gorm.Model
	PlayerID     uint         `json:"player_id" gorm:"uniqueIndex;not null"`
	OverallSkill models.Skill `json:"overall_skill"`
	Catching     models.Skill `json:"catching"`
	Stumping     models.Skill `json:"stumping"`
	Reflexes     models.Skill `json:"reflexes"`
}

// Skills maps the bowling columns onto the engine's delivery names.
func (a *BowlingAttributes) Skills() map[engine.Delivery]models.Skill {
	return map[engine.Delivery]models.Skill{
		engine.OffBreak:   a.OffBreak,
		engine.ArmBall:    a.ArmBall,
		engine.Doosra:     a.Doosra,
		engine.CarromBall: a.CarromBall,
		engine.LegBreak:   a.LegBreak,
		engine.Googly:     a.Googly,
		engine.Slider:     a.Slider,
		engine.Flipper:    a.Flipper,
		engine.TopSpin:    a.TopSpin,
		engine.Pace:       a.Pace,
		engine.Swing:      a.Swing,
		engine.Seam:       a.Seam,
		engine.Bouncer:    a.Bouncer,
		engine.Yorker:     a.Yorkers,
		engine.Variation:  a.Variation,
	}
}

// Skills maps the batting columns onto the engine's delivery names.
func (a *BattingAttributes) Skills() map[engine.Delivery]models.Skill {
	return map[engine.Delivery]models.Skill{
		engine.OffBreak:   a.OffBreak,
		engine.ArmBall:    a.ArmBall,
		engine.Doosra:     a.Doosra,
		engine.CarromBall: a.CarromBall,
		engine.LegBreak:   a.LegBreak,
		engine.Googly:     a.Googly,
		engine.Slider:     a.Slider,
		engine.Flipper:    a.Flipper,
		engine.TopSpin:    a.TopSpin,
		engine.Pace:       a.Pace,
		engine.Swing:      a.Swing,
		engine.Seam:       a.Seam,
		engine.Bouncer:    a.Bouncer,
		engine.Yorker:     a.Yorkers,
	}
}

// ToEngine converts the stored player into the simulation's view. Absent
// attribute records stay absent so the calculator can fall back.
func (p *Player) ToEngine() engine.Player {
	ep := engine.Player{
		ID:          p.ID,
		Name:        p.Name,
		Overall:     p.OverallSkill,
		Batting:     p.Batting,
		Bowling:     p.Bowling,
		Fielding:    p.Fielding,
		Keeping:     p.Wicketkeeping,
		FirstEleven: p.FirstEleven,
	}
	if a := p.BowlingAttributes; a != nil {
		ep.BowlingProfile = &engine.BowlingProfile{Type: a.BowlerType, Skills: a.Skills()}
	}
	if a := p.BattingAttributes; a != nil {
		ep.BattingProfile = &engine.BattingProfile{Skills: a.Skills()}
	}
	if a := p.KeepingAttributes; a != nil {
		ep.KeepingProfile = &engine.KeepingProfile{Overall: a.OverallSkill}
	}
	return ep
}

// ToEngineRoster converts a roster, keeping its order.
func ToEngineRoster(players []Player) []engine.Player {
	out := make([]engine.Player, len(players))
	for i := range players {
		out[i] = players[i].ToEngine()
	}
	return out
}
