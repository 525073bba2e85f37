package engine

import (
	"fmt"

	"github.com/DhavalSuthar-24/cricsim/internal/models"
)

// scriptedRand replays fixed values, repeating the last one once exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func skillMap(deliveries []Delivery, v int) map[Delivery]models.Skill {
	m := make(map[Delivery]models.Skill, len(deliveries))
	for _, d := range deliveries {
		m[d] = models.NewSkill(v)
	}
	return m
}

func bowlerWith(id uint, t BowlerType, skill int) *Player {
	return &Player{
		ID:             id,
		Name:           fmt.Sprintf("bowler-%d", id),
		Overall:        skill,
		Bowling:        models.NewSkill(skill),
		BowlingProfile: &BowlingProfile{Type: t, Skills: skillMap(DeliveriesFor(t), skill)},
	}
}

func batsmanWith(id uint, t BowlerType, skill int) *Player {
	return &Player{
		ID:             id,
		Name:           fmt.Sprintf("batsman-%d", id),
		Overall:        skill,
		Batting:        models.NewSkill(skill),
		BattingProfile: &BattingProfile{Skills: skillMap(DeliveriesFor(t), skill)},
	}
}

// squad builds a team of n plain players with descending overall skill.
func squad(teamID uint, n int) Team {
	t := Team{ID: teamID, Name: fmt.Sprintf("team-%d", teamID), OwnerID: teamID * 10}
	for i := 0; i < n; i++ {
		t.Players = append(t.Players, Player{
			ID:       teamID*100 + uint(i) + 1,
			Name:     fmt.Sprintf("p%d-%d", teamID, i+1),
			Overall:  90 - i,
			Bowling:  models.NewSkill(60),
			Batting:  models.NewSkill(60),
			Fielding: models.NewSkill(60),
		})
	}
	return t
}

// onlyOutcome returns tables whose base distribution always yields kind.
func onlyOutcome(kind OutcomeKind) Tables {
	t := DefaultTables()
	t.Base = Distribution{}
	t.Base[kind] = 1
	return t
}
