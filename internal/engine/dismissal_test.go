package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/cricsim/internal/models"
)

// bowledOrStumped leaves only bowled and stumped in play, one unit each.
func bowledOrStumped() Tables {
	t := DefaultTables()
	for i := range t.Dismissal {
		t.Dismissal[i].Weight = 0
		if t.Dismissal[i].Kind == Bowled || t.Dismissal[i].Kind == Stumped {
			t.Dismissal[i].Weight = 1
		}
	}
	return t
}

func TestDismissalResolver_KeeperBoost(t *testing.T) {
	r := NewDismissalResolver(bowledOrStumped())
	bowler := &Player{ID: 1, Name: "Jones", Bowling: models.NewSkill(60)}

	tests := []struct {
		name   string
		keeper *Player
		want   DismissalKind
	}{
		// r = 0.45 * total: total 2 lands in bowled, total 2.5 lands in stumped
		{"average keeper", &Player{ID: 2, Keeping: models.NewSkill(70)}, Bowled},
		{"sharp keeper", &Player{ID: 2, Keeping: models.NewSkill(71)}, Stumped},
		{"no keeper", nil, Bowled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Resolve(bowler, tt.keeper, nil, &scriptedRand{floats: []float64{0.45}})
			assert.Equal(t, tt.want, d.Kind)
			if tt.want == Stumped {
				assert.Same(t, tt.keeper, d.Fielder)
			}
		})
	}
}

func TestDismissalResolver_BowlerBoost(t *testing.T) {
	r := NewDismissalResolver(bowledOrStumped())
	keeper := &Player{ID: 2, Keeping: models.NewSkill(40)}

	// total 2 -> r 1.1 is stumped; boosted bowled (1.3) swallows it
	d := r.Resolve(&Player{ID: 1, Bowling: models.NewSkill(80)}, keeper, nil, &scriptedRand{floats: []float64{0.55}})
	assert.Equal(t, Stumped, d.Kind)

	d = r.Resolve(&Player{ID: 1, Bowling: models.NewSkill(81)}, keeper, nil, &scriptedRand{floats: []float64{0.55}})
	assert.Equal(t, Bowled, d.Kind)
	assert.Nil(t, d.Fielder)
}

func TestDismissalResolver_CaughtPicksFromLineup(t *testing.T) {
	tables := DefaultTables()
	for i := range tables.Dismissal {
		tables.Dismissal[i].Weight = 0
		if tables.Dismissal[i].Kind == Caught {
			tables.Dismissal[i].Weight = 1
		}
	}
	r := NewDismissalResolver(tables)
	lineup := []*Player{{ID: 10}, {ID: 11}, {ID: 12}}

	d := r.Resolve(&Player{ID: 1}, nil, lineup, &scriptedRand{floats: []float64{0.3}, ints: []int{2}})
	assert.Equal(t, Caught, d.Kind)
	assert.Same(t, lineup[2], d.Fielder)

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		d := r.Resolve(&Player{ID: 1}, nil, lineup, rng)
		assert.Contains(t, lineup, d.Fielder)
	}
}

func TestDismissalResolver_DefaultDistribution(t *testing.T) {
	r := NewDismissalResolver(DefaultTables())
	rng := rand.New(rand.NewSource(99))
	counts := map[DismissalKind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[r.Resolve(&Player{ID: 1}, nil, []*Player{{ID: 3}}, rng).Kind]++
	}
	assert.InDelta(t, 0.35, float64(counts[Caught])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts[Bowled])/n, 0.02)
	assert.InDelta(t, 0.05, float64(counts[HitWicket])/n, 0.01)
}

func TestDismissal_Describe(t *testing.T) {
	bowler := &Player{ID: 1, Name: "Jones"}
	fielder := &Player{ID: 2, Name: "Smith"}

	tests := []struct {
		d    Dismissal
		want string
	}{
		{Dismissal{Kind: Bowled}, "b Jones"},
		{Dismissal{Kind: Caught, Fielder: fielder}, "c Smith b Jones"},
		{Dismissal{Kind: Caught, Fielder: bowler}, "c & b Jones"},
		{Dismissal{Kind: LBW}, "lbw b Jones"},
		{Dismissal{Kind: Stumped, Fielder: fielder}, "st Smith b Jones"},
		{Dismissal{Kind: RunOut}, "run out"},
		{Dismissal{Kind: HitWicket}, "hit wicket b Jones"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Describe(bowler))
	}
}
