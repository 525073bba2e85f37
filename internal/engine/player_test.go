package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/cricsim/internal/models"
)

func ids(ps []*Player) []uint {
	out := make([]uint, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestSelectPlayingEleven(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		_, err := SelectPlayingEleven(nil)
		assert.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("small roster plays everyone", func(t *testing.T) {
		roster := []Player{{ID: 1, Overall: 40}, {ID: 2, Overall: 70}, {ID: 3, Overall: 55}}
		lineup, err := SelectPlayingEleven(roster)
		require.NoError(t, err)
		assert.Equal(t, []uint{2, 3, 1}, ids(lineup))
	})

	t.Run("flagged first then best of the rest", func(t *testing.T) {
		var roster []Player
		for i := 1; i <= 15; i++ {
			roster = append(roster, Player{ID: uint(i), Overall: i * 5, FirstEleven: i <= 3})
		}
		lineup, err := SelectPlayingEleven(roster)
		require.NoError(t, err)
		require.Len(t, lineup, PlayingEleven)
		assert.Equal(t, []uint{1, 2, 3, 15, 14, 13, 12, 11, 10, 9, 8}, ids(lineup))
	})

	t.Run("too many flagged keeps the best eleven", func(t *testing.T) {
		var roster []Player
		for i := 1; i <= 13; i++ {
			roster = append(roster, Player{ID: uint(i), Overall: 50 + i, FirstEleven: true})
		}
		lineup, err := SelectPlayingEleven(roster)
		require.NoError(t, err)
		require.Len(t, lineup, PlayingEleven)
		assert.NotContains(t, ids(lineup), uint(1))
		assert.NotContains(t, ids(lineup), uint(2))
		assert.Equal(t, uint(13), lineup[0].ID)
	})

	t.Run("ties keep roster order", func(t *testing.T) {
		var roster []Player
		for i := 1; i <= 14; i++ {
			roster = append(roster, Player{ID: uint(i), Overall: 60})
		}
		lineup, err := SelectPlayingEleven(roster)
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, ids(lineup))
	})
}

func TestNewSide(t *testing.T) {
	t.Run("roles", func(t *testing.T) {
		team := Team{ID: 1, Name: "Strikers", OwnerID: 7, Players: []Player{
			{ID: 1, Overall: 90, Batting: models.NewSkill(90), Fielding: models.NewSkill(80)},
			{ID: 2, Overall: 80, Keeping: models.NewSkill(85), Fielding: models.NewSkill(70)},
			{ID: 3, Overall: 70, Bowling: models.NewSkill(75)},
			{ID: 4, Overall: 60, Bowling: models.NewSkill(0), Keeping: models.NewSkill(60), Fielding: models.NewSkill(60)},
			{ID: 5, Overall: 50, Bowling: models.NewSkill(65)},
		}}
		side, err := NewSide(team)
		require.NoError(t, err)

		assert.Equal(t, uint(7), side.OwnerID)
		assert.Equal(t, []uint{3, 5}, ids(side.Bowlers))
		require.NotNil(t, side.Keeper)
		assert.Equal(t, uint(2), side.Keeper.ID)
		assert.InDelta(t, 70.0, side.FieldingAverage, 1e-9)
		assert.Same(t, side.Bowlers[0], side.BowlerFor(0))
		assert.Same(t, side.Bowlers[1], side.BowlerFor(1))
		assert.Same(t, side.Bowlers[0], side.BowlerFor(2))
	})

	t.Run("no bowlers falls back to first six", func(t *testing.T) {
		var team Team
		for i := 1; i <= 8; i++ {
			team.Players = append(team.Players, Player{ID: uint(i), Overall: 100 - i})
		}
		side, err := NewSide(team)
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, ids(side.Bowlers))
		assert.Nil(t, side.Keeper)
		assert.Equal(t, float64(models.NeutralSkill), side.FieldingAverage)
	})

	t.Run("empty roster", func(t *testing.T) {
		_, err := NewSide(Team{Name: "Nobody"})
		assert.ErrorIs(t, err, ErrEmptyRoster)
	})
}
