package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAchievements(t *testing.T) {
	tid := uint(3)
	ctx := MatchContext{MatchID: 9, TournamentID: &tid, Label: "Lions vs Tigers"}
	got := MatchAchievements(4, ctx, []Line{
		{Runs: 99},
		{Runs: 104},
		{Wickets: 5},
		{Runs: 100, Wickets: 6},
	})

	require.Len(t, got, 4)
	assert.Equal(t, KindCentury, got[0].Kind)
	assert.Equal(t, "Century - 104 runs", got[0].Title)
	assert.Equal(t, "Scored 104 runs in Lions vs Tigers", got[0].Description)
	assert.Equal(t, KindFiveWickets, got[1].Kind)
	assert.Equal(t, "Five-wicket haul - 5 wickets", got[1].Title)
	for _, a := range got {
		assert.Equal(t, uint(4), a.UserID)
		assert.Equal(t, uint(9), a.SourceMatchID)
		require.NotNil(t, a.MatchID)
		assert.Equal(t, uint(9), *a.MatchID)
		assert.Equal(t, &tid, a.TournamentID)
		assert.Zero(t, a.Milestone)
	}
}

func TestMilestoneAchievements(t *testing.T) {
	tests := []struct {
		name     string
		old, new float64
		want     []int
	}{
		{"no crossing", 1000, 1150, nil},
		{"lands exactly on a milestone", 1190, 1200, []int{1200}},
		{"starting on a milestone does not count", 1200, 1300, nil},
		{"jump over several", 1350, 1810, []int{1400, 1600, 1800}},
		{"falling never awards", 1450, 1390, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MilestoneAchievements(1, tt.old, tt.new)
			var milestones []int
			for _, a := range got {
				assert.Equal(t, KindRatingMilestone, a.Kind)
				assert.Zero(t, a.SourceMatchID)
				assert.Nil(t, a.MatchID)
				milestones = append(milestones, a.Milestone)
			}
			assert.Equal(t, tt.want, milestones)
		})
	}
}
