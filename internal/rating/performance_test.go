package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want Scores
	}{
		{
			name: "no involvement is neutral",
			line: Line{},
			want: Scores{Overall: 0.5},
		},
		{
			name: "batting only",
			line: Line{Runs: 50, BallsFaced: 50},
			// 0.6*0.5 + 0.4*(100/150)
			want: Scores{Batting: 0.5666666666666667, Overall: 0.5666666666666667},
		},
		{
			name: "batting caps at a century scored quickly",
			line: Line{Runs: 150, BallsFaced: 60},
			want: Scores{Batting: 1, Overall: 1},
		},
		{
			name: "bowling only",
			// four overs, 24 runs: economy 6
			line: Line{LegalBallsBowled: 24, RunsConceded: 24, Wickets: 2},
			want: Scores{Bowling: 0.6*0.4 + 0.4*0.4, Overall: 0.6*0.4 + 0.4*0.4},
		},
		{
			name: "economy above ten scores zero for economy",
			line: Line{LegalBallsBowled: 6, RunsConceded: 20},
			want: Scores{Bowling: 0, Overall: 0},
		},
		{
			name: "fielding only counts when something happened",
			line: Line{Catches: 1, Stumpings: 1},
			want: Scores{Fielding: 2.0 / 3, Overall: 2.0 / 3},
		},
		{
			name: "all disciplines renormalize",
			line: Line{Runs: 100, BallsFaced: 100, LegalBallsBowled: 12, RunsConceded: 0, Wickets: 5, Catches: 3},
			// batting 0.6 + 0.4*(100/150); bowling 1; fielding 1
			want: func() Scores {
				bat := 0.6 + 0.4*(100.0/150)
				return Scores{Batting: bat, Bowling: 1, Fielding: 1, Overall: (bat*0.5 + 0.4 + 0.1) / 1.0}
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.line)
			assert.InDelta(t, tt.want.Batting, got.Batting, 1e-9)
			assert.InDelta(t, tt.want.Bowling, got.Bowling, 1e-9)
			assert.InDelta(t, tt.want.Fielding, got.Fielding, 1e-9)
			assert.InDelta(t, tt.want.Overall, got.Overall, 1e-9)
		})
	}
}

func TestScore_AlwaysInUnitInterval(t *testing.T) {
	for runs := 0; runs <= 200; runs += 37 {
		for balls := 0; balls <= 120; balls += 19 {
			for bowled := 0; bowled <= 24; bowled += 5 {
				for wkts := 0; wkts <= 7; wkts += 3 {
					s := Score(Line{Runs: runs, BallsFaced: balls, LegalBallsBowled: bowled, RunsConceded: runs / 2, Wickets: wkts, Catches: wkts % 4})
					assert.GreaterOrEqual(t, s.Overall, 0.0)
					assert.LessOrEqual(t, s.Overall, 1.0)
				}
			}
		}
	}
}

func TestAverageScore(t *testing.T) {
	assert.Equal(t, NeutralPerformance, AverageScore(nil))
	avg := AverageScore([]Line{{}, {Runs: 150, BallsFaced: 60}})
	assert.InDelta(t, 0.75, avg, 1e-12)
}
