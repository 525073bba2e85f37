package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func script(kinds ...OutcomeKind) func(int) Ball {
	i := 0
	return func(n int) Ball {
		k := kinds[i]
		i++
		return Ball{Number: n, Outcome: NewOutcome(k)}
	}
}

func TestPlayOver(t *testing.T) {
	tests := []struct {
		name       string
		balls      []OutcomeKind
		wantBalls  int
		wantLegal  int
		wantRuns   int
		wantWicket int
		wantState  OverState
		maiden     bool
	}{
		{
			name:      "six legal balls",
			balls:     []OutcomeKind{Single, Dot, Four, Dot, Two, Six},
			wantBalls: 6, wantLegal: 6, wantRuns: 13, wantState: OverComplete,
		},
		{
			name:      "wides and no-balls are rebowled",
			balls:     []OutcomeKind{Wide, Dot, NoBall, Dot, Wide, Dot, Dot, Dot, Dot},
			wantBalls: 9, wantLegal: 6, wantRuns: 3, wantState: OverComplete,
		},
		{
			name:      "wicket on ball two ends the over",
			balls:     []OutcomeKind{Single, Wicket, Six, Six, Six, Six},
			wantBalls: 2, wantLegal: 2, wantRuns: 1, wantWicket: 1, wantState: OverCompleteEarly,
		},
		{
			name:      "wicket after a wide",
			balls:     []OutcomeKind{Wide, Wicket},
			wantBalls: 2, wantLegal: 1, wantRuns: 1, wantWicket: 1, wantState: OverCompleteEarly,
		},
		{
			name:      "maiden",
			balls:     []OutcomeKind{Dot, Dot, Dot, Dot, Dot, Dot},
			wantBalls: 6, wantLegal: 6, wantState: OverComplete, maiden: true,
		},
		{
			name:      "wicket maiden is not a full over",
			balls:     []OutcomeKind{Dot, Dot, Dot, Dot, Dot, Wicket},
			wantBalls: 6, wantLegal: 6, wantWicket: 1, wantState: OverCompleteEarly,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := playOver(3, 42, script(tt.balls...))

			assert.Equal(t, 3, o.Number)
			assert.Equal(t, uint(42), o.BowlerID)
			assert.Len(t, o.Balls, tt.wantBalls)
			assert.Equal(t, tt.wantLegal, o.LegalBalls)
			assert.LessOrEqual(t, o.LegalBalls, BallsPerOver)
			assert.Equal(t, tt.wantRuns, o.Runs)
			assert.Equal(t, tt.wantWicket, o.Wickets)
			assert.Equal(t, tt.wantState, o.State)
			assert.Equal(t, tt.maiden, o.Maiden())
			for i, b := range o.Balls {
				assert.Equal(t, i+1, b.Number)
			}
		})
	}
}
