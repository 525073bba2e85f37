package rating

import (
	"testing"

	"github.com/DhavalSuthar-24/cricsim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// performanceRow mirrors the columns career figures read from the match package's table.
type performanceRow struct {
	ID           uint `gorm:"primarykey"`
	UserID       uint
	Runs         int
	BallsFaced   int
	Dismissed    bool
	RunsConceded int
	Wickets      int
}

func (performanceRow) TableName() string { return performanceTable }

func newRepo(t *testing.T) (*gorm.DB, RatingRepository) {
	t.Helper()
	db := testutil.OpenDB(t, append(Models(), &performanceRow{})...)
	return db, NewRatingRepository(db)
}

func completedMatch() MatchResult {
	return MatchResult{
		MatchID:      7,
		RatingFactor: 1,
		Completed:    true,
		Home:         Side{UserID: 1, TeamName: "Lions", Won: true},
		Away:         Side{UserID: 2, TeamName: "Tigers"},
	}
}

func applyInTx(t *testing.T, repo RatingRepository, m MatchResult) *Outcome {
	t.Helper()
	var out *Outcome
	require.NoError(t, repo.WithTransaction(func(tx RatingRepository) error {
		var err error
		out, err = Apply(tx, m)
		return err
	}))
	return out
}

func TestApply_FreshProfiles(t *testing.T) {
	db, repo := newRepo(t)

	out := applyInTx(t, repo, completedMatch())
	assert.InDelta(t, 11.2, out.Home.Delta, 1e-9)
	assert.InDelta(t, -11.2, out.Away.Delta, 1e-9)

	winner, err := repo.GetProfile(1)
	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.InDelta(t, 1011.2, winner.CurrentRating, 1e-9)
	assert.InDelta(t, 1011.2, winner.PeakRating, 1e-9)
	assert.Equal(t, 1, winner.CareerMatches)
	assert.Equal(t, 1, winner.CareerWins)

	loser, err := repo.GetProfile(2)
	require.NoError(t, err)
	assert.InDelta(t, 988.8, loser.CurrentRating, 1e-9)
	assert.InDelta(t, 1000, loser.PeakRating, 1e-9)
	assert.Equal(t, 1, loser.CareerLosses)

	history, total, err := repo.GetHistory(2, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Lost vs Lions", history[0].Reason)
	assert.InDelta(t, -11.2, history[0].RatingChange, 1e-9)
	require.NotNil(t, history[0].MatchID)
	assert.Equal(t, uint(7), *history[0].MatchID)

	var rows int64
	require.NoError(t, db.Model(&RatingHistory{}).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func TestApply_Preconditions(t *testing.T) {
	_, repo := newRepo(t)

	notDone := completedMatch()
	notDone.Completed = false
	noWinner := completedMatch()
	noWinner.Home.Won = false
	sameOwner := completedMatch()
	sameOwner.Away.UserID = sameOwner.Home.UserID

	tests := []struct {
		name string
		m    MatchResult
		want error
	}{
		{"not completed", notDone, ErrMatchNotCompleted},
		{"no winner", noWinner, ErrNoWinner},
		{"same owner", sameOwner, ErrSameOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(repo, tt.m)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	p, err := repo.GetProfile(1)
	require.NoError(t, err)
	assert.Nil(t, p, "rejected updates must not touch profiles")
}

func TestApply_RollsBackWithTransaction(t *testing.T) {
	db, repo := newRepo(t)
	err := repo.WithTransaction(func(tx RatingRepository) error {
		if _, err := Apply(tx, completedMatch()); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var profiles, history int64
	require.NoError(t, db.Model(&UserProfile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&RatingHistory{}).Count(&history).Error)
	assert.Zero(t, profiles)
	assert.Zero(t, history)
}

func TestApply_MilestoneAndCareerCounters(t *testing.T) {
	_, repo := newRepo(t)
	require.NoError(t, repo.SaveProfile(&UserProfile{UserID: 1, CurrentRating: 1190, PeakRating: 1250}))
	require.NoError(t, repo.SaveProfile(&UserProfile{UserID: 2, CurrentRating: 1300, PeakRating: 1300}))

	m := completedMatch()
	m.Home.Lines = []Line{{Runs: 40, BallsFaced: 30}, {LegalBallsBowled: 24, RunsConceded: 30, Wickets: 3}}
	out := applyInTx(t, repo, m)
	assert.Greater(t, out.Home.NewRating, 1200.0)
	assert.Less(t, out.Home.NewRating, 1250.0)
	assert.EqualValues(t, 1, out.Achievements)

	p, err := repo.GetProfile(1)
	require.NoError(t, err)
	assert.InDelta(t, 1250, p.PeakRating, 1e-9, "peak only rises")
	assert.Equal(t, 40, p.CareerRuns)
	assert.Equal(t, 3, p.CareerWickets)

	list, total, err := repo.GetAchievements(1, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, KindRatingMilestone, list[0].Kind)
	assert.Equal(t, 1200, list[0].Milestone)

	// Dropping below and climbing back does not award the milestone twice.
	_, err = repo.AwardAchievements(MilestoneAchievements(1, 1100, 1205))
	require.NoError(t, err)
	_, total, err = repo.GetAchievements(1, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestAwardMatchAchievements_Idempotent(t *testing.T) {
	db, repo := newRepo(t)
	m := completedMatch()
	m.Home.Lines = []Line{{Runs: 120, BallsFaced: 70}}
	m.Away.Lines = []Line{{LegalBallsBowled: 24, RunsConceded: 18, Wickets: 5}}

	first, err := AwardMatchAchievements(repo, m)
	require.NoError(t, err)
	assert.EqualValues(t, 2, first)

	again, err := AwardMatchAchievements(repo, m)
	require.NoError(t, err)
	assert.EqualValues(t, 0, again)

	var count int64
	require.NoError(t, db.Model(&Achievement{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	other := m
	other.MatchID = 8
	_, err = AwardMatchAchievements(repo, other)
	require.NoError(t, err)
	require.NoError(t, db.Model(&Achievement{}).Count(&count).Error)
	assert.EqualValues(t, 4, count, "a new match earns its own achievements")
}

func TestLeaderboardAndCareer(t *testing.T) {
	db, repo := newRepo(t)
	require.NoError(t, repo.SaveProfile(&UserProfile{UserID: 1, CurrentRating: 1100, PeakRating: 1100, CareerMatches: 4, CareerWins: 3, CareerRuns: 250}))
	require.NoError(t, repo.SaveProfile(&UserProfile{UserID: 2, CurrentRating: 1250, PeakRating: 1300}))
	require.NoError(t, repo.SaveProfile(&UserProfile{UserID: 3, CurrentRating: 900, PeakRating: 1000}))

	board, total, err := repo.GetLeaderboard(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, board, 2)
	assert.Equal(t, uint(2), board[0].UserID)
	assert.Equal(t, uint(1), board[1].UserID)

	require.NoError(t, db.Create(&[]performanceRow{
		{UserID: 1, Runs: 60, BallsFaced: 40, Dismissed: true},
		{UserID: 1, Runs: 30, BallsFaced: 20, Dismissed: false},
		{UserID: 1, Runs: 0, BallsFaced: 5, Dismissed: true, RunsConceded: 28, Wickets: 2},
		{UserID: 1, RunsConceded: 40, Wickets: 0},
		{UserID: 2, Runs: 99, BallsFaced: 50, Dismissed: true},
	}).Error)

	figures, err := repo.GetCareerFigures(1)
	require.NoError(t, err)
	assert.EqualValues(t, 90, figures.BattingRuns)
	assert.EqualValues(t, 1, figures.Dismissals)
	assert.EqualValues(t, 90, figures.StrikeRateRuns)
	assert.EqualValues(t, 65, figures.BallsFaced)
	assert.EqualValues(t, 28, figures.WicketRunsAgainst)
	assert.EqualValues(t, 2, figures.Wickets)

	p, err := repo.GetProfile(1)
	require.NoError(t, err)
	career := BuildCareer(p, figures)
	assert.InDelta(t, 75, career.Matches.WinPercentage, 1e-9)
	assert.InDelta(t, 90, career.Batting.Average, 1e-9)
	assert.InDelta(t, 138.46, career.Batting.StrikeRate, 1e-9)
	assert.InDelta(t, 14, career.Bowling.Average, 1e-9)
	assert.Equal(t, 250, career.Batting.TotalRuns)
}

func TestBuildCareer_NoDismissals(t *testing.T) {
	p := newProfile(5)
	c := BuildCareer(&p, &CareerFigures{BattingRuns: 45})
	assert.Equal(t, 45.0, c.Batting.Average)
	assert.Zero(t, c.Batting.StrikeRate)
	assert.Zero(t, c.Matches.WinPercentage)
	assert.Equal(t, DefaultRating, c.Rating.Current)
}
