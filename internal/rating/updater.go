package rating

import (
	"errors"
	"fmt"
)

var (
	ErrMatchNotCompleted = errors.New("match is not completed")
	ErrNoWinner          = errors.New("match has no winner")
	ErrSameOwner         = errors.New("both teams belong to the same user")
)

// Side is one team's owner and its players' figures in a completed match.
type Side struct {
	UserID   uint
	TeamName string
	Won      bool
	Lines    []Line
}

// MatchResult is what the updater needs to know about a finished match.
type MatchResult struct {
	MatchID      uint
	TournamentID *uint
	RatingFactor float64
	Completed    bool
	Home, Away   Side
}

func (m MatchResult) context() MatchContext {
	return MatchContext{
		MatchID:      m.MatchID,
		TournamentID: m.TournamentID,
		Label:        fmt.Sprintf("%s vs %s", m.Home.TeamName, m.Away.TeamName),
	}
}

func (m MatchResult) validate() error {
	if !m.Completed {
		return ErrMatchNotCompleted
	}
	if m.Home.Won == m.Away.Won {
		return ErrNoWinner
	}
	if m.Home.UserID == m.Away.UserID {
		return ErrSameOwner
	}
	return nil
}

// Outcome reports the applied changes.
type Outcome struct {
	Home         Change `json:"home"`
	Away         Change `json:"away"`
	Achievements int64  `json:"achievements_awarded"`
}

// Apply rates both owners of a completed match, updates their profiles,
// appends one history row each and awards achievements. repo must be bound
// to the transaction that commits the match so both sides land together.
func Apply(repo RatingRepository, m MatchResult) (*Outcome, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	profiles, err := repo.LockProfiles(m.Home.UserID, m.Away.UserID)
	if err != nil {
		return nil, fmt.Errorf("lock profiles: %w", err)
	}
	home, away := profiles[m.Home.UserID], profiles[m.Away.UserID]
	if home == nil || away == nil {
		return nil, fmt.Errorf("profiles missing for users %d and %d", m.Home.UserID, m.Away.UserID)
	}

	homeChange, awayChange := Rate(
		Contender{UserID: m.Home.UserID, Rating: home.CurrentRating, Won: m.Home.Won, PerformanceAverage: AverageScore(m.Home.Lines)},
		Contender{UserID: m.Away.UserID, Rating: away.CurrentRating, Won: m.Away.Won, PerformanceAverage: AverageScore(m.Away.Lines)},
		KFactor(m.RatingFactor),
	)

	out := &Outcome{Home: homeChange, Away: awayChange}
	sides := []struct {
		profile  *UserProfile
		side     Side
		opponent string
		change   Change
	}{
		{home, m.Home, m.Away.TeamName, homeChange},
		{away, m.Away, m.Home.TeamName, awayChange},
	}

	var awards []Achievement
	for _, s := range sides {
		applyChange(s.profile, s.side, s.change)
		if err := repo.SaveProfile(s.profile); err != nil {
			return nil, fmt.Errorf("save profile of user %d: %w", s.side.UserID, err)
		}

		matchID := m.MatchID
		history := RatingHistory{
			UserID:       s.side.UserID,
			MatchID:      &matchID,
			TournamentID: m.TournamentID,
			OldRating:    s.change.OldRating,
			NewRating:    s.change.NewRating,
			RatingChange: s.change.Delta,
			Reason:       reason(s.side.Won, s.opponent),
		}
		if err := repo.CreateHistory(&history); err != nil {
			return nil, fmt.Errorf("rating history of user %d: %w", s.side.UserID, err)
		}

		awards = append(awards, MilestoneAchievements(s.side.UserID, s.change.OldRating, s.change.NewRating)...)
	}

	n, err := AwardMatchAchievements(repo, m)
	if err != nil {
		return nil, err
	}
	milestones, err := repo.AwardAchievements(awards)
	if err != nil {
		return nil, fmt.Errorf("award milestones: %w", err)
	}
	out.Achievements = n + milestones
	return out, nil
}

// AwardMatchAchievements records centuries and five-wicket hauls of a
// completed match. Running it again for the same match adds nothing.
func AwardMatchAchievements(repo RatingRepository, m MatchResult) (int64, error) {
	if !m.Completed {
		return 0, ErrMatchNotCompleted
	}
	ctx := m.context()
	list := MatchAchievements(m.Home.UserID, ctx, m.Home.Lines)
	list = append(list, MatchAchievements(m.Away.UserID, ctx, m.Away.Lines)...)
	n, err := repo.AwardAchievements(list)
	if err != nil {
		return 0, fmt.Errorf("award match achievements: %w", err)
	}
	return n, nil
}

func applyChange(p *UserProfile, s Side, c Change) {
	p.CurrentRating = c.NewRating
	if c.NewRating > p.PeakRating {
		p.PeakRating = c.NewRating
	}
	p.CareerMatches++
	if s.Won {
		p.CareerWins++
	} else {
		p.CareerLosses++
	}
	for _, l := range s.Lines {
		p.CareerRuns += l.Runs
		p.CareerWickets += l.Wickets
	}
}

func reason(won bool, opponent string) string {
	if won {
		return "Won vs " + opponent
	}
	return "Lost vs " + opponent
}
