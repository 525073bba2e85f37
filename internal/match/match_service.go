package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/cricsim/internal/condition"
	"github.com/DhavalSuthar-24/cricsim/internal/engine"
	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"github.com/DhavalSuthar-24/cricsim/internal/rating"
	"github.com/DhavalSuthar-24/cricsim/internal/team"
	"github.com/DhavalSuthar-24/cricsim/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchNotScheduled = errors.New("only scheduled matches can be simulated")
	ErrInvalidMaxOvers   = errors.New("max overs must be at least 1")
	ErrSameTeam          = errors.New("a team cannot play itself")
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")
)

// PreviewFieldingAverage stands in for the fielding side when a single ball
// is previewed outside a match.
const PreviewFieldingAverage = 50.0

// Service runs matches through the engine and commits the outcome.
type Service struct {
	db           *gorm.DB
	locker       rating.Locker
	tables       engine.Tables
	newRand      func() engine.Rand
	defaultOvers int
}

// NewService builds a match service. A nil locker means database row locks
// are the only serialization of rating updates.
func NewService(db *gorm.DB, locker rating.Locker, defaultOvers int) *Service {
	if locker == nil {
		locker = rating.NoLocks()
	}
	if defaultOvers < 1 {
		defaultOvers = MatchTypeT20.DefaultOvers()
	}
	return &Service{
		db:           db,
		locker:       locker,
		tables:       engine.DefaultTables(),
		newRand:      func() engine.Rand { return engine.NewRand() },
		defaultOvers: defaultOvers,
	}
}

// TeamScore is one side's line in a Summary.
type TeamScore struct {
	TeamID       uint     `json:"team_id"`
	Name         string   `json:"name"`
	OwnerID      uint     `json:"owner_id"`
	Runs         int      `json:"runs"`
	Wickets      int      `json:"wickets"`
	Overs        float64  `json:"overs"`
	RatingChange *float64 `json:"rating_change,omitempty"`
}

// Summary is returned to the caller of Simulate.
type Summary struct {
	MatchID            uint                `json:"match_id"`
	Status             MatchStatus         `json:"status"`
	MaxOvers           int                 `json:"max_overs"`
	Team1              TeamScore           `json:"team1"`
	Team2              TeamScore           `json:"team2"`
	BattingFirstTeamID uint                `json:"batting_first_team_id"`
	Target             int                 `json:"target"`
	WinnerID           uint                `json:"winner_id"`
	WinnerName         string              `json:"winner_name"`
	Margin             engine.Margin       `json:"margin"`
	Result             string              `json:"result"`
	Innings            []Innings           `json:"innings"`
	Performances       []PlayerPerformance `json:"performances"`
	Rating             *rating.Outcome     `json:"rating,omitempty"`
	Achievements       int64               `json:"achievements_awarded"`
}

// resolveOvers picks the innings length: the caller's value, else the
// match format, else the configured default.
func (s *Service) resolveOvers(m *Match, maxOvers int) (int, error) {
	switch {
	case maxOvers < 0:
		return 0, ErrInvalidMaxOvers
	case maxOvers > 0:
		return maxOvers, nil
	case m.Overs > 0:
		return m.Overs, nil
	}
	return s.defaultOvers, nil
}

// Simulate plays a SCHEDULED match and commits the result, ball records,
// player performances and rating changes in one transaction. Nothing is
// written when any step fails.
func (s *Service) Simulate(ctx context.Context, matchID uint, maxOvers int) (*Summary, error) {
	repo := NewGormMatchRepository(s.db.WithContext(ctx))
	m, err := repo.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != StatusScheduled {
		return nil, ErrMatchNotScheduled
	}
	if m.Team1ID == m.Team2ID {
		return nil, ErrSameTeam
	}
	overs, err := s.resolveOvers(m, maxOvers)
	if err != nil {
		return nil, err
	}

	teams := team.NewTeamRepository(s.db.WithContext(ctx))
	home, err := loadRoster(teams, m.Team1ID)
	if err != nil {
		return nil, err
	}
	away, err := loadRoster(teams, m.Team2ID)
	if err != nil {
		return nil, err
	}

	logger.Info("simulating match", "match_id", m.ID, "team1", home.Name, "team2", away.Name, "overs", overs)
	sim := engine.NewSimulator(s.tables, condition.Conditions(m.PitchCondition, m.WeatherCondition), s.newRand())
	res, err := sim.SimulateMatch(home.ToEngine(), away.ToEngine(), overs)
	if err != nil {
		logger.Warn("match simulation failed", "match_id", m.ID, "error", err)
		return nil, err
	}

	release, err := s.locker.LockUsers(ctx, home.OwnerID, away.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("lock owners: %w", err)
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			logger.Warn("releasing rating locks failed", "match_id", m.ID, "error", err)
		}
	}()

	summary := &Summary{MatchID: m.ID, MaxOvers: overs}
	m.Overs = overs
	applyResult(m, res)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewGormMatchRepository(tx)
		if err := txRepo.CompleteMatch(m); err != nil {
			return err
		}
		for _, in := range []*engine.Innings{res.First, res.Second} {
			rec := inningsRecord(m.ID, in)
			if err := txRepo.SaveInnings(&rec); err != nil {
				return fmt.Errorf("save %s innings: %w", in.Kind, err)
			}
			summary.Innings = append(summary.Innings, rec)
		}

		perfs := performances(m.ID, res)
		if err := txRepo.CreatePerformances(perfs); err != nil {
			return fmt.Errorf("save performances: %w", err)
		}
		summary.Performances = perfs

		ratings := rating.NewRatingRepository(tx)
		mr := ratingResult(m, res, perfs)
		outcome, err := rating.Apply(ratings, mr)
		if errors.Is(err, rating.ErrSameOwner) {
			logger.Info("both teams share an owner, rating unchanged", "match_id", m.ID, "user_id", home.OwnerID)
			summary.Achievements, err = rating.AwardMatchAchievements(ratings, mr)
			return err
		}
		if err != nil {
			return fmt.Errorf("update ratings: %w", err)
		}

		t1, t2 := outcome.Home.Delta, outcome.Away.Delta
		m.Team1RatingChange, m.Team2RatingChange = &t1, &t2
		if err := txRepo.SetRatingChanges(m.ID, &t1, &t2); err != nil {
			return fmt.Errorf("save rating changes: %w", err)
		}
		summary.Rating = outcome
		summary.Achievements = outcome.Achievements
		return nil
	})
	if err != nil {
		logger.Error("committing match result failed", "match_id", m.ID, "error", err)
		return nil, err
	}

	fillSummary(summary, m, home, away, res)
	logger.Info("match completed", "match_id", m.ID, "result", summary.Result, "achievements", summary.Achievements)
	return summary, nil
}

func loadRoster(teams team.TeamRepository, id uint) (*team.Team, error) {
	t, err := teams.GetTeamWithRoster(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("team %d: %w", id, ErrTeamNotFound)
	}
	return t, nil
}

// applyResult copies the engine result onto the match row.
func applyResult(m *Match, res *engine.MatchResult) {
	one, two := res.InningsOf(m.Team1ID), res.InningsOf(m.Team2ID)
	battingFirst, winner := res.BattingFirst, res.WinnerID

	m.BattingFirstTeamID = &battingFirst
	m.Team1Score, m.Team1Wickets, m.Team1Overs = one.Runs, one.Wickets, one.OversBowled().Notation()
	m.Team2Score, m.Team2Wickets, m.Team2Overs = two.Runs, two.Wickets, two.OversBowled().Notation()
	m.WinnerID = &winner
	m.WinMargin = res.Margin.Value
	m.WinMarginUnit = string(res.Margin.Unit)
	m.ResultSummary = res.Summary()
}

func inningsRecord(matchID uint, in *engine.Innings) Innings {
	rec := Innings{
		MatchID:       matchID,
		Kind:          string(in.Kind),
		BattingTeamID: in.BattingTeamID,
		BowlingTeamID: in.BowlingTeamID,
		Runs:          in.Runs,
		Wickets:       in.Wickets,
		LegalBalls:    in.LegalBalls,
		Overs:         in.OversBowled().Notation(),
		Wides:         in.Extras.Wides,
		NoBalls:       in.Extras.NoBalls,
		Byes:          in.Extras.Byes,
		LegByes:       in.Extras.LegByes,
	}
	if in.Target > 0 {
		target := in.Target
		rec.Target = &target
	}

	rec.OverRecords = make([]Over, 0, len(in.Overs))
	for i := range in.Overs {
		o := &in.Overs[i]
		over := Over{
			Number:     o.Number,
			BowlerID:   o.BowlerID,
			Runs:       o.Runs,
			Wickets:    o.Wickets,
			LegalBalls: o.LegalBalls,
			State:      o.State.String(),
			Maiden:     o.Maiden(),
			Balls:      make([]Ball, 0, len(o.Balls)),
		}
		for _, b := range o.Balls {
			ball := Ball{
				Number:    b.Number,
				BowlerID:  b.BowlerID,
				BatsmanID: b.BatsmanID,
				Outcome:   b.Outcome.Kind.Code(),
				Runs:      b.Runs(),
				IsLegal:   b.Legal(),
				IsWicket:  b.IsWicket(),
				Delivery:  string(b.Delivery),
				FielderID: b.FielderID(),
			}
			if b.Dismissal != nil {
				ball.DismissalKind = string(b.Dismissal.Kind)
			}
			over.Balls = append(over.Balls, ball)
		}
		rec.OverRecords = append(rec.OverRecords, over)
	}
	return rec
}

// performances turns the scorecard into one row per involved player, scored
// for the rating update.
func performances(matchID uint, res *engine.MatchResult) []PlayerPerformance {
	owners := map[uint]uint{
		res.Home.TeamID: res.Home.OwnerID,
		res.Away.TeamID: res.Away.OwnerID,
	}

	out := make([]PlayerPerformance, 0, len(res.Stats))
	for i := range res.Stats {
		st := &res.Stats[i]
		if !participated(st) {
			continue
		}
		p := PlayerPerformance{
			MatchID:          matchID,
			PlayerID:         st.PlayerID,
			TeamID:           st.TeamID,
			UserID:           owners[st.TeamID],
			Runs:             st.Runs,
			BallsFaced:       st.BallsFaced,
			Fours:            st.Fours,
			Sixes:            st.Sixes,
			Dismissed:        st.Out,
			HowOut:           st.HowOut,
			LegalBallsBowled: st.LegalBallsBowled,
			OversBowled:      st.OversBowled().Notation(),
			RunsConceded:     st.RunsConceded,
			Wickets:          st.Wickets,
			Maidens:          st.Maidens,
			Wides:            st.Wides,
			NoBalls:          st.NoBalls,
			Catches:          st.Catches,
			Stumpings:        st.Stumpings,
			RunOuts:          st.RunOuts,
		}
		if st.BattingPosition > 0 {
			pos := st.BattingPosition
			p.BattingPosition = &pos
		}
		sc := rating.Score(p.Line())
		p.BattingRating, p.BowlingRating, p.FieldingRating, p.OverallRating = sc.Batting, sc.Bowling, sc.Fielding, sc.Overall
		out = append(out, p)
	}
	return out
}

// participated reports whether the player faced a ball, was dismissed,
// bowled a delivery or completed a fielding act. Players who only sat in
// the batting order get no performance row and take no part in rating.
func participated(st *engine.PlayerStats) bool {
	return st.BallsFaced > 0 || st.Out || st.Bowled() ||
		st.Catches+st.Stumpings+st.RunOuts > 0
}

func ratingResult(m *Match, res *engine.MatchResult, perfs []PlayerPerformance) rating.MatchResult {
	factor := 1.0
	if m.Tournament != nil && m.Tournament.RatingFactor > 0 {
		factor = m.Tournament.RatingFactor
	}
	side := func(s *engine.Side) rating.Side {
		rs := rating.Side{UserID: s.OwnerID, TeamName: s.Name, Won: s.TeamID == res.WinnerID}
		for i := range perfs {
			if perfs[i].TeamID == s.TeamID {
				rs.Lines = append(rs.Lines, perfs[i].Line())
			}
		}
		return rs
	}
	return rating.MatchResult{
		MatchID:      m.ID,
		TournamentID: m.TournamentID,
		RatingFactor: factor,
		Completed:    m.Status == StatusCompleted,
		Home:         side(res.Home),
		Away:         side(res.Away),
	}
}

func fillSummary(s *Summary, m *Match, home, away *team.Team, res *engine.MatchResult) {
	s.Status = m.Status
	s.Team1 = TeamScore{
		TeamID: m.Team1ID, Name: home.Name, OwnerID: home.OwnerID,
		Runs: m.Team1Score, Wickets: m.Team1Wickets, Overs: m.Team1Overs,
		RatingChange: m.Team1RatingChange,
	}
	s.Team2 = TeamScore{
		TeamID: m.Team2ID, Name: away.Name, OwnerID: away.OwnerID,
		Runs: m.Team2Score, Wickets: m.Team2Wickets, Overs: m.Team2Overs,
		RatingChange: m.Team2RatingChange,
	}
	s.BattingFirstTeamID = res.BattingFirst
	s.Target = res.Target
	s.WinnerID = res.WinnerID
	s.WinnerName = res.Winner().Name
	s.Margin = res.Margin
	s.Result = m.ResultSummary
}

// BallPreview is one drawn delivery, never persisted.
type BallPreview struct {
	MatchID   uint   `json:"match_id"`
	BowlerID  uint   `json:"bowler_id"`
	BatsmanID uint   `json:"batsman_id"`
	KeeperID  *uint  `json:"keeper_id,omitempty"`
	Outcome   string `json:"outcome"`
	Label     string `json:"label"`
	Runs      int    `json:"runs"`
	IsWicket  bool   `json:"is_wicket"`
	IsLegal   bool   `json:"is_legal"`
	Delivery  string `json:"delivery,omitempty"`
}

// PreviewBall draws a single outcome for the given players under the
// match's conditions.
func (s *Service) PreviewBall(ctx context.Context, matchID, bowlerID, batsmanID uint, keeperID *uint) (*BallPreview, error) {
	db := s.db.WithContext(ctx)
	m, err := NewGormMatchRepository(db).GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}

	players := player.NewPlayerRepository(db)
	load := func(id uint) (*engine.Player, error) {
		p, err := players.GetPlayerByID(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
		}
		ep := p.ToEngine()
		return &ep, nil
	}

	bowler, err := load(bowlerID)
	if err != nil {
		return nil, err
	}
	batsman, err := load(batsmanID)
	if err != nil {
		return nil, err
	}
	var keeper *engine.Player
	if keeperID != nil {
		if keeper, err = load(*keeperID); err != nil {
			return nil, err
		}
	}

	sim := engine.NewSimulator(s.tables, condition.Conditions(m.PitchCondition, m.WeatherCondition), s.newRand())
	out, delivery := sim.PreviewBall(bowler, batsman, keeper, PreviewFieldingAverage)
	return &BallPreview{
		MatchID:   m.ID,
		BowlerID:  bowlerID,
		BatsmanID: batsmanID,
		KeeperID:  keeperID,
		Outcome:   out.Kind.Code(),
		Label:     out.Kind.String(),
		Runs:      out.Runs,
		IsWicket:  out.Kind == engine.Wicket,
		IsLegal:   out.Kind.Legal(),
		Delivery:  string(delivery),
	}, nil
}
