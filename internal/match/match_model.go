package match

import (
	"time"

	"github.com/DhavalSuthar-24/cricsim/internal/condition"
	"github.com/DhavalSuthar-24/cricsim/internal/rating"
	"github.com/DhavalSuthar-24/cricsim/internal/team"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusScheduled  MatchStatus = "SCHEDULED"
	StatusInProgress MatchStatus = "IN_PROGRESS"
	StatusCompleted  MatchStatus = "COMPLETED"
	StatusCancelled  MatchStatus = "CANCELLED"
)

type MatchType string

const (
	MatchTypeT20    MatchType = "T20"
	MatchTypeODI    MatchType = "ODI"
	MatchTypeCustom MatchType = "CUSTOM"
)

// DefaultOvers returns the innings length of a format, 0 for CUSTOM.
func (t MatchType) DefaultOvers() int {
	switch t {
	case MatchTypeT20:
		return 20
	case MatchTypeODI:
		return 50
	}
	return 0
}

type Tournament struct {
	gorm.Model
	Name           string     `json:"name" gorm:"not null"`
	Description    string     `json:"description" gorm:"type:text"`
	TournamentType string     `json:"tournament_type" gorm:"default:'LEAGUE'"`
	Status         string     `json:"status" gorm:"default:'REGISTRATION'"`
	RatingFactor   float64    `json:"rating_factor" gorm:"type:decimal(4,2);default:1"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// Match is created SCHEDULED and written once more when simulated.
type Match struct {
	gorm.Model
	TournamentID *uint       `json:"tournament_id,omitempty" gorm:"index"`
	Tournament   *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`

	Team1ID uint       `json:"team1_id" gorm:"index;not null"`
	Team1   *team.Team `json:"team1,omitempty" gorm:"foreignKey:Team1ID"`
	Team2ID uint       `json:"team2_id" gorm:"index;not null"`
	Team2   *team.Team `json:"team2,omitempty" gorm:"foreignKey:Team2ID"`

	PitchConditionID   *uint                       `json:"pitch_condition_id,omitempty"`
	PitchCondition     *condition.PitchCondition   `json:"pitch_condition,omitempty" gorm:"foreignKey:PitchConditionID"`
	WeatherConditionID *uint                       `json:"weather_condition_id,omitempty"`
	WeatherCondition   *condition.WeatherCondition `json:"weather_condition,omitempty" gorm:"foreignKey:WeatherConditionID"`

	MatchType   MatchType   `json:"match_type" gorm:"default:'T20'"`
	Overs       int         `json:"overs" gorm:"default:20"`
	Status      MatchStatus `json:"status" gorm:"index;default:'SCHEDULED'"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`

	// Result, filled in on completion.
	BattingFirstTeamID *uint      `json:"batting_first_team_id,omitempty"`
	Team1Score         int        `json:"team1_score" gorm:"default:0"`
	Team1Wickets       int        `json:"team1_wickets" gorm:"default:0"`
	Team1Overs         float64    `json:"team1_overs" gorm:"type:decimal(4,1);default:0"`
	Team2Score         int        `json:"team2_score" gorm:"default:0"`
	Team2Wickets       int        `json:"team2_wickets" gorm:"default:0"`
	Team2Overs         float64    `json:"team2_overs" gorm:"type:decimal(4,1);default:0"`
	WinnerID           *uint      `json:"winner_id,omitempty" gorm:"index"`
	Winner             *team.Team `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
	WinMargin          int        `json:"win_margin" gorm:"default:0"`
	WinMarginUnit      string     `json:"win_margin_unit,omitempty"`
	ResultSummary      string     `json:"result_summary,omitempty"`
	Team1RatingChange  *float64   `json:"team1_rating_change,omitempty" gorm:"type:decimal(8,2)"`
	Team2RatingChange  *float64   `json:"team2_rating_change,omitempty" gorm:"type:decimal(8,2)"`

	Innings []Innings `json:"innings,omitempty" gorm:"foreignKey:MatchID"`
}

// Involves reports whether teamID plays in the match.
func (m *Match) Involves(teamID uint) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// Innings is one side's batting effort; a match has a FIRST and a SECOND.
type Innings struct {
	ID            uint    `json:"id" gorm:"primarykey"`
	MatchID       uint    `json:"match_id" gorm:"not null;uniqueIndex:idx_innings_match_kind,priority:1"`
	Kind          string  `json:"kind" gorm:"size:10;not null;uniqueIndex:idx_innings_match_kind,priority:2"`
	BattingTeamID uint    `json:"batting_team_id" gorm:"index;not null"`
	BowlingTeamID uint    `json:"bowling_team_id" gorm:"index;not null"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	LegalBalls    int     `json:"legal_balls"`
	Overs         float64 `json:"overs" gorm:"type:decimal(4,1)"`
	Target        *int    `json:"target,omitempty"`
	Wides         int     `json:"wides"`
	NoBalls       int     `json:"no_balls"`
	Byes          int     `json:"byes"`
	LegByes       int     `json:"leg_byes"`

	OverRecords []Over `json:"overs_detail,omitempty" gorm:"foreignKey:InningsID"`
}

func (Innings) TableName() string { return "innings" }

// Over is one bowler's spell, unique per innings and number.
type Over struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	InningsID  uint   `json:"innings_id" gorm:"not null;uniqueIndex:idx_over_innings_number,priority:1"`
	Number     int    `json:"number" gorm:"not null;uniqueIndex:idx_over_innings_number,priority:2"`
	BowlerID   uint   `json:"bowler_id" gorm:"index;not null"`
	Runs       int    `json:"runs"`
	Wickets    int    `json:"wickets"`
	LegalBalls int    `json:"legal_balls"`
	State      string `json:"state" gorm:"size:20"`
	Maiden     bool   `json:"maiden"`

	Balls []Ball `json:"balls,omitempty" gorm:"foreignKey:OverID"`
}

// Ball is one delivery, unique per over and number.
type Ball struct {
	ID            uint   `json:"id" gorm:"primarykey"`
	OverID        uint   `json:"over_id" gorm:"not null;uniqueIndex:idx_ball_over_number,priority:1"`
	Number        int    `json:"number" gorm:"not null;uniqueIndex:idx_ball_over_number,priority:2"`
	BowlerID      uint   `json:"bowler_id" gorm:"not null"`
	BatsmanID     uint   `json:"batsman_id" gorm:"not null"`
	Outcome       string `json:"outcome" gorm:"size:4;not null"`
	Runs          int    `json:"runs"`
	IsLegal       bool   `json:"is_legal"`
	IsWicket      bool   `json:"is_wicket"`
	Delivery      string `json:"delivery,omitempty" gorm:"size:20"`
	DismissalKind string `json:"dismissal_kind,omitempty" gorm:"size:20"`
	FielderID     *uint  `json:"fielder_id,omitempty"`
}

// PlayerPerformance is a player's line for one match, written once at the end.
type PlayerPerformance struct {
	ID       uint `json:"id" gorm:"primarykey"`
	MatchID  uint `json:"match_id" gorm:"not null;uniqueIndex:idx_performance_match_player,priority:1"`
	PlayerID uint `json:"player_id" gorm:"not null;uniqueIndex:idx_performance_match_player,priority:2"`
	TeamID   uint `json:"team_id" gorm:"index;not null"`
	UserID   uint `json:"user_id" gorm:"index;not null"` // team owner at the time of the match

	BattingPosition *int   `json:"batting_position,omitempty"`
	Runs            int    `json:"runs"`
	BallsFaced      int    `json:"balls_faced"`
	Fours           int    `json:"fours"`
	Sixes           int    `json:"sixes"`
	Dismissed       bool   `json:"dismissed"`
	HowOut          string `json:"how_out,omitempty" gorm:"size:100"`

	LegalBallsBowled int     `json:"legal_balls_bowled"`
	OversBowled      float64 `json:"overs_bowled" gorm:"type:decimal(4,1)"`
	RunsConceded     int     `json:"runs_conceded"`
	Wickets          int     `json:"wickets"`
	Maidens          int     `json:"maidens"`
	Wides            int     `json:"wides"`
	NoBalls          int     `json:"no_balls"`

	Catches   int `json:"catches"`
	Stumpings int `json:"stumpings"`
	RunOuts   int `json:"run_outs"`

	BattingRating  float64 `json:"batting_rating"`
	BowlingRating  float64 `json:"bowling_rating"`
	FieldingRating float64 `json:"fielding_rating"`
	OverallRating  float64 `json:"overall_rating"`

	CreatedAt time.Time `json:"created_at"`
}

// Line is the performance as the rating scorer sees it.
func (p *PlayerPerformance) Line() rating.Line {
	return rating.Line{
		Runs:             p.Runs,
		BallsFaced:       p.BallsFaced,
		Out:              p.Dismissed,
		LegalBallsBowled: p.LegalBallsBowled,
		RunsConceded:     p.RunsConceded,
		Wickets:          p.Wickets,
		Catches:          p.Catches,
		Stumpings:        p.Stumpings,
		RunOuts:          p.RunOuts,
	}
}

// Models lists the tables this package owns, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&Tournament{}, &Match{}, &Innings{}, &Over{}, &Ball{}, &PlayerPerformance{}}
}
