package rating

import "time"

// DefaultRating is every user's starting rating.
const DefaultRating = 1000.0

// UserProfile is a user's rating and career counters. Only the rating
// updater writes it.
type UserProfile struct {
	ID                uint      `json:"id" gorm:"primarykey"`
	UserID            uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CurrentRating     float64   `json:"current_rating" gorm:"type:decimal(8,2);default:1000"`
	PeakRating        float64   `json:"peak_rating" gorm:"type:decimal(8,2);default:1000"`
	CareerMatches     int       `json:"career_matches" gorm:"default:0"`
	CareerRuns        int       `json:"career_runs" gorm:"default:0"`
	CareerWickets     int       `json:"career_wickets" gorm:"default:0"`
	CareerWins        int       `json:"career_wins" gorm:"default:0"`
	CareerLosses      int       `json:"career_losses" gorm:"default:0"`
	TournamentsPlayed int       `json:"tournaments_played" gorm:"default:0"`
	TournamentsWon    int       `json:"tournaments_won" gorm:"default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newProfile(userID uint) UserProfile {
	return UserProfile{UserID: userID, CurrentRating: DefaultRating, PeakRating: DefaultRating}
}

// WinPercentage is career wins over matches played, 0 before the first match.
func (p *UserProfile) WinPercentage() float64 {
	if p.CareerMatches == 0 {
		return 0
	}
	return float64(p.CareerWins) / float64(p.CareerMatches) * 100
}

// RatingHistory is one append-only rating change.
type RatingHistory struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	MatchID      *uint     `json:"match_id,omitempty" gorm:"index"`
	TournamentID *uint     `json:"tournament_id,omitempty"`
	OldRating    float64   `json:"old_rating" gorm:"type:decimal(8,2)"`
	NewRating    float64   `json:"new_rating" gorm:"type:decimal(8,2)"`
	RatingChange float64   `json:"rating_change" gorm:"type:decimal(8,2)"`
	Reason       string    `json:"reason" gorm:"size:200"`
	CreatedAt    time.Time `json:"created_at"`
}

type AchievementKind string

const (
	KindCentury         AchievementKind = "CENTURY"
	KindFiveWickets     AchievementKind = "FIVE_WICKETS"
	KindRatingMilestone AchievementKind = "RATING_MILESTONE"
)

// Achievement is an append-only milestone. The composite unique index makes
// awarding idempotent: SourceMatchID is 0 for rating milestones and
// Milestone is 0 for match achievements, so neither column is ever NULL.
type Achievement struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	UserID        uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_achievement_once,priority:1"`
	Kind          AchievementKind `json:"kind" gorm:"size:20;not null;uniqueIndex:idx_achievement_once,priority:2"`
	SourceMatchID uint            `json:"-" gorm:"not null;default:0;uniqueIndex:idx_achievement_once,priority:3"`
	Milestone     int             `json:"milestone,omitempty" gorm:"not null;default:0;uniqueIndex:idx_achievement_once,priority:4"`
	MatchID       *uint           `json:"match_id,omitempty"`
	TournamentID  *uint           `json:"tournament_id,omitempty"`
	Title         string          `json:"title" gorm:"size:200"`
	Description   string          `json:"description"`
	EarnedAt      time.Time       `json:"earned_at" gorm:"autoCreateTime"`
}

// Models lists the tables this package owns, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&UserProfile{}, &RatingHistory{}, &Achievement{}}
}
