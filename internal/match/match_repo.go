package match

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MatchRepository defines methods to interact with match-related data
type MatchRepository interface {
	// Tournament methods
	CreateTournament(tournament *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetTournaments(page, pageSize int) ([]Tournament, int64, error)

	// Match methods
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	// GetMatchDetail loads the match with every innings, over and ball.
	GetMatchDetail(id uint) (*Match, error)
	GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error)

	// Result methods
	CompleteMatch(match *Match) error
	SaveInnings(innings *Innings) error
	CreatePerformances(performances []PlayerPerformance) error
	SetRatingChanges(matchID uint, team1, team2 *float64) error
	GetPerformances(matchID uint) ([]PlayerPerformance, error)
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// Tournament Repository Methods

func (r *GormMatchRepository) CreateTournament(tournament *Tournament) error {
	return r.db.Create(tournament).Error
}

func (r *GormMatchRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var tournament Tournament
	if err := r.db.First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *GormMatchRepository) GetTournaments(page, pageSize int) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("id desc").Offset(offset).Limit(pageSize).Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

// Match Repository Methods

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Omit("Team1", "Team2", "Tournament", "PitchCondition", "WeatherCondition", "Winner").Create(match).Error
}

func withParticipants(db *gorm.DB) *gorm.DB {
	return db.Preload("Tournament").
		Preload("Team1").
		Preload("Team2").
		Preload("Winner").
		Preload("PitchCondition").
		Preload("WeatherCondition")
}

// GetMatchByID retrieves a match with its teams, tournament and conditions
func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	if err := withParticipants(r.db).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) GetMatchDetail(id uint) (*Match, error) {
	var match Match
	err := withParticipants(r.db).
		Preload("Innings", func(db *gorm.DB) *gorm.DB {
			return db.Order("kind asc")
		}).
		Preload("Innings.OverRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("number asc")
		}).
		Preload("Innings.OverRecords.Balls", func(db *gorm.DB) *gorm.DB {
			return db.Order("number asc")
		}).
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

// GetMatches retrieves matches based on filters with pagination.
// Supported filters: status, team_id, tournament_id.
func (r *GormMatchRepository) GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team1_id = ? OR team2_id = ?", teamID, teamID)
	}
	if tournamentID, ok := filters["tournament_id"]; ok {
		query = query.Where("tournament_id = ?", tournamentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Team1").Preload("Team2").
		Order("id desc").
		Offset(offset).Limit(pageSize).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// CompleteMatch writes the result onto a SCHEDULED match. The status check
// is part of the UPDATE, so of two concurrent completions only one matches a
// row; the other gets ErrMatchNotScheduled.
func (r *GormMatchRepository) CompleteMatch(match *Match) error {
	now := time.Now()
	result := r.db.Model(&Match{}).
		Where("id = ? AND status = ?", match.ID, StatusScheduled).
		Updates(map[string]interface{}{
			"status":                StatusCompleted,
			"overs":                 match.Overs,
			"batting_first_team_id": match.BattingFirstTeamID,
			"team1_score":           match.Team1Score,
			"team1_wickets":         match.Team1Wickets,
			"team1_overs":           match.Team1Overs,
			"team2_score":           match.Team2Score,
			"team2_wickets":         match.Team2Wickets,
			"team2_overs":           match.Team2Overs,
			"winner_id":             match.WinnerID,
			"win_margin":            match.WinMargin,
			"win_margin_unit":       match.WinMarginUnit,
			"result_summary":        match.ResultSummary,
			"completed_at":          now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotScheduled
	}
	match.Status = StatusCompleted
	match.CompletedAt = &now
	return nil
}

// SaveInnings inserts the innings together with its overs and balls.
func (r *GormMatchRepository) SaveInnings(innings *Innings) error {
	return r.db.Create(innings).Error
}

func (r *GormMatchRepository) CreatePerformances(performances []PlayerPerformance) error {
	if len(performances) == 0 {
		return nil
	}
	return r.db.Create(&performances).Error
}

func (r *GormMatchRepository) SetRatingChanges(matchID uint, team1, team2 *float64) error {
	return r.db.Model(&Match{}).Where("id = ?", matchID).Updates(map[string]interface{}{
		"team1_rating_change": team1,
		"team2_rating_change": team2,
	}).Error
}

// GetPerformances returns a match's player lines, batting order first.
func (r *GormMatchRepository) GetPerformances(matchID uint) ([]PlayerPerformance, error) {
	var performances []PlayerPerformance
	err := r.db.Where("match_id = ?", matchID).
		Order("team_id asc").
		Order("CASE WHEN batting_position IS NULL THEN 1 ELSE 0 END, batting_position asc, id asc").
		Find(&performances).Error
	if err != nil {
		return nil, err
	}
	return performances, nil
}
