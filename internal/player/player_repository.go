package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the data operations on players and their attributes.
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers(page, limit int, filters map[string]interface{}) ([]Player, int64, error)
	SetFirstEleven(teamID uint, playerIDs []uint) error
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// WithAttributes preloads every attribute record the simulation reads.
func WithAttributes(db *gorm.DB) *gorm.DB {
	return db.Preload("BowlingAttributes").Preload("BattingAttributes").Preload("KeepingAttributes")
}

func (r *playerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := WithAttributes(r.db).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetAllPlayers(page, limit int, filters map[string]interface{}) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team_id = ?", teamID)
	}
	if playerType, ok := filters["player_type"]; ok {
		query = query.Where("player_type = ?", playerType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("overall_skill desc, id asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

// SetFirstEleven flags exactly the given players of the team as first eleven.
func (r *playerRepository) SetFirstEleven(teamID uint, playerIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Player{}).Where("team_id = ?", teamID).Update("first_eleven", false).Error; err != nil {
			return err
		}
		if len(playerIDs) == 0 {
			return nil
		}
		return tx.Model(&Player{}).Where("team_id = ? AND id IN ?", teamID, playerIDs).Update("first_eleven", true).Error
	})
}
