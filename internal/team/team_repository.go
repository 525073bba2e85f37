package team

import (
	"errors"

	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamByName(name string) (*Team, error)
	// GetTeamWithRoster loads the team with every player and attribute record.
	GetTeamWithRoster(id uint) (*Team, error)
	GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error)
	GetTeamsByOwnerID(ownerID uint, page, limit int) ([]Team, int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByName(name string) (*Team, error) {
	var team Team
	if err := r.db.Where("name = ?", name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamWithRoster(id uint) (*Team, error) {
	var team Team
	err := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return player.WithAttributes(db).Order("players.id asc")
	}).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if ownerID, ok := filters["owner_id"]; ok {
		query = query.Where("owner_id = ?", ownerID)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name.(string)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) GetTeamsByOwnerID(ownerID uint, page, limit int) ([]Team, int64, error) {
	return r.GetAllTeams(page, limit, map[string]interface{}{"owner_id": ownerID})
}
