package condition

import (
	"errors"

	"gorm.io/gorm"
)

type ConditionRepository interface {
	CreatePitch(p *PitchCondition) error
	GetPitchByID(id uint) (*PitchCondition, error)
	GetAllPitches() ([]PitchCondition, error)

	CreateWeather(w *WeatherCondition) error
	GetWeatherByID(id uint) (*WeatherCondition, error)
	GetAllWeather() ([]WeatherCondition, error)
}

type conditionRepository struct {
	db *gorm.DB
}

func NewConditionRepository(db *gorm.DB) ConditionRepository {
	return &conditionRepository{db: db}
}

func (r *conditionRepository) CreatePitch(p *PitchCondition) error {
	return r.db.Create(p).Error
}

func (r *conditionRepository) GetPitchByID(id uint) (*PitchCondition, error) {
	var p PitchCondition
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *conditionRepository) GetAllPitches() ([]PitchCondition, error) {
	var pitches []PitchCondition
	err := r.db.Order("name asc").Find(&pitches).Error
	return pitches, err
}

func (r *conditionRepository) CreateWeather(w *WeatherCondition) error {
	return r.db.Create(w).Error
}

func (r *conditionRepository) GetWeatherByID(id uint) (*WeatherCondition, error) {
	var w WeatherCondition
	if err := r.db.First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *conditionRepository) GetAllWeather() ([]WeatherCondition, error) {
	var weather []WeatherCondition
	err := r.db.Order("name asc").Find(&weather).Error
	return weather, err
}
