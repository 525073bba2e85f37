package condition

import (
	"github.com/DhavalSuthar-24/cricsim/internal/engine"
	"gorm.io/gorm"
)

// PitchCondition is a named surface profile. Assistance values are 0-100.
type PitchCondition struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null;uniqueIndex"`
	Condition    string `json:"condition" gorm:"default:'BALANCED'"`
	Spin         int    `json:"spin" gorm:"default:50"`
	Seam         int    `json:"seam" gorm:"default:50"`
	Swing        int    `json:"swing" gorm:"default:50"`
	ReverseSwing int    `json:"reverse_swing" gorm:"default:50"`
	BoundarySize int    `json:"boundary_size" gorm:"default:65"`
}

// WeatherCondition is a named overhead profile. Assistance values are 0-100.
type WeatherCondition struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;uniqueIndex"`
	Condition string `json:"condition" gorm:"default:'SUNNY'"`
	Spin      int    `json:"spin" gorm:"default:50"`
	Swing     int    `json:"swing" gorm:"default:50"`
	Seam      int    `json:"seam" gorm:"default:50"`
	Humidity  int    `json:"humidity" gorm:"default:50"`
}

// ToAssistance exposes the pitch to the calculator. A nil pitch means no pitch factor.
func (p *PitchCondition) ToAssistance() *engine.Assistance {
	if p == nil {
		return nil
	}
	return &engine.Assistance{Spin: p.Spin, Seam: p.Seam, Swing: p.Swing}
}

// ToAssistance exposes the weather to the calculator. A nil weather means no weather factor.
func (w *WeatherCondition) ToAssistance() *engine.Assistance {
	if w == nil {
		return nil
	}
	return &engine.Assistance{Spin: w.Spin, Seam: w.Seam, Swing: w.Swing, Humidity: w.Humidity}
}

// Conditions pairs optional pitch and weather for one match.
func Conditions(pitch *PitchCondition, weather *WeatherCondition) engine.Conditions {
	return engine.Conditions{Pitch: pitch.ToAssistance(), Weather: weather.ToAssistance()}
}
