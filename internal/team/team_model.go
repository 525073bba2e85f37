// team/model.go
package team

import (
	"github.com/DhavalSuthar-24/cricsim/internal/engine"
	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"github.com/DhavalSuthar-24/cricsim/internal/user"
	"gorm.io/gorm"
)

// Team is an owner's squad. Budget and MoneyLeft belong to the auction and
// are carried here only as data.
type Team struct {
	gorm.Model
	Name      string          `json:"name" gorm:"not null;uniqueIndex"`
	OwnerID   uint            `json:"owner_id" gorm:"index;not null"`
	Owner     *user.User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Budget    int             `json:"budget" gorm:"default:1000000"`
	MoneyLeft int             `json:"money_left" gorm:"default:1000000"`
	Players   []player.Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// ToEngine converts the team and its loaded roster for simulation.
func (t *Team) ToEngine() engine.Team {
	return engine.Team{
		ID:      t.ID,
		Name:    t.Name,
		OwnerID: t.OwnerID,
		Players: player.ToEngineRoster(t.Players),
	}
}
