package engine

import (
	"errors"
	"sort"

	"github.com/DhavalSuthar-24/cricsim/internal/models"
)

// PlayingEleven is the number of players a side fields.
const PlayingEleven = 11

var (
	ErrEmptyRoster = errors.New("team has no players")
	ErrNoLineup    = errors.New("team cannot form a lineup")
)

// BowlingProfile holds a bowler's style and per-delivery sub-skills.
type BowlingProfile struct {
	Type   BowlerType
	Skills map[Delivery]models.Skill
}

// BattingProfile holds a batsman's skill against each delivery.
type BattingProfile struct {
	Skills map[Delivery]models.Skill
}

// KeepingProfile is present only for players with wicketkeeping attributes.
type KeepingProfile struct {
	Overall models.Skill
}

// Player is the simulation view of a squad member. Profiles are nil when the
// player has no attribute records for that discipline.
type Player struct {
	ID          uint
	Name        string
	Overall     int
	Batting     models.Skill
	Bowling     models.Skill
	Fielding    models.Skill
	Keeping     models.Skill
	FirstEleven bool

	BowlingProfile *BowlingProfile
	BattingProfile *BattingProfile
	KeepingProfile *KeepingProfile
}

// Team is a roster with its owner.
type Team struct {
	ID      uint
	Name    string
	OwnerID uint
	Players []Player
}

// SelectPlayingEleven picks the side's eleven. Flagged first-eleven players
// go first; when fewer than eleven are flagged the rest is filled with the
// best unflagged players, and when more are flagged only the best eleven stay.
// Ties keep roster order.
func SelectPlayingEleven(roster []Player) ([]*Player, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	var flagged, others []*Player
	for i := range roster {
		if roster[i].FirstEleven {
			flagged = append(flagged, &roster[i])
		} else {
			others = append(others, &roster[i])
		}
	}
	bySkill := func(ps []*Player) {
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Overall > ps[j].Overall })
	}

	if len(flagged) >= PlayingEleven {
		bySkill(flagged)
		return flagged[:PlayingEleven], nil
	}

	bySkill(others)
	lineup := append([]*Player{}, flagged...)
	for _, p := range others {
		if len(lineup) == PlayingEleven {
			break
		}
		lineup = append(lineup, p)
	}
	if len(lineup) == 0 {
		return nil, ErrNoLineup
	}
	return lineup, nil
}

// Side is a team prepared for a match: lineup, bowling attack, keeper and
// fielding strength are resolved once and reused for both innings.
type Side struct {
	TeamID          uint
	Name            string
	OwnerID         uint
	Lineup          []*Player
	Bowlers         []*Player
	Keeper          *Player
	FieldingAverage float64
}

// NewSide selects the playing eleven and resolves the roles the innings needs.
func NewSide(team Team) (*Side, error) {
	lineup, err := SelectPlayingEleven(team.Players)
	if err != nil {
		return nil, err
	}

	s := &Side{
		TeamID:  team.ID,
		Name:    team.Name,
		OwnerID: team.OwnerID,
		Lineup:  lineup,
	}

	for _, p := range lineup {
		if p.Bowling.Positive() {
			s.Bowlers = append(s.Bowlers, p)
		}
		if s.Keeper == nil && p.Keeping.Positive() {
			s.Keeper = p
		}
	}
	if len(s.Bowlers) == 0 {
		n := min(6, len(lineup))
		s.Bowlers = append(s.Bowlers, lineup[:n]...)
	}

	s.FieldingAverage = models.NeutralSkill
	var sum, count int
	for _, p := range lineup {
		if p.Fielding.Valid {
			sum += p.Fielding.Level
			count++
		}
	}
	if count > 0 {
		s.FieldingAverage = float64(sum) / float64(count)
	}
	return s, nil
}

// BowlerFor returns the round-robin bowler of the zero-based over.
func (s *Side) BowlerFor(over int) *Player {
	return s.Bowlers[over%len(s.Bowlers)]
}
