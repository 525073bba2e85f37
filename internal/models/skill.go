// internal/models/skill.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// NeutralSkill is the value an absent skill resolves to when a discipline
// needs a number rather than "not applicable".
const NeutralSkill = 50

// Skill is a 0-100 rating that may be absent. It maps to a NULL-able integer
// column and to a JSON number or null.
type Skill struct {
	Level int
	Valid bool
}

// NewSkill returns a present skill, clamped to 0..100.
func NewSkill(v int) Skill {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return Skill{Level: v, Valid: true}
}

// Or returns the skill value, or def when the skill is absent.
func (s Skill) Or(def int) int {
	if !s.Valid {
		return def
	}
	return s.Level
}

// Neutral resolves an absent skill to NeutralSkill.
func (s Skill) Neutral() int {
	return s.Or(NeutralSkill)
}

// Positive reports whether the skill is present and above zero.
func (s Skill) Positive() bool {
	return s.Valid && s.Level > 0
}

func (s Skill) String() string {
	if !s.Valid {
		return "-"
	}
	return strconv.Itoa(s.Level)
}

func (Skill) GormDataType() string {
	return "int"
}

func (s Skill) Value() (driver.Value, error) {
	if !s.Valid {
		return nil, nil
	}
	return int64(s.Level), nil
}

// Scan reads a NULL-able integer column.
func (s *Skill) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = Skill{}
	case int64:
		*s = Skill{Level: int(v), Valid: true}
	case int32:
		*s = Skill{Level: int(v), Valid: true}
	case float64:
		*s = Skill{Level: int(v), Valid: true}
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("Skill: invalid integer %q: %w", v, err)
		}
		*s = Skill{Level: n, Valid: true}
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Skill: invalid integer %q: %w", v, err)
		}
		*s = Skill{Level: n, Valid: true}
	default:
		return fmt.Errorf("Skill: unsupported column type %T", src)
	}
	return nil
}

func (s Skill) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Level)
}

func (s *Skill) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Skill{}
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("Skill: expected integer or null: %w", err)
	}
	*s = NewSkill(v)
	return nil
}
