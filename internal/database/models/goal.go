package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
)

// TargetParams is the threshold of a target goal (and of a per-member
// personal goal on an individual-goal leaderboard). Stored as jsonb.
type TargetParams struct {
	Measure Measure `json:"measure" validate:"required"`
	Count   int     `json:"count" validate:"required,gt=0"`
}

// Value implements driver.Valuer for jsonb storage
func (p TargetParams) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for jsonb storage
func (p *TargetParams) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, p)
}

// Cadence describes how often a habit recurs: every Period cadence units.
type Cadence struct {
	Unit   CadenceUnit `json:"unit" validate:"required"`
	Period int         `json:"period" validate:"required,gte=1"`
}

// HabitParams parameterizes a habit goal. A habit without a threshold is
// satisfied by any logged activity inside a cadence window.
type HabitParams struct {
	Cadence   Cadence       `json:"cadence"`
	Threshold *TargetParams `json:"threshold,omitempty"`
}

// Value implements driver.Valuer for jsonb storage
func (p HabitParams) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for jsonb storage
func (p *HabitParams) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, p)
}

// Goal is a personal progress goal. Type discriminates the union: a target
// goal carries Target and never Habit, a habit goal the reverse, so a target
// with a cadence is unrepresentable. Scope restricts which tallies count.
type Goal struct {
	BaseModel
	OwnerID     uuid.UUID     `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string        `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description string        `json:"description" gorm:"size:2000" validate:"max=2000"`
	Type        GoalType      `json:"type" gorm:"type:varchar(10);not null" validate:"required"`
	Target      *TargetParams `json:"target,omitempty" gorm:"type:jsonb"`
	Habit       *HabitParams  `json:"habit,omitempty" gorm:"type:jsonb"`
	Scope       ScopeFilter   `json:"scope" gorm:"type:jsonb"`
	StartDate   string        `json:"start_date,omitempty" gorm:"size:10"`
	EndDate     string        `json:"end_date,omitempty" gorm:"size:10"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return "goals"
}
