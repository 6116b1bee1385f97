package models

import (
	"github.com/google/uuid"
)

// Work represents a writing project that tallies and goals can be scoped to.
// StartingBalance seeds the per-measure running sum for set-total entries,
// so a project imported at 30k words reconciles correctly from day one.
type Work struct {
	BaseModel
	OwnerID         uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title           string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description     string     `json:"description" gorm:"size:2000" validate:"max=2000"`
	Phase           WorkPhase  `json:"phase" gorm:"type:varchar(20);not null;default:'drafting'"`
	StartingBalance MeasureMap `json:"starting_balance" gorm:"type:jsonb"`

	// Relationships
	Tallies []Tally `json:"tallies,omitempty" gorm:"foreignKey:WorkID"`
}

// TableName returns the table name for Work
func (Work) TableName() string {
	return "works"
}
