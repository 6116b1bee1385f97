package models

import (
	"github.com/google/uuid"
)

// Tally is one ledger entry: a signed change in progress for one measure on
// one calendar day. Count is always a delta once persisted; set-total
// submissions are reconciled into a delta before they reach this struct.
// Dates are plain YYYY-MM-DD strings with no time component, which makes
// lexicographic comparison date comparison both here and in SQL.
type Tally struct {
	BaseModel
	OwnerID uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index:idx_tallies_owner_date" validate:"required"`
	WorkID  *uuid.UUID `json:"work_id,omitempty" gorm:"type:uuid;index"`
	Date    string     `json:"date" gorm:"size:10;not null;index:idx_tallies_owner_date" validate:"required,datetime=2006-01-02"`
	Measure Measure    `json:"measure" gorm:"type:varchar(20);not null" validate:"required"`
	Count   int        `json:"count" gorm:"not null"`
	Note    string     `json:"note" gorm:"size:2000" validate:"max=2000"`

	// Relationships
	Work *Work `json:"work,omitempty" gorm:"foreignKey:WorkID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:tally_tags"`
}

// TableName returns the table name for Tally
func (Tally) TableName() string {
	return "tallies"
}
