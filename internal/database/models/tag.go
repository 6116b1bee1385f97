package models

import (
	"github.com/google/uuid"
)

// Tag labels tallies for cross-project filtering (events, sprints, fandoms).
// Unlike the other entities, tags are hard-deleted; detaching a tag from a
// tally never deletes the tag itself.
type Tag struct {
	BaseModel
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex:idx_tags_owner_name,where:deleted_at IS NULL" validate:"required"`
	Name    string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_tags_owner_name,where:deleted_at IS NULL" validate:"required,min=1,max=100"`
	Color   string    `json:"color" gorm:"size:20" validate:"max=20"`

	// Relationships
	Tallies []Tally `json:"tallies,omitempty" gorm:"many2many:tally_tags"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
