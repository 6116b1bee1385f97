package models

import (
	"github.com/google/uuid"
)

// LeaderboardTeam groups participants of a board; only meaningful when the
// board has EnableTeams set. Teams carry no goal of their own.
type LeaderboardTeam struct {
	BaseModel
	LeaderboardID uuid.UUID `json:"leaderboard_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Color         string    `json:"color" gorm:"size:20" validate:"max=20"`

	// Relationships
	Members []LeaderboardMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for LeaderboardTeam
func (LeaderboardTeam) TableName() string {
	return "leaderboard_teams"
}
