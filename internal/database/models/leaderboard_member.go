package models

import (
	"github.com/google/uuid"
)

// LeaderboardMember is one user's relationship to a leaderboard.
//
// The owner/participant split is deliberate: owners administer the board
// without necessarily competing on it, participants are ranked, and
// spectators (IsParticipant=false) see the board but contribute no ranked
// row. An active board must always retain at least one active owner row.
type LeaderboardMember struct {
	BaseModel
	// Partial unique index excludes soft-deleted rows so a user can rejoin after leaving
	LeaderboardID uuid.UUID  `json:"leaderboard_id" gorm:"type:uuid;not null;uniqueIndex:idx_members_board_user,where:deleted_at IS NULL" validate:"required"`
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_members_board_user,where:deleted_at IS NULL" validate:"required"`
	IsOwner       bool       `json:"is_owner" gorm:"not null;default:false"`
	IsParticipant bool       `json:"is_participant" gorm:"not null;default:true"`
	TeamID        *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	// Optional identity mask shown instead of the member's account identity
	DisplayName  string        `json:"display_name" gorm:"size:100" validate:"max=100"`
	Color        string        `json:"color" gorm:"size:20" validate:"max=20"`
	PersonalGoal *TargetParams `json:"personal_goal,omitempty" gorm:"type:jsonb"`
	Scope        ScopeFilter   `json:"scope" gorm:"type:jsonb"`
	Starred      bool          `json:"starred" gorm:"not null;default:false"`

	// Relationships
	Leaderboard *Leaderboard     `json:"leaderboard,omitempty" gorm:"foreignKey:LeaderboardID"`
	Team        *LeaderboardTeam `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for LeaderboardMember
func (LeaderboardMember) TableName() string {
	return "leaderboard_members"
}
