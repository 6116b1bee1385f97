package models

import (
	"github.com/google/uuid"
)

// Leaderboard is a shared board comparing multiple users' progress.
//
// Goal and IndividualGoalMode are mutually exclusive: under individual-goal
// mode every member competes against their own personal goal, so the shared
// Goal map and Measures list are cleared and FundraiserMode is forced off.
// That normalization happens in the service on create and update.
type Leaderboard struct {
	BaseModel
	OwnerID            uuid.UUID   `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title              string      `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description        string      `json:"description" gorm:"size:2000" validate:"max=2000"`
	Measures           MeasureList `json:"measures" gorm:"type:jsonb"`
	StartDate          string      `json:"start_date,omitempty" gorm:"size:10"`
	EndDate            string      `json:"end_date,omitempty" gorm:"size:10"`
	Goal               MeasureMap  `json:"goal" gorm:"type:jsonb"`
	IndividualGoalMode bool        `json:"individual_goal_mode" gorm:"not null;default:false"`
	FundraiserMode     bool        `json:"fundraiser_mode" gorm:"not null;default:false"`
	EnableTeams        bool        `json:"enable_teams" gorm:"not null;default:false"`
	IsJoinable         bool        `json:"is_joinable" gorm:"not null;default:false"`
	IsPublic           bool        `json:"is_public" gorm:"not null;default:false"`
	// Partial unique index excludes soft-deleted boards so a code can be reissued
	JoinCode string `json:"join_code" gorm:"size:40;not null;uniqueIndex:idx_leaderboards_join_code,where:deleted_at IS NULL"`

	// Relationships
	Teams   []LeaderboardTeam   `json:"teams,omitempty" gorm:"foreignKey:LeaderboardID"`
	Members []LeaderboardMember `json:"members,omitempty" gorm:"foreignKey:LeaderboardID"`
}

// TableName returns the table name for Leaderboard
func (Leaderboard) TableName() string {
	return "leaderboards"
}
