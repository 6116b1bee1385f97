package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardTeamRepository handles database operations for leaderboard teams
type LeaderboardTeamRepository struct {
	db *gorm.DB
}

// NewLeaderboardTeamRepository creates a new leaderboard team repository
func NewLeaderboardTeamRepository(db *gorm.DB) *LeaderboardTeamRepository {
	return &LeaderboardTeamRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *LeaderboardTeamRepository) WithTx(tx *gorm.DB) LeaderboardTeamRepositoryInterface {
	return &LeaderboardTeamRepository{db: tx}
}

// Create creates a new team
func (r *LeaderboardTeamRepository) Create(team *models.LeaderboardTeam) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *LeaderboardTeamRepository) GetByID(id uuid.UUID) (*models.LeaderboardTeam, error) {
	var team models.LeaderboardTeam
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByLeaderboard retrieves all teams of a leaderboard
func (r *LeaderboardTeamRepository) GetByLeaderboard(leaderboardID uuid.UUID) ([]models.LeaderboardTeam, error) {
	var teams []models.LeaderboardTeam
	err := r.db.Where("leaderboard_id = ?", leaderboardID).Order("created_at").Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *LeaderboardTeamRepository) Update(team *models.LeaderboardTeam) error {
	return r.db.Save(team).Error
}

// Delete soft-deletes a team
func (r *LeaderboardTeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeaderboardTeam{}, "id = ?", id).Error
}
