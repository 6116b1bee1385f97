package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardRepository handles database operations for leaderboards
type LeaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *LeaderboardRepository) WithTx(tx *gorm.DB) LeaderboardRepositoryInterface {
	return &LeaderboardRepository{db: tx}
}

// Create creates a new leaderboard
func (r *LeaderboardRepository) Create(board *models.Leaderboard) error {
	return r.db.Create(board).Error
}

// GetByID retrieves a leaderboard by ID
func (r *LeaderboardRepository) GetByID(id uuid.UUID) (*models.Leaderboard, error) {
	var board models.Leaderboard
	err := r.db.First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetByJoinCode retrieves a leaderboard by its join code
func (r *LeaderboardRepository) GetByJoinCode(code string) (*models.Leaderboard, error) {
	var board models.Leaderboard
	err := r.db.First(&board, "join_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Update updates a leaderboard
func (r *LeaderboardRepository) Update(board *models.Leaderboard) error {
	return r.db.Save(board).Error
}

// Delete soft-deletes a leaderboard
func (r *LeaderboardRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Leaderboard{}, "id = ?", id).Error
}
