package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardMemberRepository handles database operations for memberships
type LeaderboardMemberRepository struct {
	db *gorm.DB
}

// NewLeaderboardMemberRepository creates a new membership repository
func NewLeaderboardMemberRepository(db *gorm.DB) *LeaderboardMemberRepository {
	return &LeaderboardMemberRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *LeaderboardMemberRepository) WithTx(tx *gorm.DB) LeaderboardMemberRepositoryInterface {
	return &LeaderboardMemberRepository{db: tx}
}

// Create creates a new membership
func (r *LeaderboardMemberRepository) Create(member *models.LeaderboardMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *LeaderboardMemberRepository) GetByID(id uuid.UUID) (*models.LeaderboardMember, error) {
	var member models.LeaderboardMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetActive retrieves the active membership for a (leaderboard, user) pair
func (r *LeaderboardMemberRepository) GetActive(leaderboardID, userID uuid.UUID) (*models.LeaderboardMember, error) {
	var member models.LeaderboardMember
	err := r.db.First(&member, "leaderboard_id = ? AND user_id = ?", leaderboardID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByLeaderboard retrieves all active memberships of a leaderboard in join order
func (r *LeaderboardMemberRepository) GetByLeaderboard(leaderboardID uuid.UUID) ([]models.LeaderboardMember, error) {
	var members []models.LeaderboardMember
	err := r.db.Where("leaderboard_id = ?", leaderboardID).Order("created_at, id").Find(&members).Error
	return members, err
}

// CountOwners counts active owner memberships, optionally excluding one row.
// Callers run this inside the same transaction as the removal it guards.
func (r *LeaderboardMemberRepository) CountOwners(leaderboardID uuid.UUID, excludeMemberID *uuid.UUID) (int64, error) {
	q := r.db.Model(&models.LeaderboardMember{}).
		Where("leaderboard_id = ? AND is_owner = true", leaderboardID)
	if excludeMemberID != nil {
		q = q.Where("id != ?", *excludeMemberID)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

// Update updates a membership
func (r *LeaderboardMemberRepository) Update(member *models.LeaderboardMember) error {
	return r.db.Save(member).Error
}

// Delete soft-deletes a membership
func (r *LeaderboardMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeaderboardMember{}, "id = ?", id).Error
}

// DeleteByLeaderboard soft-deletes every membership of a leaderboard
func (r *LeaderboardMemberRepository) DeleteByLeaderboard(leaderboardID uuid.UUID) error {
	return r.db.Delete(&models.LeaderboardMember{}, "leaderboard_id = ?", leaderboardID).Error
}
