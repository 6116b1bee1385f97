package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalRepository handles database operations for goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *GoalRepository) WithTx(tx *gorm.DB) GoalRepositoryInterface {
	return &GoalRepository{db: tx}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByOwner retrieves all goals for an owner
func (r *GoalRepository) GetByOwner(ownerID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&goals).Error
	return goals, err
}

// Update updates a goal
func (r *GoalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// Delete soft-deletes a goal
func (r *GoalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Goal{}, "id = ?", id).Error
}
