package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkRepository handles database operations for works
type WorkRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates a new work repository
func NewWorkRepository(db *gorm.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *WorkRepository) WithTx(tx *gorm.DB) WorkRepositoryInterface {
	return &WorkRepository{db: tx}
}

// Create creates a new work
func (r *WorkRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

// GetByID retrieves a work by ID
func (r *WorkRepository) GetByID(id uuid.UUID) (*models.Work, error) {
	var work models.Work
	err := r.db.First(&work, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// GetByOwner retrieves all active works for an owner
func (r *WorkRepository) GetByOwner(ownerID uuid.UUID) ([]models.Work, error) {
	var works []models.Work
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&works).Error
	return works, err
}

// Update updates a work
func (r *WorkRepository) Update(work *models.Work) error {
	return r.db.Save(work).Error
}

// Delete soft-deletes a work
func (r *WorkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Work{}, "id = ?", id).Error
}
