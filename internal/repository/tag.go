package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TagRepository) WithTx(tx *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: tx}
}

// Create creates a new tag
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByID retrieves a tag by ID
func (r *TagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByOwner retrieves all tags for an owner
func (r *TagRepository) GetByOwner(ownerID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("owner_id = ?", ownerID).Order("name").Find(&tags).Error
	return tags, err
}

// GetByName retrieves a tag by name within an owner's namespace
func (r *TagRepository) GetByName(ownerID uuid.UUID, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "owner_id = ? AND name = ?", ownerID, name).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves the owner's tags matching the given ids
func (r *TagRepository) GetByIDs(ownerID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("owner_id = ? AND id IN ?", ownerID, ids).Find(&tags).Error
	return tags, err
}

// Update updates a tag
func (r *TagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// HardDelete removes a tag permanently. Join rows in tally_tags go with it;
// the tallies themselves are untouched.
func (r *TagRepository) HardDelete(id uuid.UUID) error {
	if err := r.db.Exec(`DELETE FROM tally_tags WHERE tag_id = ?`, id).Error; err != nil {
		return err
	}
	return r.db.Unscoped().Delete(&models.Tag{}, "id = ?", id).Error
}
