package repository

import (
	"writing-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TallyRepository handles database operations for the tally ledger
type TallyRepository struct {
	db *gorm.DB
}

// NewTallyRepository creates a new tally repository
func NewTallyRepository(db *gorm.DB) *TallyRepository {
	return &TallyRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TallyRepository) WithTx(tx *gorm.DB) TallyRepositoryInterface {
	return &TallyRepository{db: tx}
}

// Create creates a new tally along with its tag associations
func (r *TallyRepository) Create(tally *models.Tally) error {
	return r.db.Create(tally).Error
}

// CreateBatch inserts a batch of tallies in one statement
func (r *TallyRepository) CreateBatch(tallies []models.Tally) error {
	if len(tallies) == 0 {
		return nil
	}
	return r.db.Create(&tallies).Error
}

// GetByID retrieves a tally with its tags
func (r *TallyRepository) GetByID(id uuid.UUID) (*models.Tally, error) {
	var tally models.Tally
	err := r.db.Preload("Tags").First(&tally, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tally, nil
}

// Update persists changes to a tally's own columns. Tag associations are
// reconciled separately through ReplaceTags.
func (r *TallyRepository) Update(tally *models.Tally) error {
	return r.db.Omit("Tags").Save(tally).Error
}

// ReplaceTags reconciles the tally's tag set to exactly the given tags.
// Detached tags survive as entities; only the join rows change.
func (r *TallyRepository) ReplaceTags(tally *models.Tally, tags []models.Tag) error {
	return r.db.Model(tally).Association("Tags").Replace(tags)
}

// Delete soft-deletes a tally
func (r *TallyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tally{}, "id = ?", id).Error
}

// DeleteByWorkID soft-deletes every tally under a work
func (r *TallyRepository) DeleteByWorkID(workID uuid.UUID) error {
	return r.db.Delete(&models.Tally{}, "work_id = ?", workID).Error
}

// Query returns the owner's active tallies matching the filter, in no
// guaranteed order. Callers sort as needed.
func (r *TallyRepository) Query(ownerID uuid.UUID, filter TallyFilter) ([]models.Tally, error) {
	q := r.db.Model(&models.Tally{}).Where("tallies.owner_id = ?", ownerID)

	if len(filter.WorkIDs) > 0 {
		q = q.Where("tallies.work_id IN ?", filter.WorkIDs)
	}
	if len(filter.TagIDs) > 0 {
		q = q.Distinct("tallies.*").
			Joins("JOIN tally_tags ON tally_tags.tally_id = tallies.id").
			Where("tally_tags.tag_id IN ?", filter.TagIDs)
	}
	if len(filter.Measures) > 0 {
		q = q.Where("tallies.measure IN ?", filter.Measures)
	}
	if filter.StartDate != "" {
		q = q.Where("tallies.date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("tallies.date <= ?", filter.EndDate)
	}

	var tallies []models.Tally
	err := q.Preload("Tags").Find(&tallies).Error
	return tallies, err
}

// SumCounts sums the active deltas for (owner, work, measure) with
// date <= throughDate, optionally excluding one tally (the one being
// revised). Feeds set-total reconciliation.
func (r *TallyRepository) SumCounts(ownerID, workID uuid.UUID, measure models.Measure, throughDate string, excludeID *uuid.UUID) (int, error) {
	q := r.db.Model(&models.Tally{}).
		Where("owner_id = ? AND work_id = ? AND measure = ? AND date <= ?", ownerID, workID, measure, throughDate)
	if excludeID != nil {
		q = q.Where("id != ?", *excludeID)
	}

	var sum *int
	if err := q.Select("SUM(count)").Scan(&sum).Error; err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
