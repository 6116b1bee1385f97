package service

import (
	"errors"
	"fmt"
	"sort"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	"writing-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TallyService handles the progress ledger: appending, revising and
// retracting tallies, and the set-total reconciliation that turns a
// user-supplied running total into a stored delta.
type TallyService struct {
	repo      repository.TallyRepositoryInterface
	workRepo  repository.WorkRepositoryInterface
	tagRepo   repository.TagRepositoryInterface
	tx        repository.TxManager
	validator *validator.Validate
}

// NewTallyService creates a new tally service
func NewTallyService(repo repository.TallyRepositoryInterface, workRepo repository.WorkRepositoryInterface, tagRepo repository.TagRepositoryInterface, tx repository.TxManager, validator *validator.Validate) *TallyService {
	return &TallyService{
		repo:      repo,
		workRepo:  workRepo,
		tagRepo:   tagRepo,
		tx:        tx,
		validator: validator,
	}
}

// CreateTallyRequest represents the request to create a tally.
//
// With SetTotal, Count is the absolute running total for the work and
// measure as of Date; the service derives and stores the delta. Everything
// with date <= Date counts as prior, so a second total entered for the same
// day treats the first one as already-banked progress.
type CreateTallyRequest struct {
	WorkID   *uuid.UUID     `json:"work_id,omitempty"`
	Date     string         `json:"date" validate:"required,datetime=2006-01-02"`
	Measure  models.Measure `json:"measure" validate:"required"`
	Count    int            `json:"count"`
	SetTotal bool           `json:"set_total"`
	Note     string         `json:"note" validate:"max=2000"`
	Tags     []string       `json:"tags" validate:"dive,min=1,max=100"`
}

// UpdateTallyRequest represents the request to revise a tally. Tags is the
// full desired tag set; the service reconciles it as a diff.
type UpdateTallyRequest struct {
	WorkID   *uuid.UUID     `json:"work_id,omitempty"`
	Date     string         `json:"date" validate:"required,datetime=2006-01-02"`
	Measure  models.Measure `json:"measure" validate:"required"`
	Count    int            `json:"count"`
	SetTotal bool           `json:"set_total"`
	Note     string         `json:"note" validate:"max=2000"`
	Tags     []string       `json:"tags" validate:"dive,min=1,max=100"`
}

// BatchTallyEntry is one simple entry of a bulk import: always a delta,
// never set-total, never tagged.
type BatchTallyEntry struct {
	WorkID  *uuid.UUID     `json:"work_id,omitempty"`
	Date    string         `json:"date" validate:"required,datetime=2006-01-02"`
	Measure models.Measure `json:"measure" validate:"required"`
	Count   int            `json:"count"`
	Note    string         `json:"note" validate:"max=2000"`
}

// BatchCreateTalliesRequest represents a bulk import request
type BatchCreateTalliesRequest struct {
	Entries []BatchTallyEntry `json:"entries" validate:"required,min=1,dive"`
}

// ListTalliesRequest filters the owner's ledger
type ListTalliesRequest struct {
	WorkIDs   []uuid.UUID      `json:"work_ids"`
	TagIDs    []uuid.UUID      `json:"tag_ids"`
	Measures  []models.Measure `json:"measures"`
	StartDate string           `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string           `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// TallyResponse represents the response for tally operations
type TallyResponse struct {
	ID      uuid.UUID      `json:"id"`
	WorkID  *uuid.UUID     `json:"work_id,omitempty"`
	Date    string         `json:"date"`
	Measure models.Measure `json:"measure"`
	Count   int            `json:"count"`
	Note    string         `json:"note"`
	Tags    []TagResponse  `json:"tags"`
}

// Create appends a tally to the ledger. Set-total submissions reconcile to
// a delta inside one transaction so a concurrent reader never observes the
// prior-sum read and the insert half-done.
func (s *TallyService) Create(ownerID uuid.UUID, req *CreateTallyRequest) (*TallyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Measure.IsValid() {
		return nil, apperrors.NewValidationError("measure", fmt.Sprintf("unknown measure %q", req.Measure))
	}

	var response *TallyResponse
	err := s.tx.Do(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		count := req.Count
		if req.SetTotal {
			reconciled, err := s.reconcileTotal(tx, ownerID, req.WorkID, req.Date, req.Measure, req.Count, nil)
			if err != nil {
				return err
			}
			count = reconciled
		} else if req.WorkID != nil {
			if _, err := s.ownedWork(tx, ownerID, *req.WorkID); err != nil {
				return err
			}
		}

		tally := &models.Tally{
			OwnerID: ownerID,
			WorkID:  req.WorkID,
			Date:    req.Date,
			Measure: req.Measure,
			Count:   count,
			Note:    req.Note,
		}
		if err := repo.Create(tally); err != nil {
			return fmt.Errorf("failed to create tally: %w", err)
		}

		tags, err := s.resolveTags(tx, ownerID, req.Tags)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := repo.ReplaceTags(tally, tags); err != nil {
				return fmt.Errorf("failed to attach tags: %w", err)
			}
		}
		tally.Tags = tags

		response = tallyToResponse(tally)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Update revises a tally. A set-total revision recomputes its delta with the
// tally's own prior contribution excluded, so resubmitting the same absolute
// value leaves the stored delta unchanged.
func (s *TallyService) Update(ownerID, id uuid.UUID, req *UpdateTallyRequest) (*TallyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Measure.IsValid() {
		return nil, apperrors.NewValidationError("measure", fmt.Sprintf("unknown measure %q", req.Measure))
	}

	var response *TallyResponse
	err := s.tx.Do(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		tally, err := s.ownedTally(tx, ownerID, id)
		if err != nil {
			return err
		}

		count := req.Count
		if req.SetTotal {
			reconciled, err := s.reconcileTotal(tx, ownerID, req.WorkID, req.Date, req.Measure, req.Count, &tally.ID)
			if err != nil {
				return err
			}
			count = reconciled
		} else if req.WorkID != nil {
			if _, err := s.ownedWork(tx, ownerID, *req.WorkID); err != nil {
				return err
			}
		}

		tally.WorkID = req.WorkID
		tally.Date = req.Date
		tally.Measure = req.Measure
		tally.Count = count
		tally.Note = req.Note
		if err := repo.Update(tally); err != nil {
			return fmt.Errorf("failed to update tally: %w", err)
		}

		tags, err := s.resolveTags(tx, ownerID, req.Tags)
		if err != nil {
			return err
		}
		if err := repo.ReplaceTags(tally, tags); err != nil {
			return fmt.Errorf("failed to reconcile tags: %w", err)
		}
		tally.Tags = tags

		response = tallyToResponse(tally)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Delete retracts a tally from the ledger
func (s *TallyService) Delete(ownerID, id uuid.UUID) error {
	return s.tx.Do(func(tx *gorm.DB) error {
		tally, err := s.ownedTally(tx, ownerID, id)
		if err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Delete(tally.ID); err != nil {
			return fmt.Errorf("failed to delete tally: %w", err)
		}
		return nil
	})
}

// GetByID retrieves one of the owner's tallies
func (s *TallyService) GetByID(ownerID, id uuid.UUID) (*TallyResponse, error) {
	tally, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTallyNotFound
		}
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}
	if tally.OwnerID != ownerID {
		return nil, apperrors.ErrTallyNotFound
	}
	return tallyToResponse(tally), nil
}

// List queries the owner's ledger, sorted by date for presentation.
func (s *TallyService) List(ownerID uuid.UUID, req *ListTalliesRequest) ([]TallyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for _, m := range req.Measures {
		if !m.IsValid() {
			return nil, apperrors.NewValidationError("measures", fmt.Sprintf("unknown measure %q", m))
		}
	}

	tallies, err := s.repo.Query(ownerID, repository.TallyFilter{
		WorkIDs:   req.WorkIDs,
		TagIDs:    req.TagIDs,
		Measures:  req.Measures,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query tallies: %w", err)
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].Date != tallies[j].Date {
			return tallies[i].Date < tallies[j].Date
		}
		return tallies[i].CreatedAt.Before(tallies[j].CreatedAt)
	})

	responses := make([]TallyResponse, 0, len(tallies))
	for i := range tallies {
		responses = append(responses, *tallyToResponse(&tallies[i]))
	}
	return responses, nil
}

// CreateBatch bulk-imports simple delta entries in one transaction.
func (s *TallyService) CreateBatch(ownerID uuid.UUID, req *BatchCreateTalliesRequest) ([]TallyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tallies := make([]models.Tally, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if !entry.Measure.IsValid() {
			return nil, apperrors.NewValidationError("measure", fmt.Sprintf("unknown measure %q", entry.Measure))
		}
		tallies = append(tallies, models.Tally{
			OwnerID: ownerID,
			WorkID:  entry.WorkID,
			Date:    entry.Date,
			Measure: entry.Measure,
			Count:   entry.Count,
			Note:    entry.Note,
		})
	}

	err := s.tx.Do(func(tx *gorm.DB) error {
		seen := map[uuid.UUID]bool{}
		for _, t := range tallies {
			if t.WorkID != nil && !seen[*t.WorkID] {
				if _, err := s.ownedWork(tx, ownerID, *t.WorkID); err != nil {
					return err
				}
				seen[*t.WorkID] = true
			}
		}
		if err := s.repo.WithTx(tx).CreateBatch(tallies); err != nil {
			return fmt.Errorf("failed to create tallies: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]TallyResponse, 0, len(tallies))
	for i := range tallies {
		responses = append(responses, *tallyToResponse(&tallies[i]))
	}
	return responses, nil
}

// reconcileTotal converts an absolute running total into the delta to store:
// submitted total minus the work's starting balance for the measure minus
// every active delta dated on or before the submitted date (excluding the
// tally under revision). The absolute total itself is never stored.
func (s *TallyService) reconcileTotal(tx *gorm.DB, ownerID uuid.UUID, workID *uuid.UUID, date string, measure models.Measure, total int, excludeID *uuid.UUID) (int, error) {
	if workID == nil {
		return 0, apperrors.ErrSetTotalRequiresWork
	}

	work, err := s.ownedWork(tx, ownerID, *workID)
	if err != nil {
		return 0, err
	}

	sum, err := s.repo.WithTx(tx).SumCounts(ownerID, *workID, measure, date, excludeID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum prior tallies: %w", err)
	}

	priorSum := work.StartingBalance.Get(measure) + sum
	return total - priorSum, nil
}

// resolveTags maps tag names to the owner's tag entities, creating any that
// do not yet exist.
func (s *TallyService) resolveTags(tx *gorm.DB, ownerID uuid.UUID, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	tagRepo := s.tagRepo.WithTx(tx)
	tags := make([]models.Tag, 0, len(names))
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, err := tagRepo.GetByName(ownerID, name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = &models.Tag{OwnerID: ownerID, Name: name}
			if err := tagRepo.Create(tag); err != nil {
				return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func (s *TallyService) ownedWork(tx *gorm.DB, ownerID, workID uuid.UUID) (*models.Work, error) {
	work, err := s.workRepo.WithTx(tx).GetByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	if work.OwnerID != ownerID {
		return nil, apperrors.ErrWorkNotFound
	}
	return work, nil
}

func (s *TallyService) ownedTally(tx *gorm.DB, ownerID, id uuid.UUID) (*models.Tally, error) {
	tally, err := s.repo.WithTx(tx).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTallyNotFound
		}
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}
	if tally.OwnerID != ownerID {
		return nil, apperrors.ErrTallyNotFound
	}
	return tally, nil
}

func tallyToResponse(tally *models.Tally) *TallyResponse {
	tags := make([]TagResponse, 0, len(tally.Tags))
	for i := range tally.Tags {
		tags = append(tags, *tagToResponse(&tally.Tags[i]))
	}
	return &TallyResponse{
		ID:      tally.ID,
		WorkID:  tally.WorkID,
		Date:    tally.Date,
		Measure: tally.Measure,
		Count:   tally.Count,
		Note:    tally.Note,
		Tags:    tags,
	}
}
