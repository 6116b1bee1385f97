package service

import (
	"errors"
	"fmt"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	"writing-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkService handles business logic for writing projects
type WorkService struct {
	repo      repository.WorkRepositoryInterface
	tallyRepo repository.TallyRepositoryInterface
	tx        repository.TxManager
	validator *validator.Validate
}

// NewWorkService creates a new work service
func NewWorkService(repo repository.WorkRepositoryInterface, tallyRepo repository.TallyRepositoryInterface, tx repository.TxManager, validator *validator.Validate) *WorkService {
	return &WorkService{
		repo:      repo,
		tallyRepo: tallyRepo,
		tx:        tx,
		validator: validator,
	}
}

// CreateWorkRequest represents the request to create a work
type CreateWorkRequest struct {
	Title           string            `json:"title" validate:"required,min=1,max=200"`
	Description     string            `json:"description" validate:"max=2000"`
	Phase           models.WorkPhase  `json:"phase"`
	StartingBalance models.MeasureMap `json:"starting_balance"`
}

// UpdateWorkRequest represents the request to update a work
type UpdateWorkRequest struct {
	Title           string            `json:"title" validate:"required,min=1,max=200"`
	Description     string            `json:"description" validate:"max=2000"`
	Phase           models.WorkPhase  `json:"phase"`
	StartingBalance models.MeasureMap `json:"starting_balance"`
}

// WorkResponse represents the response for work operations
type WorkResponse struct {
	ID              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Phase           models.WorkPhase  `json:"phase"`
	StartingBalance models.MeasureMap `json:"starting_balance"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// Create creates a new work for the acting owner
func (s *WorkService) Create(ownerID uuid.UUID, req *CreateWorkRequest) (*WorkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	phase := req.Phase
	if phase == "" {
		phase = models.WorkPhaseDrafting
	}
	if !phase.IsValid() {
		return nil, apperrors.NewValidationError("phase", "unknown lifecycle phase")
	}
	if err := validateMeasureMap(req.StartingBalance); err != nil {
		return nil, err
	}

	work := &models.Work{
		OwnerID:         ownerID,
		Title:           req.Title,
		Description:     req.Description,
		Phase:           phase,
		StartingBalance: req.StartingBalance,
	}

	if err := s.repo.Create(work); err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	return workToResponse(work), nil
}

// GetByID retrieves one of the owner's works
func (s *WorkService) GetByID(ownerID, id uuid.UUID) (*WorkResponse, error) {
	work, err := s.getOwned(ownerID, id)
	if err != nil {
		return nil, err
	}
	return workToResponse(work), nil
}

// List retrieves all of the owner's works
func (s *WorkService) List(ownerID uuid.UUID) ([]WorkResponse, error) {
	works, err := s.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}

	responses := make([]WorkResponse, 0, len(works))
	for i := range works {
		responses = append(responses, *workToResponse(&works[i]))
	}
	return responses, nil
}

// Update updates one of the owner's works
func (s *WorkService) Update(ownerID, id uuid.UUID, req *UpdateWorkRequest) (*WorkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	work, err := s.getOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Phase != "" && !req.Phase.IsValid() {
		return nil, apperrors.NewValidationError("phase", "unknown lifecycle phase")
	}
	if err := validateMeasureMap(req.StartingBalance); err != nil {
		return nil, err
	}

	work.Title = req.Title
	work.Description = req.Description
	if req.Phase != "" {
		work.Phase = req.Phase
	}
	if req.StartingBalance != nil {
		work.StartingBalance = req.StartingBalance
	}

	if err := s.repo.Update(work); err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}

	return workToResponse(work), nil
}

// Delete soft-deletes a work and every tally under it, atomically.
func (s *WorkService) Delete(ownerID, id uuid.UUID) error {
	if _, err := s.getOwned(ownerID, id); err != nil {
		return err
	}

	return s.tx.Do(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete work: %w", err)
		}
		if err := s.tallyRepo.WithTx(tx).DeleteByWorkID(id); err != nil {
			return fmt.Errorf("failed to delete work tallies: %w", err)
		}
		return nil
	})
}

// getOwned fetches a work and hides it from non-owners as not-found.
func (s *WorkService) getOwned(ownerID, id uuid.UUID) (*models.Work, error) {
	work, err := s.repo.GetByID(id)
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

func validateMeasureMap(m models.MeasureMap) error {
	for measure := range m {
		if !measure.IsValid() {
			return apperrors.NewValidationError("measure", fmt.Sprintf("unknown measure %q", measure))
		}
	}
	return nil
}

func workToResponse(work *models.Work) *WorkResponse {
	balance := work.StartingBalance
	if balance == nil {
		balance = models.MeasureMap{}
	}
	return &WorkResponse{
		ID:              work.ID,
		Title:           work.Title,
		Description:     work.Description,
		Phase:           work.Phase,
		StartingBalance: balance,
		CreatedAt:       work.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       work.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
