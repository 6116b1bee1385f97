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

// TagService handles business logic for tags
type TagService struct {
	repo      repository.TagRepositoryInterface
	validator *validator.Validate
}

// NewTagService creates a new tag service
func NewTagService(repo repository.TagRepositoryInterface, validator *validator.Validate) *TagService {
	return &TagService{repo: repo, validator: validator}
}

// CreateTagRequest represents the request to create a tag
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"max=20"`
}

// UpdateTagRequest represents the request to update a tag
type UpdateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"max=20"`
}

// TagResponse represents the response for tag operations
type TagResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// Create creates a new tag; duplicate names within an owner conflict.
func (s *TagService) Create(ownerID uuid.UUID, req *CreateTagRequest) (*TagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(ownerID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tag: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTagExists
	}

	tag := &models.Tag{
		OwnerID: ownerID,
		Name:    req.Name,
		Color:   req.Color,
	}
	if err := s.repo.Create(tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tagToResponse(tag), nil
}

// List retrieves all of the owner's tags
func (s *TagService) List(ownerID uuid.UUID) ([]TagResponse, error) {
	tags, err := s.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	responses := make([]TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, *tagToResponse(&tags[i]))
	}
	return responses, nil
}

// Update renames or recolors one of the owner's tags
func (s *TagService) Update(ownerID, id uuid.UUID, req *UpdateTagRequest) (*TagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tag, err := s.getOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != tag.Name {
		existing, err := s.repo.GetByName(ownerID, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing tag: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrTagExists
		}
	}

	tag.Name = req.Name
	tag.Color = req.Color
	if err := s.repo.Update(tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return tagToResponse(tag), nil
}

// Delete removes a tag permanently. Tallies keep their other tags.
func (s *TagService) Delete(ownerID, id uuid.UUID) error {
	if _, err := s.getOwned(ownerID, id); err != nil {
		return err
	}
	if err := s.repo.HardDelete(id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

func (s *TagService) getOwned(ownerID, id uuid.UUID) (*models.Tag, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	if tag.OwnerID != ownerID {
		return nil, apperrors.ErrTagNotFound
	}
	return tag, nil
}

func tagToResponse(tag *models.Tag) *TagResponse {
	return &TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
	}
}
