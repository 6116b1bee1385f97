package service

import (
	"errors"
	"fmt"
	"time"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	"writing-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalService handles goal definitions and their live evaluation against
// the tally ledger.
type GoalService struct {
	repo      repository.GoalRepositoryInterface
	tallyRepo repository.TallyRepositoryInterface
	validator *validator.Validate
	weekStart time.Weekday
	today     func() string
}

// NewGoalService creates a new goal service. weekStart aligns week-length
// habit cadence windows.
func NewGoalService(repo repository.GoalRepositoryInterface, tallyRepo repository.TallyRepositoryInterface, validator *validator.Validate, weekStart time.Weekday) *GoalService {
	return &GoalService{
		repo:      repo,
		tallyRepo: tallyRepo,
		validator: validator,
		weekStart: weekStart,
		today:     func() string { return time.Now().Format(dateLayout) },
	}
}

// CreateGoalRequest represents the request to create a goal. Exactly one of
// Target or Habit must be set, matching Type.
type CreateGoalRequest struct {
	Title       string               `json:"title" validate:"required,min=1,max=200"`
	Description string               `json:"description" validate:"max=2000"`
	Type        models.GoalType      `json:"type" validate:"required"`
	Target      *models.TargetParams `json:"target,omitempty"`
	Habit       *models.HabitParams  `json:"habit,omitempty"`
	Scope       ScopeFilterRequest   `json:"scope"`
	StartDate   string               `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string               `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalRequest represents the request to update a goal
type UpdateGoalRequest struct {
	Title       string               `json:"title" validate:"required,min=1,max=200"`
	Description string               `json:"description" validate:"max=2000"`
	Type        models.GoalType      `json:"type" validate:"required"`
	Target      *models.TargetParams `json:"target,omitempty"`
	Habit       *models.HabitParams  `json:"habit,omitempty"`
	Scope       ScopeFilterRequest   `json:"scope"`
	StartDate   string               `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string               `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// GoalEvaluation is the live result of measuring a goal against the ledger
type GoalEvaluation struct {
	Progress models.MeasureMap `json:"progress"`
	Achieved bool              `json:"achieved"`
	Streak   int               `json:"streak,omitempty"`
	Windows  []HabitWindow     `json:"windows,omitempty"`
}

// GoalResponse represents a goal joined with its live evaluation; the
// evaluation is always computed fresh, never cached.
type GoalResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Type        models.GoalType      `json:"type"`
	Target      *models.TargetParams `json:"target,omitempty"`
	Habit       *models.HabitParams  `json:"habit,omitempty"`
	Scope       models.ScopeFilter   `json:"scope"`
	StartDate   string               `json:"start_date,omitempty"`
	EndDate     string               `json:"end_date,omitempty"`
	Evaluation  GoalEvaluation       `json:"evaluation"`
}

// Create creates a new goal for the acting owner
func (s *GoalService) Create(ownerID uuid.UUID, req *CreateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateGoalShape(req.Type, req.Target, req.Habit, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Target:      req.Target,
		Habit:       req.Habit,
		Scope:       req.Scope.toModel(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return s.toResponse(ownerID, goal)
}

// GetByID retrieves a goal joined with its live evaluation
func (s *GoalService) GetByID(ownerID, id uuid.UUID) (*GoalResponse, error) {
	goal, err := s.getOwned(ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ownerID, goal)
}

// List retrieves all of the owner's goals with live evaluations
func (s *GoalService) List(ownerID uuid.UUID) ([]GoalResponse, error) {
	goals, err := s.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		resp, err := s.toResponse(ownerID, &goals[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// Update updates one of the owner's goals
func (s *GoalService) Update(ownerID, id uuid.UUID, req *UpdateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateGoalShape(req.Type, req.Target, req.Habit, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	goal, err := s.getOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Type = req.Type
	goal.Target = req.Target
	goal.Habit = req.Habit
	goal.Scope = req.Scope.toModel()
	goal.StartDate = req.StartDate
	goal.EndDate = req.EndDate
	if err := s.repo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return s.toResponse(ownerID, goal)
}

// Delete soft-deletes one of the owner's goals
func (s *GoalService) Delete(ownerID, id uuid.UUID) error {
	if _, err := s.getOwned(ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// Evaluate computes a goal's progress and achievement from the ledger.
func (s *GoalService) Evaluate(ownerID uuid.UUID, goal *models.Goal) (*GoalEvaluation, error) {
	measures := goalMeasures(goal)
	filter := buildTallyFilter(goal.Scope, measures, goal.StartDate, goal.EndDate)
	tallies, err := s.tallyRepo.Query(ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tallies: %w", err)
	}

	progress := sumByMeasure(tallies)
	eval := &GoalEvaluation{Progress: progress}

	switch goal.Type {
	case models.GoalTypeTarget:
		eval.Achieved = progress.Get(goal.Target.Measure) >= goal.Target.Count
	case models.GoalTypeHabit:
		start := goal.StartDate
		if start == "" {
			start = earliestDate(tallies)
		}
		if start == "" {
			// nothing logged and no explicit window: no cadence windows exist yet
			return eval, nil
		}
		end := s.today()
		if goal.EndDate != "" {
			end = minDate(end, goal.EndDate)
		}

		eval.Windows = habitWindows(*goal.Habit, tallies, start, end, s.weekStart)
		eval.Streak = currentStreak(eval.Windows, s.today())
		if n := len(eval.Windows); n > 0 {
			eval.Achieved = eval.Windows[n-1].Achieved
		}
	}
	return eval, nil
}

func (s *GoalService) toResponse(ownerID uuid.UUID, goal *models.Goal) (*GoalResponse, error) {
	eval, err := s.Evaluate(ownerID, goal)
	if err != nil {
		return nil, err
	}
	return &GoalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Type:        goal.Type,
		Target:      goal.Target,
		Habit:       goal.Habit,
		Scope:       goal.Scope,
		StartDate:   goal.StartDate,
		EndDate:     goal.EndDate,
		Evaluation:  *eval,
	}, nil
}

func (s *GoalService) getOwned(ownerID, id uuid.UUID) (*models.Goal, error) {
	goal, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if goal.OwnerID != ownerID {
		return nil, apperrors.ErrGoalNotFound
	}
	return goal, nil
}

// goalMeasures resolves which measures a goal's ledger query includes:
// a target's threshold measure, a thresholded habit's measure, or all
// measures for an unthresholded habit.
func goalMeasures(goal *models.Goal) []models.Measure {
	switch goal.Type {
	case models.GoalTypeTarget:
		return []models.Measure{goal.Target.Measure}
	case models.GoalTypeHabit:
		if goal.Habit.Threshold != nil {
			return []models.Measure{goal.Habit.Threshold.Measure}
		}
	}
	return nil
}

// validateGoalShape enforces the tagged union: a target goal carries target
// parameters and no cadence, a habit goal the reverse.
func validateGoalShape(goalType models.GoalType, target *models.TargetParams, habit *models.HabitParams, startDate, endDate string) error {
	if !goalType.IsValid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown goal type %q", goalType))
	}
	switch goalType {
	case models.GoalTypeTarget:
		if target == nil {
			return apperrors.NewValidationError("target", "a target goal requires target parameters")
		}
		if habit != nil {
			return apperrors.NewValidationError("habit", "a target goal cannot carry habit parameters")
		}
		if !target.Measure.IsValid() {
			return apperrors.NewValidationError("target.measure", fmt.Sprintf("unknown measure %q", target.Measure))
		}
		if target.Count <= 0 {
			return apperrors.NewValidationError("target.count", "threshold must be positive")
		}
	case models.GoalTypeHabit:
		if habit == nil {
			return apperrors.NewValidationError("habit", "a habit goal requires habit parameters")
		}
		if target != nil {
			return apperrors.NewValidationError("target", "a habit goal cannot carry target parameters")
		}
		if !habit.Cadence.Unit.IsValid() {
			return apperrors.NewValidationError("habit.cadence.unit", fmt.Sprintf("unknown cadence unit %q", habit.Cadence.Unit))
		}
		if habit.Cadence.Period < 1 {
			return apperrors.NewValidationError("habit.cadence.period", "period must be at least 1")
		}
		if t := habit.Threshold; t != nil {
			if !t.Measure.IsValid() {
				return apperrors.NewValidationError("habit.threshold.measure", fmt.Sprintf("unknown measure %q", t.Measure))
			}
			if t.Count <= 0 {
				return apperrors.NewValidationError("habit.threshold.count", "threshold must be positive")
			}
		}
	}
	if startDate != "" && endDate != "" && endDate < startDate {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

func earliestDate(tallies []models.Tally) string {
	earliest := ""
	for _, t := range tallies {
		if earliest == "" || t.Date < earliest {
			earliest = t.Date
		}
	}
	return earliest
}
