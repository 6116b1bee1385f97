package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	"writing-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardService handles leaderboards, their teams, the membership
// state machine, and progress aggregation.
type LeaderboardService struct {
	repo       repository.LeaderboardRepositoryInterface
	teamRepo   repository.LeaderboardTeamRepositoryInterface
	memberRepo repository.LeaderboardMemberRepositoryInterface
	tallyRepo  repository.TallyRepositoryInterface
	tx         repository.TxManager
	validator  *validator.Validate
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(
	repo repository.LeaderboardRepositoryInterface,
	teamRepo repository.LeaderboardTeamRepositoryInterface,
	memberRepo repository.LeaderboardMemberRepositoryInterface,
	tallyRepo repository.TallyRepositoryInterface,
	tx repository.TxManager,
	validator *validator.Validate,
) *LeaderboardService {
	return &LeaderboardService{
		repo:       repo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		tallyRepo:  tallyRepo,
		tx:         tx,
		validator:  validator,
	}
}

// CreateLeaderboardRequest represents the request to create a leaderboard.
// The creator becomes the board's first owner; AsParticipant controls
// whether they also compete on it.
type CreateLeaderboardRequest struct {
	Title              string             `json:"title" validate:"required,min=1,max=200"`
	Description        string             `json:"description" validate:"max=2000"`
	Measures           models.MeasureList `json:"measures"`
	StartDate          string             `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            string             `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Goal               models.MeasureMap  `json:"goal"`
	IndividualGoalMode bool               `json:"individual_goal_mode"`
	FundraiserMode     bool               `json:"fundraiser_mode"`
	EnableTeams        bool               `json:"enable_teams"`
	IsJoinable         bool               `json:"is_joinable"`
	IsPublic           bool               `json:"is_public"`
	AsParticipant      *bool              `json:"as_participant,omitempty"`
	PersonalGoal       *models.TargetParams `json:"personal_goal,omitempty"`
}

// UpdateLeaderboardRequest represents the request to update a leaderboard
type UpdateLeaderboardRequest struct {
	Title              string             `json:"title" validate:"required,min=1,max=200"`
	Description        string             `json:"description" validate:"max=2000"`
	Measures           models.MeasureList `json:"measures"`
	StartDate          string             `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            string             `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Goal               models.MeasureMap  `json:"goal"`
	IndividualGoalMode bool               `json:"individual_goal_mode"`
	FundraiserMode     bool               `json:"fundraiser_mode"`
	EnableTeams        bool               `json:"enable_teams"`
	IsJoinable         bool               `json:"is_joinable"`
	IsPublic           bool               `json:"is_public"`
}

// LeaderboardResponse represents the response for leaderboard operations
type LeaderboardResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Measures           models.MeasureList `json:"measures"`
	StartDate          string             `json:"start_date,omitempty"`
	EndDate            string             `json:"end_date,omitempty"`
	Goal               models.MeasureMap  `json:"goal"`
	IndividualGoalMode bool               `json:"individual_goal_mode"`
	FundraiserMode     bool               `json:"fundraiser_mode"`
	EnableTeams        bool               `json:"enable_teams"`
	IsJoinable         bool               `json:"is_joinable"`
	IsPublic           bool               `json:"is_public"`
	JoinCode           string             `json:"join_code,omitempty"`
	Starred            bool               `json:"starred"`
}

// Create creates a leaderboard and its first owner membership atomically.
func (s *LeaderboardService) Create(userID uuid.UUID, req *CreateLeaderboardRequest) (*LeaderboardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateBoardShape(req.Measures, req.Goal, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	board := &models.Leaderboard{
		OwnerID:            userID,
		Title:              req.Title,
		Description:        req.Description,
		Measures:           req.Measures,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Goal:               req.Goal,
		IndividualGoalMode: req.IndividualGoalMode,
		FundraiserMode:     req.FundraiserMode,
		EnableTeams:        req.EnableTeams,
		IsJoinable:         req.IsJoinable,
		IsPublic:           req.IsPublic,
		JoinCode:           newJoinCode(),
	}
	normalizeBoard(board)

	asParticipant := true
	if req.AsParticipant != nil {
		asParticipant = *req.AsParticipant
	}

	var member *models.LeaderboardMember
	err := s.tx.Do(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(board); err != nil {
			return fmt.Errorf("failed to create leaderboard: %w", err)
		}
		member = &models.LeaderboardMember{
			LeaderboardID: board.ID,
			UserID:        userID,
			IsOwner:       true,
			IsParticipant: asParticipant,
			PersonalGoal:  req.PersonalGoal,
		}
		if err := s.memberRepo.WithTx(tx).Create(member); err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return boardToResponse(board, member), nil
}

// GetByID retrieves a leaderboard the user is allowed to see. Members and
// public viewers get it; everyone else gets not-found, never forbidden.
func (s *LeaderboardService) GetByID(userID, id uuid.UUID) (*LeaderboardResponse, error) {
	board, member, err := s.visibleBoard(userID, id)
	if err != nil {
		return nil, err
	}
	resp := boardToResponse(board, member)
	if member == nil {
		// join codes are for members to share, not for public browsing
		resp.JoinCode = ""
	}
	return resp, nil
}

// GetByJoinCode resolves a join code to its board so a prospective member
// can preview what they are joining.
func (s *LeaderboardService) GetByJoinCode(userID uuid.UUID, code string) (*LeaderboardResponse, error) {
	board, err := s.repo.GetByJoinCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderboardNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	member, err := s.activeMember(board.ID, userID)
	if err != nil {
		return nil, err
	}
	return boardToResponse(board, member), nil
}

// Update updates a leaderboard; only owners may.
func (s *LeaderboardService) Update(userID, id uuid.UUID, req *UpdateLeaderboardRequest) (*LeaderboardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateBoardShape(req.Measures, req.Goal, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	board, member, err := s.visibleBoard(userID, id)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsOwner {
		return nil, apperrors.ErrNotBoardOwner
	}

	board.Title = req.Title
	board.Description = req.Description
	board.Measures = req.Measures
	board.StartDate = req.StartDate
	board.EndDate = req.EndDate
	board.Goal = req.Goal
	board.IndividualGoalMode = req.IndividualGoalMode
	board.FundraiserMode = req.FundraiserMode
	board.EnableTeams = req.EnableTeams
	board.IsJoinable = req.IsJoinable
	board.IsPublic = req.IsPublic
	normalizeBoard(board)

	if err := s.repo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update leaderboard: %w", err)
	}

	return boardToResponse(board, member), nil
}

// Star toggles the viewer's starred flag on their membership, atomically.
func (s *LeaderboardService) Star(userID, id uuid.UUID, starred bool) error {
	return s.tx.Do(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)
		member, err := memberRepo.GetActive(id, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLeaderboardNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}
		member.Starred = starred
		if err := memberRepo.Update(member); err != nil {
			return fmt.Errorf("failed to star leaderboard: %w", err)
		}
		return nil
	})
}

// Delete soft-deletes a board and its memberships; only owners may.
func (s *LeaderboardService) Delete(userID, id uuid.UUID) error {
	_, member, err := s.visibleBoard(userID, id)
	if err != nil {
		return err
	}
	if member == nil || !member.IsOwner {
		return apperrors.ErrNotBoardOwner
	}

	return s.tx.Do(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete leaderboard: %w", err)
		}
		if err := s.memberRepo.WithTx(tx).DeleteByLeaderboard(id); err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}
		return nil
	})
}

// normalizeBoard applies the individual-goal invariant: a board in
// individual-goal mode carries no shared goal, no measure list, and cannot
// be a fundraiser. Submitted values are cleared, not rejected.
func normalizeBoard(board *models.Leaderboard) {
	if board.IndividualGoalMode {
		board.Goal = models.MeasureMap{}
		board.Measures = models.MeasureList{}
		board.FundraiserMode = false
	}
	if board.Goal == nil {
		board.Goal = models.MeasureMap{}
	}
	if board.Measures == nil {
		board.Measures = models.MeasureList{}
	}
}

func validateBoardShape(measures models.MeasureList, goal models.MeasureMap, startDate, endDate string) error {
	for _, m := range measures {
		if !m.IsValid() {
			return apperrors.NewValidationError("measures", fmt.Sprintf("unknown measure %q", m))
		}
	}
	if err := validateMeasureMap(goal); err != nil {
		return err
	}
	for m := range goal {
		if !measures.Contains(m) {
			return apperrors.NewValidationError("goal", fmt.Sprintf("goal measure %q is not tracked by this leaderboard", m))
		}
	}
	if startDate != "" && endDate != "" && endDate < startDate {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// visibleBoard fetches a board and the viewer's active membership (nil for
// public viewers). Invisible boards surface as not-found.
func (s *LeaderboardService) visibleBoard(userID, id uuid.UUID) (*models.Leaderboard, *models.LeaderboardMember, error) {
	board, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrLeaderboardNotFound
		}
		return nil, nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	member, err := s.activeMember(id, userID)
	if err != nil {
		return nil, nil, err
	}
	if member == nil && !board.IsPublic {
		return nil, nil, apperrors.ErrLeaderboardNotFound
	}
	return board, member, nil
}

func (s *LeaderboardService) activeMember(boardID, userID uuid.UUID) (*models.LeaderboardMember, error) {
	member, err := s.memberRepo.GetActive(boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return member, nil
}

func boardToResponse(board *models.Leaderboard, member *models.LeaderboardMember) *LeaderboardResponse {
	starred := false
	if member != nil {
		starred = member.Starred
	}
	return &LeaderboardResponse{
		ID:                 board.ID,
		Title:              board.Title,
		Description:        board.Description,
		Measures:           board.Measures,
		StartDate:          board.StartDate,
		EndDate:            board.EndDate,
		Goal:               board.Goal,
		IndividualGoalMode: board.IndividualGoalMode,
		FundraiserMode:     board.FundraiserMode,
		EnableTeams:        board.EnableTeams,
		IsJoinable:         board.IsJoinable,
		IsPublic:           board.IsPublic,
		JoinCode:           board.JoinCode,
		Starred:            starred,
	}
}

// newJoinCode returns a random 16-hex-character join code.
func newJoinCode() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
