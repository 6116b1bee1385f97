package service

import (
	"errors"
	"fmt"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTeamRequest represents the request to create a leaderboard team
type CreateTeamRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"max=20"`
}

// UpdateTeamRequest represents the request to update a leaderboard team
type UpdateTeamRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"max=20"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID            uuid.UUID `json:"id"`
	LeaderboardID uuid.UUID `json:"leaderboard_id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
}

// CreateTeam creates a team on a board; only owners may, and only when the
// board has teams enabled.
func (s *LeaderboardService) CreateTeam(userID, boardID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	board, member, err := s.visibleBoard(userID, boardID)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsOwner {
		return nil, apperrors.ErrNotBoardOwner
	}
	if !board.EnableTeams {
		return nil, apperrors.NewValidationError("enable_teams", "teams are not enabled on this leaderboard")
	}

	team := &models.LeaderboardTeam{
		LeaderboardID: boardID,
		Name:          req.Name,
		Color:         req.Color,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return teamToResponse(team), nil
}

// ListTeams retrieves all teams of a board the viewer can see
func (s *LeaderboardService) ListTeams(userID, boardID uuid.UUID) ([]TeamResponse, error) {
	if _, _, err := s.visibleBoard(userID, boardID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.GetByLeaderboard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *teamToResponse(&teams[i]))
	}
	return responses, nil
}

// UpdateTeam renames or recolors a team; only owners may.
func (s *LeaderboardService) UpdateTeam(userID, boardID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	_, member, err := s.visibleBoard(userID, boardID)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsOwner {
		return nil, apperrors.ErrNotBoardOwner
	}

	team, err := s.getBoardTeam(boardID, teamID)
	if err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.Color = req.Color
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return teamToResponse(team), nil
}

// DeleteTeam deletes a team; members assigned to it fall back to unassigned.
func (s *LeaderboardService) DeleteTeam(userID, boardID, teamID uuid.UUID) error {
	_, member, err := s.visibleBoard(userID, boardID)
	if err != nil {
		return err
	}
	if member == nil || !member.IsOwner {
		return apperrors.ErrNotBoardOwner
	}

	if _, err := s.getBoardTeam(boardID, teamID); err != nil {
		return err
	}

	return s.tx.Do(func(tx *gorm.DB) error {
		members, err := s.memberRepo.WithTx(tx).GetByLeaderboard(boardID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}
		for i := range members {
			if members[i].TeamID != nil && *members[i].TeamID == teamID {
				members[i].TeamID = nil
				if err := s.memberRepo.WithTx(tx).Update(&members[i]); err != nil {
					return fmt.Errorf("failed to unassign member: %w", err)
				}
			}
		}
		if err := s.teamRepo.WithTx(tx).Delete(teamID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

func (s *LeaderboardService) getBoardTeam(boardID, teamID uuid.UUID) (*models.LeaderboardTeam, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.LeaderboardID != boardID {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

func teamToResponse(team *models.LeaderboardTeam) *TeamResponse {
	return &TeamResponse{
		ID:            team.ID,
		LeaderboardID: team.LeaderboardID,
		Name:          team.Name,
		Color:         team.Color,
	}
}
