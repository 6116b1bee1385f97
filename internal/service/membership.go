package service

import (
	"errors"
	"fmt"

	"writing-tracker-backend/internal/database/models"
	apperrors "writing-tracker-backend/internal/errors"
	"writing-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinLeaderboardRequest represents the request to join a leaderboard
type JoinLeaderboardRequest struct {
	AsParticipant *bool                `json:"as_participant,omitempty"`
	DisplayName   string               `json:"display_name" validate:"max=100"`
	Color         string               `json:"color" validate:"max=20"`
	TeamID        *uuid.UUID           `json:"team_id,omitempty"`
	PersonalGoal  *models.TargetParams `json:"personal_goal,omitempty"`
	Scope         ScopeFilterRequest   `json:"scope"`
}

// UpdateMembershipRequest represents a member's update to their own row.
// Nil fields are left unchanged.
type UpdateMembershipRequest struct {
	IsParticipant *bool                `json:"is_participant,omitempty"`
	DisplayName   *string              `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Color         *string              `json:"color,omitempty" validate:"omitempty,max=20"`
	TeamID        *uuid.UUID           `json:"team_id,omitempty"`
	ClearTeam     bool                 `json:"clear_team,omitempty"`
	PersonalGoal  *models.TargetParams `json:"personal_goal,omitempty"`
	Scope         *ScopeFilterRequest  `json:"scope,omitempty"`
	Starred       *bool                `json:"starred,omitempty"`
}

// UpdateMemberRequest is an owner's update to another member's row. Owners
// administer ownership and team assignment; everything else stays the
// member's own to edit.
type UpdateMemberRequest struct {
	IsOwner   *bool      `json:"is_owner,omitempty"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	ClearTeam bool       `json:"clear_team,omitempty"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	ID            uuid.UUID            `json:"id"`
	LeaderboardID uuid.UUID            `json:"leaderboard_id"`
	UserID        uuid.UUID            `json:"user_id"`
	IsOwner       bool                 `json:"is_owner"`
	IsParticipant bool                 `json:"is_participant"`
	TeamID        *uuid.UUID           `json:"team_id,omitempty"`
	DisplayName   string               `json:"display_name,omitempty"`
	Color         string               `json:"color,omitempty"`
	PersonalGoal  *models.TargetParams `json:"personal_goal,omitempty"`
	Scope         models.ScopeFilter   `json:"scope"`
	Starred       bool                 `json:"starred"`
}

// Join adds the user to a board as a non-owner member. The joinability and
// duplicate checks run inside one transaction with the insert.
func (s *LeaderboardService) Join(userID, boardID uuid.UUID, req *JoinLeaderboardRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	asParticipant := true
	if req.AsParticipant != nil {
		asParticipant = *req.AsParticipant
	}

	var member *models.LeaderboardMember
	err := s.tx.Do(func(tx *gorm.DB) error {
		board, err := s.repo.WithTx(tx).GetByID(boardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLeaderboardNotFound
			}
			return fmt.Errorf("failed to get leaderboard: %w", err)
		}
		if !board.IsJoinable {
			return apperrors.ErrBoardNotJoinable
		}

		memberRepo := s.memberRepo.WithTx(tx)
		if _, err := memberRepo.GetActive(boardID, userID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		if req.TeamID != nil {
			if err := s.checkTeam(tx, board, *req.TeamID); err != nil {
				return err
			}
		}

		member = &models.LeaderboardMember{
			LeaderboardID: boardID,
			UserID:        userID,
			IsOwner:       false,
			IsParticipant: asParticipant,
			TeamID:        req.TeamID,
			DisplayName:   req.DisplayName,
			Color:         req.Color,
			PersonalGoal:  req.PersonalGoal,
			Scope:         req.Scope.toModel(),
		}
		if err := memberRepo.Create(member); err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return memberToResponse(member), nil
}

// GetMyMembership retrieves the acting user's membership on a board
func (s *LeaderboardService) GetMyMembership(userID, boardID uuid.UUID) (*MembershipResponse, error) {
	member, err := s.memberRepo.GetActive(boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return memberToResponse(member), nil
}

// ListMembers retrieves all memberships of a board the viewer can see
func (s *LeaderboardService) ListMembers(userID, boardID uuid.UUID) ([]MembershipResponse, error) {
	if _, _, err := s.visibleBoard(userID, boardID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetByLeaderboard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MembershipResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *memberToResponse(&members[i]))
	}
	return responses, nil
}

// UpdateMyMembership updates the acting user's own membership row. Ownership
// is not self-service; promoting or demoting goes through UpdateMember.
func (s *LeaderboardService) UpdateMyMembership(userID, boardID uuid.UUID, req *UpdateMembershipRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var member *models.LeaderboardMember
	err := s.tx.Do(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)
		var err error
		member, err = memberRepo.GetActive(boardID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMemberNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}

		if req.IsParticipant != nil {
			member.IsParticipant = *req.IsParticipant
		}
		if req.DisplayName != nil {
			member.DisplayName = *req.DisplayName
		}
		if req.Color != nil {
			member.Color = *req.Color
		}
		if req.ClearTeam {
			member.TeamID = nil
		} else if req.TeamID != nil {
			board, err := s.repo.WithTx(tx).GetByID(boardID)
			if err != nil {
				return fmt.Errorf("failed to get leaderboard: %w", err)
			}
			if err := s.checkTeam(tx, board, *req.TeamID); err != nil {
				return err
			}
			member.TeamID = req.TeamID
		}
		if req.PersonalGoal != nil {
			member.PersonalGoal = req.PersonalGoal
		}
		if req.Scope != nil {
			member.Scope = req.Scope.toModel()
		}
		if req.Starred != nil {
			member.Starred = *req.Starred
		}

		if err := memberRepo.Update(member); err != nil {
			return fmt.Errorf("failed to update membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return memberToResponse(member), nil
}

// UpdateMember lets an owner change another member's ownership flag or team.
// Demoting the last remaining owner conflicts.
func (s *LeaderboardService) UpdateMember(actingUserID, boardID, memberID uuid.UUID, req *UpdateMemberRequest) (*MembershipResponse, error) {
	var member *models.LeaderboardMember
	err := s.tx.Do(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)
		acting, err := memberRepo.GetActive(boardID, actingUserID)
		if err != nil || !acting.IsOwner {
			return apperrors.ErrNotBoardOwner
		}

		member, err = memberRepo.GetByID(memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMemberNotFound
			}
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member.LeaderboardID != boardID {
			return apperrors.ErrMemberNotFound
		}

		if req.IsOwner != nil {
			if member.IsOwner && !*req.IsOwner {
				remaining, err := memberRepo.CountOwners(boardID, &member.ID)
				if err != nil {
					return fmt.Errorf("failed to count owners: %w", err)
				}
				if remaining == 0 {
					return apperrors.ErrLastOwner
				}
			}
			member.IsOwner = *req.IsOwner
		}
		if req.ClearTeam {
			member.TeamID = nil
		} else if req.TeamID != nil {
			board, err := s.repo.WithTx(tx).GetByID(boardID)
			if err != nil {
				return fmt.Errorf("failed to get leaderboard: %w", err)
			}
			if err := s.checkTeam(tx, board, *req.TeamID); err != nil {
				return err
			}
			member.TeamID = req.TeamID
		}

		if err := memberRepo.Update(member); err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return memberToResponse(member), nil
}

// Leave removes the acting user's membership. The last remaining owner
// cannot leave; ownership must be handed over first.
func (s *LeaderboardService) Leave(userID, boardID uuid.UUID) error {
	return s.tx.Do(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)
		member, err := memberRepo.GetActive(boardID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMemberNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}
		return s.removeMember(memberRepo, member)
	})
}

// RemoveMember lets an owner remove another member, under the same
// last-owner rule as leaving.
func (s *LeaderboardService) RemoveMember(actingUserID, boardID, memberID uuid.UUID) error {
	return s.tx.Do(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)
		acting, err := memberRepo.GetActive(boardID, actingUserID)
		if err != nil || !acting.IsOwner {
			return apperrors.ErrNotBoardOwner
		}

		member, err := memberRepo.GetByID(memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMemberNotFound
			}
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member.LeaderboardID != boardID {
			return apperrors.ErrMemberNotFound
		}
		return s.removeMember(memberRepo, member)
	})
}

// removeMember deletes a membership after the last-owner check. Runs inside
// the caller's transaction so the count and the delete are atomic.
func (s *LeaderboardService) removeMember(memberRepo repository.LeaderboardMemberRepositoryInterface, member *models.LeaderboardMember) error {
	if member.IsOwner {
		remaining, err := memberRepo.CountOwners(member.LeaderboardID, &member.ID)
		if err != nil {
			return fmt.Errorf("failed to count owners: %w", err)
		}
		if remaining == 0 {
			return apperrors.ErrLastOwner
		}
	}
	if err := memberRepo.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// checkTeam verifies a team id belongs to the board and that teams are on.
func (s *LeaderboardService) checkTeam(tx *gorm.DB, board *models.Leaderboard, teamID uuid.UUID) error {
	if !board.EnableTeams {
		return apperrors.NewValidationError("team_id", "teams are not enabled on this leaderboard")
	}
	team, err := s.teamRepo.WithTx(tx).GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team.LeaderboardID != board.ID {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

func memberToResponse(member *models.LeaderboardMember) *MembershipResponse {
	return &MembershipResponse{
		ID:            member.ID,
		LeaderboardID: member.LeaderboardID,
		UserID:        member.UserID,
		IsOwner:       member.IsOwner,
		IsParticipant: member.IsParticipant,
		TeamID:        member.TeamID,
		DisplayName:   member.DisplayName,
		Color:         member.Color,
		PersonalGoal:  member.PersonalGoal,
		Scope:         member.Scope,
		Starred:       member.Starred,
	}
}
