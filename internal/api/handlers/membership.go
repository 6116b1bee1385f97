package handlers

import (
	"net/http"

	"writing-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for leaderboard memberships
type MembershipHandler struct {
	leaderboardService service.LeaderboardServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(leaderboardService service.LeaderboardServiceInterface) *MembershipHandler {
	return &MembershipHandler{
		leaderboardService: leaderboardService,
	}
}

// JoinLeaderboard handles POST /leaderboards/:id/members
// @Summary Join a leaderboard
// @Description Join a joinable leaderboard; rejoining while already a member conflicts
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param membership body service.JoinLeaderboardRequest true "Membership data"
// @Success 201 {object} service.MembershipResponse "Successfully joined"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 409 {object} ErrorResponse "Already a member or board not joinable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members [post]
func (h *MembershipHandler) JoinLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.JoinLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.leaderboardService.Join(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers handles GET /leaderboards/:id/members
// @Summary List members
// @Description List the memberships of a leaderboard
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 200 {array} service.MembershipResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	members, err := h.leaderboardService.ListMembers(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMyMembership handles GET /leaderboards/:id/members/me
// @Summary Get own membership
// @Description Get the caller's membership on a leaderboard
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 200 {object} service.MembershipResponse "Successfully retrieved membership"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members/me [get]
func (h *MembershipHandler) GetMyMembership(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	member, err := h.leaderboardService.GetMyMembership(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMyMembership handles PUT /leaderboards/:id/members/me
// @Summary Update own membership
// @Description Update the caller's participation, identity mask, scope, personal goal, team or star
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param membership body service.UpdateMembershipRequest true "Updated membership data"
// @Success 200 {object} service.MembershipResponse "Successfully updated membership"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Membership or team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members/me [put]
func (h *MembershipHandler) UpdateMyMembership(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.leaderboardService.UpdateMyMembership(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember handles PUT /leaderboards/:id/members/:memberId
// @Summary Update a member
// @Description Change another member's ownership flag or team assignment; owners only
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Param membership body service.UpdateMemberRequest true "Updated member data"
// @Success 200 {object} service.MembershipResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Would leave the board without an owner"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members/{memberId} [put]
func (h *MembershipHandler) UpdateMember(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathUUID(c, "memberId")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.leaderboardService.UpdateMember(userID, id, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// LeaveLeaderboard handles DELETE /leaderboards/:id/members/me
// @Summary Leave a leaderboard
// @Description Remove the caller's membership; the last remaining owner cannot leave
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 204 "Successfully left"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 409 {object} ErrorResponse "Caller is the last owner"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members/me [delete]
func (h *MembershipHandler) LeaveLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.leaderboardService.Leave(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMember handles DELETE /leaderboards/:id/members/:memberId
// @Summary Remove a member
// @Description Remove another member from the board; owners only, last-owner rule applies
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 204 "Successfully removed member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Would leave the board without an owner"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/members/{memberId} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathUUID(c, "memberId")
	if !ok {
		return
	}

	if err := h.leaderboardService.RemoveMember(userID, id, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
