package handlers

import (
	"net/http"

	"writing-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles HTTP requests for leaderboards and their teams
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService service.LeaderboardServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// StarRequest toggles the caller's star on a board
type StarRequest struct {
	Starred bool `json:"starred"`
}

// CreateLeaderboard handles POST /leaderboards
// @Summary Create a new leaderboard
// @Description Create a leaderboard; the caller becomes its first owner
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param leaderboard body service.CreateLeaderboardRequest true "Leaderboard data"
// @Success 201 {object} service.LeaderboardResponse "Successfully created leaderboard"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards [post]
func (h *LeaderboardHandler) CreateLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.CreateLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.leaderboardService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetLeaderboard handles GET /leaderboards/:id
// @Summary Get leaderboard by ID
// @Description Get a leaderboard the caller is a member of, or any public leaderboard
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 200 {object} service.LeaderboardResponse "Successfully retrieved leaderboard"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id} [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	board, err := h.leaderboardService.GetByID(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// GetLeaderboardByJoinCode handles GET /leaderboards/by-code/:code
// @Summary Resolve a join code
// @Description Preview the leaderboard a join code points at
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param code path string true "Join code"
// @Success 200 {object} service.LeaderboardResponse "Successfully retrieved leaderboard"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/by-code/{code} [get]
func (h *LeaderboardHandler) GetLeaderboardByJoinCode(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	board, err := h.leaderboardService.GetByJoinCode(userID, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// UpdateLeaderboard handles PUT /leaderboards/:id
// @Summary Update leaderboard
// @Description Update a leaderboard; owners only
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param leaderboard body service.UpdateLeaderboardRequest true "Updated leaderboard data"
// @Success 200 {object} service.LeaderboardResponse "Successfully updated leaderboard"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id} [put]
func (h *LeaderboardHandler) UpdateLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.leaderboardService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// StarLeaderboard handles PUT /leaderboards/:id/star
// @Summary Star or unstar a leaderboard
// @Description Toggle the caller's starred flag on their membership
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param star body StarRequest true "Starred flag"
// @Success 204 "Successfully updated star"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/star [put]
func (h *LeaderboardHandler) StarLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req StarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.leaderboardService.Star(userID, id, req.Starred); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteLeaderboard handles DELETE /leaderboards/:id
// @Summary Delete leaderboard
// @Description Delete a leaderboard and its memberships; owners only
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 204 "Successfully deleted leaderboard"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id} [delete]
func (h *LeaderboardHandler) DeleteLeaderboard(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.leaderboardService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStandings handles GET /leaderboards/:id/standings
// @Summary Get leaderboard standings
// @Description Aggregate every participant's progress and rank them; recomputed on every call
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 200 {object} service.AggregationResponse "Successfully aggregated standings"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/standings [get]
func (h *LeaderboardHandler) GetStandings(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	standings, err := h.leaderboardService.Aggregate(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}

// CreateTeam handles POST /leaderboards/:id/teams
// @Summary Create a team
// @Description Create a team on a leaderboard; owners only
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/teams [post]
func (h *LeaderboardHandler) CreateTeam(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.leaderboardService.CreateTeam(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /leaderboards/:id/teams
// @Summary List teams
// @Description List the teams of a leaderboard
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid leaderboard ID"
// @Failure 404 {object} ErrorResponse "Leaderboard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/teams [get]
func (h *LeaderboardHandler) ListTeams(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	teams, err := h.leaderboardService.ListTeams(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /leaderboards/:id/teams/:teamId
// @Summary Update team
// @Description Rename or recolor a team; owners only
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Updated team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Leaderboard or team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/teams/{teamId} [put]
func (h *LeaderboardHandler) UpdateTeam(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.leaderboardService.UpdateTeam(userID, id, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /leaderboards/:id/teams/:teamId
// @Summary Delete team
// @Description Delete a team and unassign its members; owners only
// @Tags leaderboards
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an owner"
// @Failure 404 {object} ErrorResponse "Leaderboard or team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leaderboards/{id}/teams/{teamId} [delete]
func (h *LeaderboardHandler) DeleteTeam(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	if err := h.leaderboardService.DeleteTeam(userID, id, teamID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
