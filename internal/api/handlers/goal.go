package handlers

import (
	"net/http"

	"writing-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles HTTP requests for goals
type GoalHandler struct {
	goalService service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal handles POST /goals
// @Summary Create a new goal
// @Description Create a target or habit goal for the authenticated user
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.CreateGoalRequest true "Goal data"
// @Success 201 {object} service.GoalResponse "Successfully created goal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// GetGoal handles GET /goals/:id
// @Summary Get goal by ID
// @Description Get a goal joined with its live evaluation against the ledger
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} service.GoalResponse "Successfully retrieved goal"
// @Failure 400 {object} ErrorResponse "Invalid goal ID"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.GetByID(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// ListGoals handles GET /goals
// @Summary List goals
// @Description List all of the authenticated user's goals with live evaluations
// @Tags goals
// @Accept json
// @Produce json
// @Success 200 {array} service.GoalResponse "Successfully retrieved goals"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	goals, err := h.goalService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// UpdateGoal handles PUT /goals/:id
// @Summary Update goal
// @Description Update an existing goal by ID
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param goal body service.UpdateGoalRequest true "Updated goal data"
// @Success 200 {object} service.GoalResponse "Successfully updated goal"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /goals/:id
// @Summary Delete goal
// @Description Delete a goal; the ledger it measured is untouched
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 204 "Successfully deleted goal"
// @Failure 400 {object} ErrorResponse "Invalid goal ID"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.goalService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
