package handlers

import (
	"net/http"

	"writing-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkHandler handles HTTP requests for writing projects
type WorkHandler struct {
	workService service.WorkServiceInterface
}

// NewWorkHandler creates a new work handler
func NewWorkHandler(workService service.WorkServiceInterface) *WorkHandler {
	return &WorkHandler{
		workService: workService,
	}
}

// CreateWork handles POST /works
// @Summary Create a new work
// @Description Create a new writing project for the authenticated user
// @Tags works
// @Accept json
// @Produce json
// @Param work body service.CreateWorkRequest true "Work data"
// @Success 201 {object} service.WorkResponse "Successfully created work"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /works [post]
func (h *WorkHandler) CreateWork(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

// GetWork handles GET /works/:id
// @Summary Get work by ID
// @Description Get one of the authenticated user's works
// @Tags works
// @Accept json
// @Produce json
// @Param id path string true "Work ID (UUID)"
// @Success 200 {object} service.WorkResponse "Successfully retrieved work"
// @Failure 400 {object} ErrorResponse "Invalid work ID"
// @Failure 404 {object} ErrorResponse "Work not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /works/{id} [get]
func (h *WorkHandler) GetWork(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	work, err := h.workService.GetByID(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// ListWorks handles GET /works
// @Summary List works
// @Description List all of the authenticated user's works
// @Tags works
// @Accept json
// @Produce json
// @Success 200 {array} service.WorkResponse "Successfully retrieved works"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /works [get]
func (h *WorkHandler) ListWorks(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	works, err := h.workService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

// UpdateWork handles PUT /works/:id
// @Summary Update work
// @Description Update an existing work by ID
// @Tags works
// @Accept json
// @Produce json
// @Param id path string true "Work ID (UUID)"
// @Param work body service.UpdateWorkRequest true "Updated work data"
// @Success 200 {object} service.WorkResponse "Successfully updated work"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Work not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /works/{id} [put]
func (h *WorkHandler) UpdateWork(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// DeleteWork handles DELETE /works/:id
// @Summary Delete work
// @Description Delete a work and every tally logged against it
// @Tags works
// @Accept json
// @Produce json
// @Param id path string true "Work ID (UUID)"
// @Success 204 "Successfully deleted work"
// @Failure 400 {object} ErrorResponse "Invalid work ID"
// @Failure 404 {object} ErrorResponse "Work not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /works/{id} [delete]
func (h *WorkHandler) DeleteWork(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.workService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
