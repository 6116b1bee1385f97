package handlers

import (
	"net/http"

	"writing-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TallyHandler handles HTTP requests for the progress ledger
type TallyHandler struct {
	tallyService service.TallyServiceInterface
}

// NewTallyHandler creates a new tally handler
func NewTallyHandler(tallyService service.TallyServiceInterface) *TallyHandler {
	return &TallyHandler{
		tallyService: tallyService,
	}
}

// CreateTally handles POST /tallies
// @Summary Log progress
// @Description Append a progress entry; with set_total the count is the absolute running total and the stored delta is derived
// @Tags tallies
// @Accept json
// @Produce json
// @Param tally body service.CreateTallyRequest true "Tally data"
// @Success 201 {object} service.TallyResponse "Successfully created tally"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Work not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tallies [post]
func (h *TallyHandler) CreateTally(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.CreateTallyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tally, err := h.tallyService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tally)
}

// BatchCreateTallies handles POST /tallies/batch
// @Summary Bulk import progress entries
// @Description Import multiple simple delta entries in one transaction
// @Tags tallies
// @Accept json
// @Produce json
// @Param batch body service.BatchCreateTalliesRequest true "Entries to import"
// @Success 201 {array} service.TallyResponse "Successfully created tallies"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Work not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tallies/batch [post]
func (h *TallyHandler) BatchCreateTallies(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.BatchCreateTalliesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tallies, err := h.tallyService.CreateBatch(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tallies)
}

// QueryTallies handles POST /tallies/query
// @Summary Query the ledger
// @Description List the authenticated user's tallies filtered by works, tags, measures and date range
// @Tags tallies
// @Accept json
// @Produce json
// @Param filter body service.ListTalliesRequest true "Ledger filter"
// @Success 200 {array} service.TallyResponse "Successfully retrieved tallies"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tallies/query [post]
func (h *TallyHandler) QueryTallies(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.ListTalliesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tallies, err := h.tallyService.List(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tallies)
}

// GetTally handles GET /tallies/:id
// @Summary Get tally by ID
// @Description Get one of the authenticated user's tallies
// @Tags tallies
// @Accept json
// @Produce json
// @Param id path string true "Tally ID (UUID)"
// @Success 200 {object} service.TallyResponse "Successfully retrieved tally"
// @Failure 400 {object} ErrorResponse "Invalid tally ID"
// @Failure 404 {object} ErrorResponse "Tally not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tallies/{id} [get]
func (h *TallyHandler) GetTally(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	tally, err := h.tallyService.GetByID(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tally)
}

// UpdateTally handles PUT /tallies/:id
// @Summary Revise a tally
// @Description Revise a ledger entry; a set_total revision recomputes the stored delta with the entry's own contribution excluded
// @Tags tallies
// @Accept json
// @Produce json
// @Param id path string true "Tally ID (UUID)"
// @Param tally body service.UpdateTallyRequest true "Updated tally data"
// @Success 200 {object} service.TallyResponse "Successfully updated tally"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Tally or work not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tallies/{id} [put]
func (h *TallyHandler) UpdateTally(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTallyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tally, err := h.tallyService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tally)
}

// DeleteTally handles DELETE /tallies/:id
// @Summary Retract a tally
// @Description Remove a ledger entry
// @Tags tallies
// @Accept json
// @Produce json
// @Param id path string true "Tally ID (UUID)"
// @Success 204 "Successfully deleted tally"
// @Failure 400 {object} ErrorResponse "Invalid tally ID"
// @Failure 404 {object} ErrorResponse "Tally not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tallies/{id} [delete]
func (h *TallyHandler) DeleteTally(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.tallyService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
