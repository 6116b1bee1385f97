package handlers

import (
	"net/http"

	"writing-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for tags
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTag handles POST /tags
// @Summary Create a new tag
// @Description Create a new tag for the authenticated user
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body service.CreateTagRequest true "Tag data"
// @Success 201 {object} service.TagResponse "Successfully created tag"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Tag already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// ListTags handles GET /tags
// @Summary List tags
// @Description List all of the authenticated user's tags
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {array} service.TagResponse "Successfully retrieved tags"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	tags, err := h.tagService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// UpdateTag handles PUT /tags/:id
// @Summary Update tag
// @Description Rename or recolor an existing tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Param tag body service.UpdateTagRequest true "Updated tag data"
// @Success 200 {object} service.TagResponse "Successfully updated tag"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Failure 409 {object} ErrorResponse "Tag name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles DELETE /tags/:id
// @Summary Delete tag
// @Description Delete a tag permanently; tallies keep their other tags
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 204 "Successfully deleted tag"
// @Failure 400 {object} ErrorResponse "Invalid tag ID"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.tagService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
