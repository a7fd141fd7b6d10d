package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gallery/internal/models"
	"gallery/internal/repository"
)

type CommentHandler struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (h *CommentHandler) Register(r *gin.Engine) {
	group := r.Group("/api/artworks/:id/comments")
	group.GET("", h.listComments)
	group.POST("", h.addComment)
}

// @Summary List comments on an artwork
// @Tags comments
// @Param id path string true "external artwork id"
// @Success 200 {object} apiResponse
// @Router /api/artworks/{id}/comments [get]
func (h *CommentHandler) listComments(c *gin.Context) {
	externalID := c.Param("id")
	items, err := h.Repo.ListCommentsByArtwork(c.Request.Context(), demoUserID, externalID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list comments failed", zap.String("external_id", externalID), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not list comments", nil)
		return
	}
	Ok(c, items, nil)
}

type commentRequest struct {
	Text string `json:"text"`
}

// @Summary Comment on an artwork
// @Tags comments
// @Param id path string true "external artwork id"
// @Param body body commentRequest true "comment"
// @Success 201 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/artworks/{id}/comments [post]
func (h *CommentHandler) addComment(c *gin.Context) {
	externalID := c.Param("id")
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		Error(c, http.StatusBadRequest, "comment text is required", nil)
		return
	}
	item := &models.Comment{
		UserID:     demoUserID,
		ExternalID: externalID,
		Text:       text,
	}
	if err := h.Repo.InsertComment(c.Request.Context(), item); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("add comment failed", zap.String("external_id", externalID), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not add comment", nil)
		return
	}
	Created(c, item)
}
