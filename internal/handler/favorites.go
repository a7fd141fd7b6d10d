package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gallery/internal/models"
	"gallery/internal/repository"
)

// demoUserID mirrors the single-visitor demo semantics of the original site:
// favorites and comments belong to one implicit anonymous user.
const demoUserID = 1

type FavoriteHandler struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (h *FavoriteHandler) Register(r *gin.Engine) {
	group := r.Group("/api/favorites")
	group.GET("", h.listFavorites)
	group.POST("", h.addFavorite)
	group.DELETE("/:externalID", h.removeFavorite)
}

// @Summary List favorites
// @Tags favorites
// @Success 200 {object} apiResponse
// @Router /api/favorites [get]
func (h *FavoriteHandler) listFavorites(c *gin.Context) {
	items, err := h.Repo.ListFavoritesByUserID(c.Request.Context(), demoUserID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list favorites failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not list favorites", nil)
		return
	}
	Ok(c, items, nil)
}

type favoriteRequest struct {
	ExternalID string `json:"external_id"`
}

// @Summary Add favorite
// @Tags favorites
// @Param body body favoriteRequest true "favorite"
// @Success 201 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/favorites [post]
func (h *FavoriteHandler) addFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	externalID := strings.TrimSpace(req.ExternalID)
	if externalID == "" {
		Error(c, http.StatusBadRequest, "external_id is required", nil)
		return
	}
	// Duplicate adds are idempotent.
	err := h.Repo.InsertFavorite(c.Request.Context(), &models.Favorite{
		UserID:     demoUserID,
		ExternalID: externalID,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("add favorite failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not add favorite", nil)
		return
	}
	Created(c, gin.H{"external_id": externalID})
}

// @Summary Remove favorite
// @Tags favorites
// @Param externalID path string true "external artwork id"
// @Success 204
// @Router /api/favorites/{externalID} [delete]
func (h *FavoriteHandler) removeFavorite(c *gin.Context) {
	if _, err := h.Repo.DeleteFavorite(c.Request.Context(), demoUserID, c.Param("externalID")); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("remove favorite failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not remove favorite", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
