package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gallery/internal/models"
	"gallery/internal/repository"
	"gallery/internal/service"
)

// AdminCollectionHandler serves the administrator surface: collection CRUD,
// publish toggling, and artwork link management.
type AdminCollectionHandler struct {
	Repo   repository.Repository
	Links  *service.LinkService
	Logger *zap.Logger
}

func (h *AdminCollectionHandler) Register(r *gin.Engine, requireAdmin gin.HandlerFunc) {
	group := r.Group("/api/admin/collections")
	if requireAdmin != nil {
		group.Use(requireAdmin)
	}
	group.GET("", h.listCollections)
	group.POST("", h.createCollection)
	group.PUT("/:id", h.updateCollection)
	group.PATCH("/:id/publish", h.setPublished)
	group.DELETE("/:id", h.deleteCollection)
	group.GET("/:id/artworks", h.listLinks)
	group.POST("/:id/artworks", h.createLink)
	group.DELETE("/:id/artworks/:externalID", h.removeLink)
}

// @Summary List all collections (admin)
// @Tags admin
// @Success 200 {object} apiResponse
// @Router /api/admin/collections [get]
func (h *AdminCollectionHandler) listCollections(c *gin.Context) {
	items, err := h.Repo.ListCollections(c.Request.Context(), repository.ListCollectionsParams{Desc: true})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("admin list collections failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not list collections", nil)
		return
	}
	Ok(c, items, nil)
}

type collectionRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	CoverImageURL string `json:"cover_image_url"`
	IsPublished   bool   `json:"is_published"`
}

// @Summary Create collection
// @Tags admin
// @Param body body collectionRequest true "collection"
// @Success 201 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/admin/collections [post]
func (h *AdminCollectionHandler) createCollection(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		Error(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	item := &models.Collection{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsPublished: req.IsPublished,
	}
	if cover := strings.TrimSpace(req.CoverImageURL); cover != "" {
		item.CoverImageURL = &cover
	}
	if err := h.Repo.CreateCollection(c.Request.Context(), item); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("create collection failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not create collection", nil)
		return
	}
	Created(c, item)
}

// @Summary Update collection
// @Tags admin
// @Param id path int true "collection id"
// @Param body body collectionRequest true "collection"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/admin/collections/{id} [put]
func (h *AdminCollectionHandler) updateCollection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		Error(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	existing, err := h.Repo.GetCollectionByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusInternalServerError, "could not load collection", nil)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "collection not found", nil)
		return
	}
	err = h.Repo.UpdateCollection(c.Request.Context(), id, map[string]any{
		"name":            req.Name,
		"description":     req.Description,
		"category":        req.Category,
		"cover_image_url": strings.TrimSpace(req.CoverImageURL),
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("update collection failed", zap.Uint64("id", id), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not update collection", nil)
		return
	}
	updated, err := h.Repo.GetCollectionByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusInternalServerError, "could not load collection", nil)
		return
	}
	Ok(c, updated, nil)
}

type publishRequest struct {
	IsPublished bool `json:"is_published"`
}

// @Summary Toggle publish state
// @Tags admin
// @Param id path int true "collection id"
// @Param body body publishRequest true "publish flag"
// @Success 200 {object} apiResponse
// @Router /api/admin/collections/{id}/publish [patch]
func (h *AdminCollectionHandler) setPublished(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.Repo.SetCollectionPublished(c.Request.Context(), id, req.IsPublished); err != nil {
		Error(c, http.StatusInternalServerError, "could not change publish state", nil)
		return
	}
	updated, err := h.Repo.GetCollectionByID(c.Request.Context(), id)
	if err != nil || updated == nil {
		Error(c, http.StatusNotFound, "collection not found", nil)
		return
	}
	Ok(c, updated, nil)
}

// @Summary Delete collection
// @Tags admin
// @Param id path int true "collection id"
// @Success 200 {object} apiResponse
// @Router /api/admin/collections/{id} [delete]
func (h *AdminCollectionHandler) deleteCollection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteCollection(c.Request.Context(), id); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("delete collection failed", zap.Uint64("id", id), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not delete collection", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List artwork links of a collection
// @Tags admin
// @Param id path int true "collection id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/admin/collections/{id}/artworks [get]
func (h *AdminCollectionHandler) listLinks(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	links, err := h.Links.ListLinks(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			Error(c, http.StatusNotFound, "collection not found", nil)
			return
		}
		Error(c, http.StatusInternalServerError, "could not list artwork links", nil)
		return
	}
	Ok(c, links, nil)
}

type createLinkRequest struct {
	ExternalID string `json:"external_id"`
	SortOrder  *int   `json:"sort_order"`
}

// @Summary Link an artwork to a collection
// @Tags admin
// @Param id path int true "collection id"
// @Param body body createLinkRequest true "link"
// @Success 201 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Failure 409 {object} apiResponse
// @Failure 422 {object} apiResponse
// @Router /api/admin/collections/{id}/artworks [post]
func (h *AdminCollectionHandler) createLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	link, err := h.Links.CreateLink(c.Request.Context(), id, req.ExternalID, req.SortOrder)
	if err != nil {
		h.writeLinkError(c, err)
		return
	}
	Created(c, link)
}

// @Summary Unlink an artwork from a collection
// @Tags admin
// @Param id path int true "collection id"
// @Param externalID path string true "external artwork id"
// @Success 204
// @Failure 404 {object} apiResponse
// @Router /api/admin/collections/{id}/artworks/{externalID} [delete]
func (h *AdminCollectionHandler) removeLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	err := h.Links.RemoveLink(c.Request.Context(), id, c.Param("externalID"))
	if err != nil {
		h.writeLinkError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCollectionHandler) writeLinkError(c *gin.Context, err error) {
	var notFound *service.ArtworkNotFoundError
	switch {
	case errors.Is(err, service.ErrExternalIDRequired):
		Error(c, http.StatusBadRequest, "external artwork id is required", nil)
	case errors.Is(err, service.ErrCollectionNotFound):
		Error(c, http.StatusNotFound, "collection not found", nil)
	case errors.Is(err, service.ErrLinkExists):
		Error(c, http.StatusConflict, "artwork already linked to this collection", nil)
	case errors.Is(err, service.ErrLinkNotFound):
		Error(c, http.StatusNotFound, "artwork not linked to this collection", nil)
	case errors.As(err, &notFound):
		// Same outcome code either way; the message tells the admin whether
		// the id is unknown or the catalog was unreachable.
		Error(c, http.StatusUnprocessableEntity, notFound.Error(), map[string]any{
			"outcome": "artwork_not_found",
		})
	default:
		if h.Logger != nil {
			h.Logger.Warn("link operation failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "link operation failed", nil)
	}
}
