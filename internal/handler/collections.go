package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gallery/internal/models"
	"gallery/internal/repository"
	"gallery/internal/service"
)

// CollectionHandler serves the public, read-only collection surface.
type CollectionHandler struct {
	Repo     repository.Repository
	Covers   *service.CoverService
	Resolver *service.ArtworkResolver
	Links    *service.LinkService
	Logger   *zap.Logger
}

func (h *CollectionHandler) Register(r *gin.Engine) {
	group := r.Group("/api/collections")
	group.GET("", h.listCollections)
	group.GET("/:id/artworks", h.listArtworks)
}

type collectionView struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	CoverImageURL *string `json:"cover_image_url"`
}

// @Summary List collections
// @Tags collections
// @Param published query bool false "only published collections"
// @Success 200 {object} apiResponse
// @Router /api/collections [get]
func (h *CollectionHandler) listCollections(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	published := boolQueryPtr(c, "published")
	collections, err := h.Repo.ListCollections(c.Request.Context(), repository.ListCollectionsParams{
		Published: published,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list collections failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not list collections", nil)
		return
	}

	views := make([]collectionView, 0, len(collections))
	for i := range collections {
		col := &collections[i]
		cover := col.CoverImageURL
		if h.Covers != nil {
			cover = h.Covers.ResolveCover(c.Request.Context(), col)
		}
		views = append(views, collectionView{
			ID:            col.ID,
			Name:          col.Name,
			Description:   col.Description,
			Category:      col.Category,
			CoverImageURL: cover,
		})
	}
	Ok(c, views, nil)
}

// @Summary List resolved artworks of a collection
// @Tags collections
// @Param id path int true "collection id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/collections/{id}/artworks [get]
func (h *CollectionHandler) listArtworks(c *gin.Context) {
	if h.Links == nil || h.Resolver == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	collectionID, ok := idParam(c)
	if !ok {
		return
	}
	links, err := h.Links.ListLinks(c.Request.Context(), collectionID)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			Error(c, http.StatusNotFound, "collection not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.Warn("list links failed", zap.Uint64("collection_id", collectionID), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "could not list artworks", nil)
		return
	}

	artworks := h.Resolver.ResolveMany(c.Request.Context(), externalIDs(links))
	Ok(c, artworks, map[string]any{
		"linked":   len(links),
		"resolved": len(artworks),
	})
}

func externalIDs(links []models.CollectionArtwork) []string {
	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ExternalID)
	}
	return ids
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		Error(c, http.StatusBadRequest, "invalid collection id", nil)
		return 0, false
	}
	return id, true
}

func boolQueryPtr(c *gin.Context, key string) *bool {
	if val := c.Query(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return &b
		}
	}
	return nil
}
