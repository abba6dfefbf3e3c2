package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/internal/middleware"
	"github.com/jskang/quillpress/backend/internal/models"
	"github.com/jskang/quillpress/backend/internal/repositories"
)

// MediaHandler handles HTTP requests related to media metadata. Uploads go
// straight from the browser to object storage; this surface only records
// and removes the pointer rows.
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository) *MediaHandler {
	return &MediaHandler{mediaRepository: mediaRepo}
}

// RegisterMediaRoutes registers media mutation routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/media", h.CreateMedia)
	g.DELETE("/media/:mediaID", h.DeleteMedia)
}

// CreateMedia records a media row after a direct object-storage upload.
func (h *MediaHandler) CreateMedia(c echo.Context) error {
	var req models.CreateMediaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request payload"})
	}

	if req.UserID == "" {
		if sub, ok := c.Get(middleware.ContextSubjectKey).(string); ok {
			req.UserID = sub
		}
	}

	media := &models.Media{
		MediaID: req.MediaID,
		UserID:  req.UserID,
		Type:    req.Type,
		URL:     req.URL,
	}

	if err := h.mediaRepository.Create(c.Request().Context(), media); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return c.JSON(http.StatusConflict, models.MessageResponse{Message: "Media already exists"})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.CreateMediaResponse{
		Message: "Media created successfully",
		MediaID: media.MediaID,
	})
}

// DeleteMedia removes a media row. The object in storage is the frontend's
// problem; only the metadata row is deleted here.
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	mediaID := c.Param("mediaID")

	if err := h.mediaRepository.Delete(c.Request().Context(), mediaID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Media not found"})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Media deleted successfully"})
}
