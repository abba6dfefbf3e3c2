package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/internal/models"
	"github.com/jskang/quillpress/backend/internal/repositories"
)

// ItemHandler serves the read side: point lookups, owner-index queries and
// full-collection listings for posts and media.
type ItemHandler struct {
	postRepository  repositories.PostRepository
	mediaRepository repositories.MediaRepository
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(postRepo repositories.PostRepository, mediaRepo repositories.MediaRepository) *ItemHandler {
	return &ItemHandler{postRepository: postRepo, mediaRepository: mediaRepo}
}

// RegisterItemRoutes registers the query route
func (h *ItemHandler) RegisterItemRoutes(g *echo.Group) {
	g.GET("/items", h.GetItems)
}

// GetItems dispatches on the type, id and userId query parameters. An id
// wins over userId; with neither, the whole collection comes back. No type
// means the post listing.
func (h *ItemHandler) GetItems(c echo.Context) error {
	itemType := c.QueryParam("type")
	id := c.QueryParam("id")
	userID := c.QueryParam("userId")
	ctx := c.Request().Context()

	switch itemType {
	case "media":
		if id != "" {
			media, err := h.mediaRepository.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					return c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Media not found"})
				}
				return internalError(c, err)
			}
			return c.JSON(http.StatusOK, media)
		}
		if userID != "" {
			media, err := h.mediaRepository.ListByUserID(ctx, userID)
			if err != nil {
				return internalError(c, err)
			}
			return c.JSON(http.StatusOK, media)
		}
		media, err := h.mediaRepository.ListAll(ctx)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(http.StatusOK, media)

	case "post":
		if id != "" {
			post, err := h.postRepository.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					return c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Post not found"})
				}
				return internalError(c, err)
			}
			return c.JSON(http.StatusOK, post)
		}
		if userID != "" {
			posts, err := h.postRepository.ListByUserID(ctx, userID)
			if err != nil {
				return internalError(c, err)
			}
			return c.JSON(http.StatusOK, posts)
		}
		fallthrough

	default:
		// No type (or an unknown one) means the full post listing.
		posts, err := h.postRepository.ListAll(ctx)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(http.StatusOK, posts)
	}
}
