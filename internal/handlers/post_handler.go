package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/internal/middleware"
	"github.com/jskang/quillpress/backend/internal/models"
	"github.com/jskang/quillpress/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post mutation routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/post", h.CreatePost)
	g.PUT("/post/:postID", h.UpdatePost)
	g.DELETE("/post/:postID", h.DeletePost)
}

// CreatePost creates a new post. The id is caller-generated; a duplicate
// answers 409 and leaves the existing row untouched.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Title is required"})
	}

	// The owner defaults to the bearer token's subject when the body
	// doesn't name one.
	if req.UserID == "" {
		if sub, ok := c.Get(middleware.ContextSubjectKey).(string); ok {
			req.UserID = sub
		}
	}

	post := &models.Post{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := h.postRepository.Create(c.Request().Context(), post); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return c.JSON(http.StatusConflict, models.MessageResponse{Message: "Post already exists"})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.CreatePostResponse{
		Message: "Post created successfully",
		PostID:  post.PostID,
		Title:   post.Title,
	})
}

// UpdatePost patches title and/or content of an existing post and always
// refreshes updatedAt, returning the stored attributes after the update.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID := c.Param("postID")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request payload"})
	}

	post, err := h.postRepository.Update(c.Request().Context(), postID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Post not found"})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, models.UpdatePostResponse{
		Message: "Post updated successfully",
		Post:    post,
	})
}

// DeletePost removes a post. Deletion is physical and irreversible.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID := c.Param("postID")

	if err := h.postRepository.Delete(c.Request().Context(), postID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Post not found"})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Post deleted successfully"})
}
