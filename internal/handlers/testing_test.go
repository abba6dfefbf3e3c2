package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jskang/quillpress/backend/internal/models"
	"github.com/jskang/quillpress/backend/internal/repositories"
)

// memPostRepository is an in-memory PostRepository mirroring the Mongo
// implementation's semantics, used to test handlers without a server.
type memPostRepository struct {
	mu    sync.Mutex
	posts map[string]models.Post
	err   error // when set, every call fails with it
}

func newMemPostRepository() *memPostRepository {
	return &memPostRepository{posts: map[string]models.Post{}}
}

func (r *memPostRepository) Exists(_ context.Context, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.posts[postID]
	return ok, nil
}

func (r *memPostRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.posts[post.PostID]; ok {
		return models.ErrConflict
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	r.posts[post.PostID] = *post
	return nil
}

func (r *memPostRepository) GetByID(_ context.Context, postID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	post, ok := r.posts[postID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &post, nil
}

func (r *memPostRepository) ListByUserID(_ context.Context, userID string) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	posts := []models.Post{}
	for _, post := range r.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *memPostRepository) ListAll(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	posts := []models.Post{}
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *memPostRepository) Update(_ context.Context, postID string, patch models.UpdatePostRequest) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	post, ok := r.posts[postID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	post.UpdatedAt = time.Now().UTC()
	r.posts[postID] = post
	return &post, nil
}

func (r *memPostRepository) Delete(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.posts[postID]; !ok {
		return models.ErrNotFound
	}
	delete(r.posts, postID)
	return nil
}

// memMediaRepository is the media counterpart.
type memMediaRepository struct {
	mu    sync.Mutex
	media map[string]models.Media
	err   error
}

func newMemMediaRepository() *memMediaRepository {
	return &memMediaRepository{media: map[string]models.Media{}}
}

func (r *memMediaRepository) Exists(_ context.Context, mediaID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.media[mediaID]
	return ok, nil
}

func (r *memMediaRepository) Create(_ context.Context, media *models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.media[media.MediaID]; ok {
		return models.ErrConflict
	}
	media.CreatedAt = time.Now().UTC()
	r.media[media.MediaID] = *media
	return nil
}

func (r *memMediaRepository) GetByID(_ context.Context, mediaID string) (*models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	media, ok := r.media[mediaID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &media, nil
}

func (r *memMediaRepository) ListByUserID(_ context.Context, userID string) ([]models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	media := []models.Media{}
	for _, m := range r.media {
		if m.UserID == userID {
			media = append(media, m)
		}
	}
	return media, nil
}

func (r *memMediaRepository) ListAll(_ context.Context) ([]models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	media := []models.Media{}
	for _, m := range r.media {
		media = append(media, m)
	}
	return media, nil
}

func (r *memMediaRepository) Delete(_ context.Context, mediaID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.media[mediaID]; !ok {
		return models.ErrNotFound
	}
	delete(r.media, mediaID)
	return nil
}

var (
	_ repositories.PostRepository  = (*memPostRepository)(nil)
	_ repositories.MediaRepository = (*memMediaRepository)(nil)
)

// newTestServer wires the content handlers onto a bare Echo instance.
func newTestServer(postRepo repositories.PostRepository, mediaRepo repositories.MediaRepository) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	g := e.Group("")
	NewPostHandler(postRepo).RegisterPostRoutes(g)
	NewMediaHandler(mediaRepo).RegisterMediaRoutes(g)
	NewItemHandler(postRepo, mediaRepo).RegisterItemRoutes(g)

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
