package server

import (
	"postboard/internal/cache"
	"postboard/internal/config"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token"))
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidatePostTitle(req.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePostContent(req.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	// The listing cache is intentionally NOT invalidated here; it stays
	// stale until the next cache-miss read overwrites it.
	return c.JSON(post)
}

// GetPosts handles GET /posts. In the scoped mode it returns the
// authenticated user's posts straight from the store. In the global mode it
// serves everyone's posts through the result cache: a non-empty cached
// listing is returned verbatim, and a miss reads the store and
// unconditionally overwrites the cache entry.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	if s.config.PostsListing == config.PostsListingGlobal {
		if cached, found := cache.GetPostList(ctx); found && len(cached) > 0 {
			return c.JSON(cached)
		}

		posts, err := s.postRepo.ListAll(ctx)
		if err != nil {
			return models.RespondWithError(c, statusForError(err), err)
		}
		if len(posts) == 0 {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("No posts found"))
		}

		cache.SetPostList(ctx, posts)
		return c.JSON(posts)
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token"))
	}

	posts, err := s.postRepo.ListByOwner(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if len(posts) == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("No posts found"))
	}

	return c.JSON(posts)
}

// DeletePost handles DELETE /post/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token"))
	}

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Ownership is checked inside the repository, not here.
	if _, err := s.postRepo.DeleteByID(c.Context(), postID, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"detail": "Post deleted successfully"})
}
