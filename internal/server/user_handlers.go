package server

import (
	"postboard/internal/middleware"
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser handles GET /user/me
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	// Second independent identity check behind AuthRequired.
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(user)
}
