package server

import (
	"errors"

	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// tokenPayload is the wire shape of an issued credential.
type tokenPayload struct {
	AccessToken string `json:"access_token"`
}

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// statusForError maps repository error codes to HTTP statuses. The conflict
// code maps to 400 to match the signup wire contract.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return fiber.StatusNotFound
		case models.CodeForbidden:
			return fiber.StatusForbidden
		case models.CodeUnauthorized:
			return fiber.StatusUnauthorized
		case models.CodeValidation, models.CodeConflict:
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}
