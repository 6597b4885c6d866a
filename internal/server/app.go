package server

import "github.com/gofiber/fiber/v2"

// maxBodyBytes caps request body size at 1 MiB. Larger bodies fail with 413
// before any handler runs, on every route.
const maxBodyBytes = 1 * 1024 * 1024

// NewApp constructs the Fiber application with the service-wide settings.
// Routes and middleware are attached separately by SetupMiddleware and
// SetupRoutes.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   "Postboard API",
		BodyLimit: maxBodyBytes,
	})
}
