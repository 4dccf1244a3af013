package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	// Reading surface
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/home", fiber.StatusSeeOther)
	})
	app.Get("/home", handlers.Home)
	app.Get("/articles/:articleId", handlers.Article)
	app.Get("/api/menu", handlers.Menu)

	// Engagement mutations, throttled per IP
	mutations := app.Group("", rateLimiter.Middleware())
	mutations.Post("/articles/:articleId/like", handlers.Like)
	mutations.Post("/articles/:articleId/comments", handlers.PostComment)
	mutations.Post("/articles/:articleId/composer", handlers.ToggleComposer)

	// Session boundary
	app.Post("/login", handlers.Login)
	app.Post("/logout", handlers.Logout)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("404 NOT FOUND")
	})
}
