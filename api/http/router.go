package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akulinev/inventory/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	profile *handlers.ProfileHandler,
	products *handlers.ProductHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	// API information
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Inventory Management API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"register":        "POST /register",
				"login":           "POST /login",
				"profile":         "GET|PUT /profile",
				"products":        "GET|POST /products",
				"product":         "GET|PUT|DELETE /products/{id}",
				"update_quantity": "PUT /products/{id}/quantity",
			},
		})
	})

	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)

	app.Get("/profile", authMW, profile.Get)
	app.Put("/profile", authMW, profile.Update)

	pg := app.Group("/products", authMW)
	pg.Post("/", products.Create)
	pg.Get("/", products.List)
	pg.Get("/:id", products.GetByID)
	pg.Put("/:id", products.Update)
	pg.Put("/:id/quantity", products.UpdateQuantity)
	pg.Delete("/:id", products.Delete)
}
