package handlers

import "github.com/gofiber/fiber/v2"

// Register binds the resource routes. The two catch-all routes
// (/:groupName/users and /:id/groups) must come after the static
// prefixes so /users and /groups keep matching their own handlers.
func Register(app *fiber.App, users *UsersHandler, groups *GroupsHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Welcome Home"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/users", users.Create)
	app.Get("/users", users.List)
	app.Get("/users/:id", users.Get)
	app.Put("/users/:id", users.Update)
	app.Delete("/users/:id", users.Delete)

	app.Get("/groups", groups.List)
	app.Post("/groups", groups.Create)
	app.Get("/groups/:id", groups.Get)
	app.Put("/groups/:id", groups.Update)
	app.Delete("/groups/:id", groups.Delete)
	app.Post("/groups/:id/users", groups.AddMember)
	app.Delete("/groups/:id/users", groups.RemoveMember)

	app.Get("/:groupName/users", users.ListByGroup)
	app.Get("/:id/groups", groups.ListForUser)
}
