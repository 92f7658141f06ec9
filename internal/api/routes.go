package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.Logout)

	app.Get("/", handler.AuthRequired, handler.ShowHome)
	app.Get("/home", handler.AuthRequired, handler.ShowHome)

	app.Get("/calendar", handler.AuthRequired, handler.ShowCalendar)
	app.Get("/add_event", handler.AuthRequired, handler.ShowAddEvent)
	app.Post("/add_event", handler.AuthRequired, handler.AddEvent)
	app.Get("/event/:id/update", handler.AuthRequired, handler.ShowUpdateEvent)
	app.Post("/event/:id/update", handler.AuthRequired, handler.UpdateEvent)
	app.Post("/event/:id/delete", handler.AuthRequired, handler.DeleteEvent)

	app.Get("/objectives", handler.AuthRequired, handler.ShowObjectives)
	app.Get("/add_objective", handler.AuthRequired, handler.ShowAddObjective)
	app.Post("/add_objective", handler.AuthRequired, handler.AddObjective)
	app.Get("/objective/:id/update", handler.AuthRequired, handler.ShowUpdateObjective)
	app.Post("/objective/:id/update", handler.AuthRequired, handler.UpdateObjective)
	app.Post("/objective/:id/delete", handler.AuthRequired, handler.DeleteObjective)
	app.Post("/mark_complete/:id", handler.AuthRequired, handler.MarkComplete)

	app.Get("/achievements", handler.AuthRequired, handler.ShowAchievements)

	app.Get("/account", handler.AuthRequired, handler.ShowAccount)
	app.Post("/account", handler.AuthRequired, handler.UpdateAccount)
}
