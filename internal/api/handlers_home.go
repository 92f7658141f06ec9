package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dashboardPreviewLimit = 5

func (handler *Handler) ShowHome(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, handler.location)
	upcomingEvents, err := handler.eventService.ListUpcomingForUser(user.ID, startOfDay, dashboardPreviewLimit)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}
	activeObjectives, err := handler.objectiveService.ListActiveForUser(user.ID, dashboardPreviewLimit)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}

	return handler.render(c, "home", fiber.Map{
		"Title":            "StudyHub | Home",
		"UpcomingEvents":   upcomingEvents,
		"ActiveObjectives": activeObjectives,
	})
}
