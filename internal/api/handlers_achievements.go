package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowAchievements(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	achievements, err := handler.objectiveService.ListAchievementsForUser(user.ID)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}

	return handler.render(c, "achievements", fiber.Map{
		"Title":        "StudyHub | Achievements",
		"Achievements": achievements,
	})
}
