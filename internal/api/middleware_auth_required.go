package api

import "github.com/gofiber/fiber/v2"

// AuthRequired guards every protected page route; anonymous requests are
// sent to the login entry point.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
