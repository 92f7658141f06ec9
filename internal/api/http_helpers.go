package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/avelory/studyhub/internal/services"
	"github.com/gofiber/fiber/v2"
)

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) redirectWithFlash(c *fiber.Ctx, path string, message string, category string) error {
	handler.setFlashCookie(c, FlashPayload{Message: message, Category: category})
	return c.Redirect(path, fiber.StatusSeeOther)
}

func (handler *Handler) renderError(c *fiber.Ctx, status int, message string) error {
	c.Status(status)
	return handler.render(c, "error", fiber.Map{
		"Title":   "StudyHub | Error",
		"Status":  status,
		"Message": message,
	})
}

// renderOwnershipError maps resolution failures to their page responses:
// unknown id is a 404 and a foreign owner is a 403, in that order.
func (handler *Handler) renderOwnershipError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	case errors.Is(err, services.ErrNotOwner):
		return handler.renderError(c, fiber.StatusForbidden, "You do not have permission to access that record.")
	default:
		return handler.renderError(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
