package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["CurrentUser"]; !exists {
		if user, ok := currentUser(c); ok {
			payload["CurrentUser"] = user
		}
	}
	if _, exists := payload["CurrentPath"]; !exists {
		payload["CurrentPath"] = c.Path()
	}
	if _, exists := payload["Flash"]; !exists {
		payload["Flash"] = handler.popFlashCookie(c)
	}
	if _, exists := payload["CSRFToken"]; !exists {
		if token, ok := c.Locals("csrf").(string); ok {
			payload["CSRFToken"] = token
		} else {
			payload["CSRFToken"] = ""
		}
	}
	if _, exists := payload["Errors"]; !exists {
		payload["Errors"] = map[string]string{}
	}
	return payload
}
