package api

import (
	"fmt"

	"github.com/avelory/studyhub/internal/forms"
	"github.com/avelory/studyhub/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	events, err := handler.eventService.ListForUser(user.ID)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}

	return handler.render(c, "calendar", fiber.Map{
		"Title":  "StudyHub | Calendar",
		"Events": events,
	})
}

func (handler *Handler) ShowAddEvent(c *fiber.Ctx) error {
	return handler.render(c, "event_form", fiber.Map{
		"Title":      "StudyHub | Add Event",
		"Heading":    "Add Event",
		"FormAction": "/add_event",
		"Form":       &forms.EventForm{},
	})
}

func (handler *Handler) AddEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := &forms.EventForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}

	if fieldErrors := form.Validate(handler.location); fieldErrors.Any() {
		return handler.render(c, "event_form", fiber.Map{
			"Title":      "StudyHub | Add Event",
			"Heading":    "Add Event",
			"FormAction": "/add_event",
			"Form":       form,
			"Errors":     fieldErrors,
		})
	}

	event := models.CalendarEvent{
		Title:       form.Title,
		Date:        form.ParsedDate,
		Description: form.Description,
		UserID:      user.ID,
	}
	if err := handler.eventService.Create(&event); err != nil {
		return handler.redirectWithFlash(c, "/calendar", genericFailureMessage, flashDanger)
	}

	return handler.redirectWithFlash(c, "/calendar",
		"Event has been added to your calendar!", flashSuccess)
}

func (handler *Handler) ShowUpdateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	eventID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	event, err := handler.eventService.GetOwned(eventID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	form := &forms.EventForm{
		Title:       event.Title,
		Date:        event.Date.Format("2006-01-02"),
		Description: event.Description,
	}
	return handler.render(c, "event_form", fiber.Map{
		"Title":      "StudyHub | Update Event",
		"Heading":    "Update Event",
		"FormAction": fmt.Sprintf("/event/%d/update", event.ID),
		"Form":       form,
	})
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	eventID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	event, err := handler.eventService.GetOwned(eventID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	form := &forms.EventForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}

	if fieldErrors := form.Validate(handler.location); fieldErrors.Any() {
		return handler.render(c, "event_form", fiber.Map{
			"Title":      "StudyHub | Update Event",
			"Heading":    "Update Event",
			"FormAction": fmt.Sprintf("/event/%d/update", event.ID),
			"Form":       form,
			"Errors":     fieldErrors,
		})
	}

	event.Title = form.Title
	event.Date = form.ParsedDate
	event.Description = form.Description
	if err := handler.eventService.Update(&event); err != nil {
		return handler.redirectWithFlash(c, "/calendar", genericFailureMessage, flashDanger)
	}

	return handler.redirectWithFlash(c, "/calendar", "Your event has been updated!", flashSuccess)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	eventID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	event, err := handler.eventService.GetOwned(eventID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	if err := handler.eventService.Delete(event.ID); err != nil {
		return handler.redirectWithFlash(c, "/calendar", genericFailureMessage, flashDanger)
	}

	return handler.redirectWithFlash(c, "/calendar", "Your event has been deleted!", flashSuccess)
}
