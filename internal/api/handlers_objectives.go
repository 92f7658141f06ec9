package api

import (
	"fmt"
	"time"

	"github.com/avelory/studyhub/internal/forms"
	"github.com/avelory/studyhub/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowObjectives(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	objectives, err := handler.objectiveService.ListForUser(user.ID)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}

	return handler.render(c, "objectives", fiber.Map{
		"Title":      "StudyHub | Objectives",
		"Objectives": objectives,
	})
}

func (handler *Handler) ShowAddObjective(c *fiber.Ctx) error {
	return handler.render(c, "objective_form", fiber.Map{
		"Title":      "StudyHub | Add Objective",
		"Heading":    "Add Objective",
		"FormAction": "/add_objective",
		"Form":       &forms.ObjectiveForm{},
	})
}

func (handler *Handler) AddObjective(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := &forms.ObjectiveForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}
	form.Completed = forms.ParseBoolField(c.FormValue("completed"))

	if fieldErrors := form.Validate(handler.location); fieldErrors.Any() {
		return handler.render(c, "objective_form", fiber.Map{
			"Title":      "StudyHub | Add Objective",
			"Heading":    "Add Objective",
			"FormAction": "/add_objective",
			"Form":       form,
			"Errors":     fieldErrors,
		})
	}

	objective := models.StudyObjective{
		Title:           form.Title,
		Description:     form.Description,
		TargetDate:      form.ParsedTargetDate,
		CurrentProgress: form.Progress,
		Completed:       form.Completed,
		UserID:          user.ID,
	}
	if err := handler.objectiveService.Create(&objective, time.Now().In(handler.location)); err != nil {
		return handler.redirectWithFlash(c, "/objectives", genericFailureMessage, flashDanger)
	}

	return handler.redirectWithFlash(c, "/objectives", "Objective has been added!", flashSuccess)
}

func (handler *Handler) ShowUpdateObjective(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	objectiveID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	objective, err := handler.objectiveService.GetOwned(objectiveID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	form := &forms.ObjectiveForm{
		Title:           objective.Title,
		Description:     objective.Description,
		TargetDate:      objective.TargetDate.Format("2006-01-02"),
		CurrentProgress: fmt.Sprintf("%g", objective.CurrentProgress),
		Completed:       objective.Completed,
	}
	return handler.render(c, "objective_form", fiber.Map{
		"Title":      "StudyHub | Update Objective",
		"Heading":    "Update Objective",
		"FormAction": fmt.Sprintf("/objective/%d/update", objective.ID),
		"Form":       form,
	})
}

func (handler *Handler) UpdateObjective(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	objectiveID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	objective, err := handler.objectiveService.GetOwned(objectiveID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	form := &forms.ObjectiveForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}
	form.Completed = forms.ParseBoolField(c.FormValue("completed"))

	if fieldErrors := form.Validate(handler.location); fieldErrors.Any() {
		return handler.render(c, "objective_form", fiber.Map{
			"Title":      "StudyHub | Update Objective",
			"Heading":    "Update Objective",
			"FormAction": fmt.Sprintf("/objective/%d/update", objective.ID),
			"Form":       form,
			"Errors":     fieldErrors,
		})
	}

	objective.Title = form.Title
	objective.Description = form.Description
	objective.TargetDate = form.ParsedTargetDate
	objective.CurrentProgress = form.Progress
	objective.Completed = form.Completed
	if err := handler.objectiveService.Update(&objective, time.Now().In(handler.location)); err != nil {
		return handler.redirectWithFlash(c, "/objectives", genericFailureMessage, flashDanger)
	}

	return handler.redirectWithFlash(c, "/objectives", "Your objective has been updated!", flashSuccess)
}

func (handler *Handler) DeleteObjective(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	objectiveID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	objective, err := handler.objectiveService.GetOwned(objectiveID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	if err := handler.objectiveService.Delete(objective.ID); err != nil {
		return handler.redirectWithFlash(c, "/objectives", genericFailureMessage, flashDanger)
	}

	return handler.redirectWithFlash(c, "/objectives", "Your objective has been deleted!", flashSuccess)
}

// MarkComplete toggles the completed flag from checkbox presence and keeps
// the derived achievement in sync.
func (handler *Handler) MarkComplete(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	objectiveID, err := parseIDParam(c)
	if err != nil {
		return handler.renderError(c, fiber.StatusNotFound, "That record does not exist.")
	}

	objective, err := handler.objectiveService.GetOwned(objectiveID, user.ID)
	if err != nil {
		return handler.renderOwnershipError(c, err)
	}

	completed := forms.ParseBoolField(c.FormValue("completed"))
	if err := handler.objectiveService.SetCompleted(&objective, completed, time.Now().In(handler.location)); err != nil {
		return handler.redirectWithFlash(c, "/objectives", genericFailureMessage, flashDanger)
	}

	if completed {
		return handler.redirectWithFlash(c, "/objectives", "Objective marked as complete!", flashSuccess)
	}
	return handler.redirectWithFlash(c, "/objectives", "Objective marked as incomplete.", flashInfo)
}
