package api

import (
	"time"

	"github.com/avelory/studyhub/internal/forms"
	"github.com/avelory/studyhub/internal/models"
	"github.com/avelory/studyhub/internal/security"
	"github.com/gofiber/fiber/v2"
)

const genericFailureMessage = "Something went wrong. Please try again."

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{
		"Title": "StudyHub | Register",
		"Form":  &forms.RegistrationForm{},
	})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	form := &forms.RegistrationForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}

	fieldErrors, err := form.Validate(handler.authService)
	if err != nil {
		return handler.render(c, "register", fiber.Map{
			"Title": "StudyHub | Register",
			"Form":  form,
			"Flash": FlashPayload{Message: genericFailureMessage, Category: flashDanger},
		})
	}
	if fieldErrors.Any() {
		return handler.render(c, "register", fiber.Map{
			"Title":  "StudyHub | Register",
			"Form":   form,
			"Errors": fieldErrors,
		})
	}

	passwordHash, err := security.HashPassword(form.Password)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}

	user := models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: passwordHash,
		ImageFile:    models.DefaultImageFile,
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		// Unique index violation from a concurrent registration lands here.
		return handler.render(c, "register", fiber.Map{
			"Title": "StudyHub | Register",
			"Form":  form,
			"Flash": FlashPayload{Message: genericFailureMessage, Category: flashDanger},
		})
	}

	return handler.redirectWithFlash(c, "/login",
		"Your account has been created! You are now able to log in", flashSuccess)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Title": "StudyHub | Login",
		"Form":  &forms.LoginForm{},
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	form := &forms.LoginForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}
	form.Remember = forms.ParseBoolField(c.FormValue("remember"))

	if fieldErrors := form.Validate(); fieldErrors.Any() {
		return handler.render(c, "login", fiber.Map{
			"Title":  "StudyHub | Login",
			"Form":   form,
			"Errors": fieldErrors,
		})
	}

	user, err := handler.authService.FindByNormalizedEmail(form.Email)
	if err != nil || !security.VerifyPassword(user.PasswordHash, form.Password) {
		return handler.render(c, "login", fiber.Map{
			"Title": "StudyHub | Login",
			"Form":  form,
			"Flash": FlashPayload{Message: "Login Unsuccessful. Please check email and password", Category: flashDanger},
		})
	}

	if err := handler.setAuthCookie(c, &user, form.Remember); err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, genericFailureMessage)
	}
	return c.Redirect("/home", fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.Redirect("/home", fiber.StatusSeeOther)
}
