package api

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/avelory/studyhub/internal/forms"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (handler *Handler) ShowAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := &forms.AccountForm{Username: user.Username, Email: user.Email}
	return handler.render(c, "account", fiber.Map{
		"Title": "StudyHub | Account",
		"Form":  form,
	})
}

func (handler *Handler) UpdateAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := &forms.AccountForm{}
	if err := c.BodyParser(form); err != nil {
		return handler.renderError(c, fiber.StatusBadRequest, "Invalid form submission.")
	}

	if fieldErrors := form.Validate(); fieldErrors.Any() {
		return handler.render(c, "account", fiber.Map{
			"Title":  "StudyHub | Account",
			"Form":   form,
			"Errors": fieldErrors,
		})
	}

	picture, pictureErr := c.FormFile("picture")
	hasPicture := pictureErr == nil && picture != nil
	if hasPicture && !allowedAvatarExtension(picture.Filename) {
		return handler.render(c, "account", fiber.Map{
			"Title":  "StudyHub | Account",
			"Form":   form,
			"Errors": forms.Errors{"picture": "Could not save that image. Use a .jpg or .png file."},
		})
	}

	// Profile fields commit first so a failed avatar write cannot leave the
	// page reporting failure while the picture silently changed.
	if err := handler.authService.UpdateProfile(user.ID, form.Username, form.Email); err != nil {
		// Covers unique index violations from a conflicting profile update.
		return handler.redirectWithFlash(c, "/account", genericFailureMessage, flashDanger)
	}
	user.Username = form.Username
	user.Email = form.Email

	if hasPicture {
		imageFile, err := handler.saveAvatar(c, picture)
		if err == nil {
			err = handler.authService.UpdateImageFile(user.ID, imageFile)
		}
		if err != nil {
			return handler.redirectWithFlash(c, "/account",
				"Your profile was updated, but the new picture could not be saved.", flashDanger)
		}
		user.ImageFile = imageFile
	}

	return handler.redirectWithFlash(c, "/account", "Your account has been updated!", flashSuccess)
}

func allowedAvatarExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// saveAvatar stores the upload under the avatar directory with a random
// name, keeping only the original extension.
func (handler *Handler) saveAvatar(c *fiber.Ctx, picture *multipart.FileHeader) (string, error) {
	imageFile := uuid.NewString() + strings.ToLower(filepath.Ext(picture.Filename))
	if err := c.SaveFile(picture, filepath.Join(handler.avatarDir, imageFile)); err != nil {
		return "", err
	}
	return imageFile, nil
}
