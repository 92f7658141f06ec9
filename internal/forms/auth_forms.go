package forms

import "strings"

const (
	usernameTakenMessage = "That username is taken. Please choose a different one."
	emailTakenMessage    = "That email is taken. Please choose a different one."
)

// UniquenessChecker answers whether a candidate username or email is already
// registered. Checks run only at registration; profile updates skip them.
type UniquenessChecker interface {
	UsernameTaken(username string) (bool, error)
	EmailTaken(email string) (bool, error)
}

type RegistrationForm struct {
	Username        string `form:"username" validate:"required,min=2,max=20"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (form *RegistrationForm) Normalize() {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	form.Password = strings.TrimSpace(form.Password)
	form.ConfirmPassword = strings.TrimSpace(form.ConfirmPassword)
}

// Validate collects field errors, then runs uniqueness checks for fields
// that passed. A store failure is returned as an error, not a field message.
func (form *RegistrationForm) Validate(store UniquenessChecker) (Errors, error) {
	form.Normalize()
	collected := collectFieldErrors(form)

	if _, exists := collected["username"]; !exists {
		taken, err := store.UsernameTaken(form.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			collected["username"] = usernameTakenMessage
		}
	}

	if _, exists := collected["email"]; !exists {
		taken, err := store.EmailTaken(form.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			collected["email"] = emailTakenMessage
		}
	}

	return collected, nil
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Remember bool   `form:"-"`
}

func (form *LoginForm) Normalize() {
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	form.Password = strings.TrimSpace(form.Password)
}

func (form *LoginForm) Validate() Errors {
	form.Normalize()
	return collectFieldErrors(form)
}

// AccountForm carries the same field constraints as registration but no
// uniqueness checks; a conflicting update is caught by the unique indexes.
type AccountForm struct {
	Username string `form:"username" validate:"required,min=2,max=20"`
	Email    string `form:"email" validate:"required,email"`
}

func (form *AccountForm) Normalize() {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
}

func (form *AccountForm) Validate() Errors {
	form.Normalize()
	return collectFieldErrors(form)
}
