package forms

import (
	"strings"
	"time"
)

const dateInputLayout = "2006-01-02"

type EventForm struct {
	Title       string `form:"title" validate:"required,max=100"`
	Date        string `form:"date" validate:"required"`
	Description string `form:"description"`

	// ParsedDate is populated by Validate when Date parses cleanly.
	ParsedDate time.Time `form:"-"`
}

func (form *EventForm) Validate(location *time.Location) Errors {
	form.Title = strings.TrimSpace(form.Title)
	form.Date = strings.TrimSpace(form.Date)
	form.Description = strings.TrimSpace(form.Description)

	collected := collectFieldErrors(form)
	if _, exists := collected["date"]; !exists {
		parsed, err := time.ParseInLocation(dateInputLayout, form.Date, location)
		if err != nil {
			collected["date"] = "Not a valid date value."
		} else {
			form.ParsedDate = parsed
		}
	}
	return collected
}
