package forms

import (
	"strconv"
	"strings"
	"time"
)

const progressRangeMessage = "Please enter a percentage between 0 and 100."

type ObjectiveForm struct {
	Title           string `form:"title" validate:"required,max=100"`
	Description     string `form:"description"`
	TargetDate      string `form:"target_date" validate:"required"`
	CurrentProgress string `form:"current_progress" validate:"required"`
	Completed       bool   `form:"-"`

	// ParsedTargetDate and Progress are populated by Validate when their
	// raw fields parse cleanly.
	ParsedTargetDate time.Time `form:"-"`
	Progress         float64   `form:"-"`
}

func (form *ObjectiveForm) Validate(location *time.Location) Errors {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.TargetDate = strings.TrimSpace(form.TargetDate)
	form.CurrentProgress = strings.TrimSpace(form.CurrentProgress)

	collected := collectFieldErrors(form)

	if _, exists := collected["target_date"]; !exists {
		parsed, err := time.ParseInLocation(dateInputLayout, form.TargetDate, location)
		if err != nil {
			collected["target_date"] = "Not a valid date value."
		} else {
			form.ParsedTargetDate = parsed
		}
	}

	if _, exists := collected["current_progress"]; !exists {
		value, err := strconv.ParseFloat(form.CurrentProgress, 64)
		switch {
		case err != nil:
			collected["current_progress"] = "Not a valid float value."
		case value < 0 || value > 100:
			collected["current_progress"] = progressRangeMessage
		default:
			form.Progress = value
		}
	}

	return collected
}
