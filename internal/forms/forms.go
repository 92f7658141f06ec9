// Package forms validates submitted form input. Field checks run through
// go-playground/validator with English messages; every field error for a
// submission is collected before the form is reported invalid, so pages can
// re-render with the complete set of messages.
package forms

import (
	"errors"
	"reflect"
	"strings"

	english "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	locale := english.New()
	universal := ut.New(locale, locale)
	translator, _ = universal.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	// Error messages name fields by their form tag, not the Go field name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Errors maps a form field name to its validation message.
type Errors map[string]string

func (formErrors Errors) Any() bool {
	return len(formErrors) > 0
}

func collectFieldErrors(input any) Errors {
	collected := Errors{}
	err := validate.Struct(input)
	if err == nil {
		return collected
	}

	fieldErrors := validator.ValidationErrors{}
	if !errors.As(err, &fieldErrors) {
		collected["form"] = "Invalid input."
		return collected
	}

	for _, fieldError := range fieldErrors {
		if _, exists := collected[fieldError.Field()]; exists {
			continue
		}
		collected[fieldError.Field()] = fieldError.Translate(translator)
	}
	return collected
}

// ParseBoolField interprets checkbox-style form values, where presence of
// any truthy value means checked and an absent field means unchecked.
func ParseBoolField(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}
