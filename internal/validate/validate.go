// Package validate checks a draft employee record and reports problems as a
// field-keyed message map. Results are always data, never errors: callers
// decide how to surface them.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/avolkovs/staffdir/internal/models"
)

// FieldOrder is the declaration order used to pick the first offending field.
var FieldOrder = []string{
	"firstName",
	"lastName",
	"employment_date",
	"birth_date",
	"email",
	"phone",
	"department",
	"position",
}

// Errors maps a field key to a human-readable message. An empty map means
// the draft is valid.
type Errors map[string]string

// First returns the earliest field in FieldOrder that has an error, so a
// presentation surface can focus it. Empty when there are no errors.
func (e Errors) First() string {
	for _, f := range FieldOrder {
		if _, ok := e[f]; ok {
			return f
		}
	}
	return ""
}

var (
	phonePattern = regexp.MustCompile(`^\+\(90\) \d{3} \d{3} \d{2} \d{2}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var check = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json tag names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	register(v, "notblank", validators.NotBlank)
	register(v, "editdate", isEditDate)
	register(v, "dirphone", isCanonicalPhone)
	register(v, "simpleemail", isSimpleEmail)
	return v
}

func register(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validator: %v", tag, err))
	}
}

func isEditDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func isCanonicalPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func isSimpleEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// Check evaluates every rule on the draft independently, so fixing one field
// still surfaces the remaining problems. The boolean is true when the draft
// is valid.
func Check(d models.Draft) (Errors, bool) {
	err := check.Struct(d)
	if err == nil {
		return Errors{}, true
	}
	out := make(Errors)
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return out, false
}

func message(field, tag string) string {
	switch field {
	case "firstName":
		return "First name is required."
	case "lastName":
		return "Last name is required."
	case "employment_date":
		if tag == "required" {
			return "Employment date is required."
		}
		return "Invalid employment date."
	case "birth_date":
		if tag == "required" {
			return "Birth date is required."
		}
		return "Invalid birth date."
	case "email":
		return "Please enter a valid email address."
	case "phone":
		return "Phone is required and must be in format +(90) 531 982 44 11."
	case "department":
		return "Department must be Tech or Analytics."
	case "position":
		return "Position must be Junior, Medior or Senior."
	}
	return "Invalid value."
}
