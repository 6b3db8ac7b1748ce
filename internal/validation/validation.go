// Package validation checks submitted contact and CV request forms.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s'-]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

	validate = newValidator()
)

// Errors maps a form field to every rule it violated. A nil map means the
// form is valid.
type Errors map[string][]string

func (e Errors) add(field, msg string) {
	for _, existing := range e[field] {
		if existing == msg {
			return
		}
	}
	e[field] = append(e[field], msg)
}

func (e Errors) orNil() Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Add records an extra violation, e.g. from a check outside the form schema.
func (e Errors) Add(field, msg string) Errors {
	if e == nil {
		e = Errors{}
	}
	e.add(field, msg)
	return e
}

type rule struct {
	tag     string
	message string
}

type fieldSpec struct {
	name     string
	required string
	rules    []rule
}

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "person_name", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "email_pattern", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// check runs every rule of field against value. A blank required field stops
// that field's chain; otherwise all failing rules are reported.
func check(errs Errors, field fieldSpec, value string) {
	if strings.TrimSpace(value) == "" {
		errs.add(field.name, field.required)
		return
	}
	for _, r := range field.rules {
		if err := validate.Var(value, r.tag); err != nil {
			errs.add(field.name, r.message)
		}
	}
}

var (
	nameField = fieldSpec{
		name:     "name",
		required: "Name is required",
		rules: []rule{
			{"min=2,max=100", "Name must be between 2 and 100 characters"},
			{"person_name", "Enter a valid name"},
		},
	}
	emailField = fieldSpec{
		name:     "email",
		required: "Email is required",
		rules: []rule{
			{"email", "Enter a valid email address"},
			{"min=6,max=120", "Email must be between 6 and 120 characters"},
			{"email_pattern", "Enter a valid email address"},
		},
	}
	contactMessageField = fieldSpec{
		name:     "message",
		required: "Message is required",
		rules: []rule{
			{"min=10,max=1000", "Message must be between 10 and 1000 characters."},
		},
	}
	jobDescriptionField = fieldSpec{
		name:     "message",
		required: "Job description is required.",
		rules: []rule{
			{"min=100,max=100000", "Job description must be between 100 and 100000 characters."},
		},
	}
)

// ContactForm is the public contact form.
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Validate checks every field and returns all violations.
func (f ContactForm) Validate() Errors {
	errs := Errors{}
	// decomposed accents would otherwise fail the name pattern
	check(errs, nameField, norm.NFC.String(f.Name))
	check(errs, emailField, f.Email)
	check(errs, contactMessageField, f.Message)
	return errs.orNil()
}

// CVRequestForm carries a job description for a tailored CV.
type CVRequestForm struct {
	Message string `form:"message"`
}

func (f CVRequestForm) Validate() Errors {
	errs := Errors{}
	check(errs, jobDescriptionField, f.Message)
	return errs.orNil()
}
