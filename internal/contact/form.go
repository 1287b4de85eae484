// Package contact validates contact form submissions and hands valid ones to
// a Submitter.
package contact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Form is a contact request as posted by the site's form.
type Form struct {
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	Company     string `form:"company" json:"company,omitempty"`
	ProjectType string `form:"projectType" json:"projectType,omitempty"`
	Budget      string `form:"budget" json:"budget,omitempty"`
	Description string `form:"description" json:"description"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		Company:     strings.TrimSpace(f.Company),
		ProjectType: strings.TrimSpace(f.ProjectType),
		Budget:      strings.TrimSpace(f.Budget),
		Description: strings.TrimSpace(f.Description),
	}
}

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// ValidationError reports every invalid field of a Form.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid contact form: %s", strings.Join(names, ", "))
}

// Validate checks the required fields. It returns nil for a valid form.
func Validate(f Form) FieldErrors {
	f = f.Normalize()
	errs := FieldErrors{}

	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case f.Email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(f.Email):
		errs["email"] = "Please enter a valid email address"
	}
	if f.Description == "" {
		errs["description"] = "Please tell me a little about your project"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
