// Package contact models the contact form and its simulated submission.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteForm is returned when a field is empty.
var ErrIncompleteForm = errors.New("all fields are required")

// Form is the contact form as posted by the page.
type Form struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Subject string `form:"subject" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// Validate reports ErrIncompleteForm naming the first blank field.
func (f *Form) Validate() error {
	fields := []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
	for _, fl := range fields {
		if strings.TrimSpace(fl.value) == "" {
			return fmt.Errorf("%s: %w", fl.name, ErrIncompleteForm)
		}
	}
	return nil
}

// Reset empties every field.
func (f *Form) Reset() {
	*f = Form{}
}

// Empty reports whether every field is blank.
func (f *Form) Empty() bool {
	return *f == Form{}
}
