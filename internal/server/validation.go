// validation.go - Submission normalization and validation.
package server

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// createAdhesionRequest mirrors the public submission payload. Fields
// are untyped so that wrong-typed values (a numeric name, a string
// receiveInfo) surface as field-level validation messages instead of a
// generic decode failure.
type createAdhesionRequest struct {
	Name        any `json:"name"`
	Email       any `json:"email"`
	Comment     any `json:"comment"`
	ReceiveInfo any `json:"receiveInfo"`
}

var validate = validator.New()

// validEmail checks the address against the validator's email grammar.
func validEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// validateSubmission normalizes the raw payload (name and comment
// trimmed, email trimmed and lower-cased, empty comment dropped to nil)
// and reports the first failing field. Checks run in a fixed order and
// short-circuit; msg is empty when the record is safe to insert.
func validateSubmission(req createAdhesionRequest) (NewAdhesion, string) {
	name, ok := req.Name.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return NewAdhesion{}, "Valid name is required"
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > 255 {
		return NewAdhesion{}, "Name must be 255 characters or less"
	}

	email, ok := req.Email.(string)
	if !ok || strings.TrimSpace(email) == "" {
		return NewAdhesion{}, "Valid email is required"
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if utf8.RuneCountInString(email) > 255 {
		return NewAdhesion{}, "Email must be 255 characters or less"
	}
	if !validEmail(email) {
		return NewAdhesion{}, "Invalid email format"
	}

	var comment *string
	if req.Comment != nil {
		raw, ok := req.Comment.(string)
		if !ok {
			return NewAdhesion{}, "Comment must be a string"
		}
		trimmed := strings.TrimSpace(raw)
		if utf8.RuneCountInString(trimmed) > 1000 {
			return NewAdhesion{}, "Comment must be 1000 characters or less"
		}
		if trimmed != "" {
			comment = &trimmed
		}
	}

	newsletter, ok := req.ReceiveInfo.(bool)
	if !ok {
		return NewAdhesion{}, "receiveInfo must be a boolean value"
	}

	return NewAdhesion{
		Name:       name,
		Email:      email,
		Comment:    comment,
		Newsletter: newsletter,
	}, ""
}
