package validation

import "strings"

// CreateSessionRequest mirrors the fields needed for create session validation.
type CreateSessionRequest struct {
	ConfigValue string
}

// ValidateCreateSessionRequest validates the fields of a create session request.
// Returns a slice of field errors; empty slice means valid.
func ValidateCreateSessionRequest(req CreateSessionRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.ConfigValue) == "" {
		errs = append(errs, FieldError{Field: "configValue", Message: "configValue is required"})
	}

	return errs
}
