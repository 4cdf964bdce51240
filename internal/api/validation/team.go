package validation

import "strings"

// AddTeamRequest mirrors the fields needed for add team validation.
type AddTeamRequest struct {
	Name string
}

// ValidateAddTeamRequest validates the fields of an add team request.
func ValidateAddTeamRequest(req AddTeamRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	return errs
}
