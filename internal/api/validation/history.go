package validation

// EditScoreRequest mirrors the fields needed for history edit validation.
// Nil fields are missing from the request body.
type EditScoreRequest struct {
	TeamIndex *int
	Score     *int
}

// ValidateEditScoreRequest validates the fields of a history edit request.
func ValidateEditScoreRequest(req EditScoreRequest) []FieldError {
	var errs []FieldError

	if req.TeamIndex == nil {
		errs = append(errs, FieldError{Field: "teamIndex", Message: "teamIndex is required"})
	} else if *req.TeamIndex < 0 {
		errs = append(errs, FieldError{Field: "teamIndex", Message: "teamIndex must not be negative"})
	}

	if req.Score == nil {
		errs = append(errs, FieldError{Field: "score", Message: "score is required"})
	}

	return errs
}

// EditPhaseRequest mirrors the fields needed for phase label validation.
type EditPhaseRequest struct {
	Name string
}

// ValidateEditPhaseRequest validates the fields of a phase label request.
// A blank name is valid; it clears the label.
func ValidateEditPhaseRequest(req EditPhaseRequest) []FieldError {
	var errs []FieldError

	if len(req.Name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	return errs
}
