package validation

// AddScoreRequest mirrors the fields needed for add score validation.
type AddScoreRequest struct {
	Points *int
}

// ValidateAddScoreRequest validates the fields of an add score request.
// Zero points are rejected: a round that changes nothing is not recorded.
func ValidateAddScoreRequest(req AddScoreRequest) []FieldError {
	var errs []FieldError

	if req.Points == nil {
		errs = append(errs, FieldError{Field: "points", Message: "points is required"})
	} else if *req.Points == 0 {
		errs = append(errs, FieldError{Field: "points", Message: "points must not be zero"})
	}

	return errs
}
