package scoreboard

import (
	"errors"
	"fmt"
)

// ErrEmptyTeamName is returned when a team name is blank after trimming.
var ErrEmptyTeamName = errors.New("team name is required")

// ErrCapacityExceeded is returned when adding a team beyond the
// configuration's team limit.
var ErrCapacityExceeded = errors.New("team limit reached")

// ErrInvalidReference is returned when a history or team index does not
// resolve. The operation leaves the ledger unchanged.
var ErrInvalidReference = errors.New("history or team index out of range")

// ErrIndexOutOfRange is returned by the pure history helpers on invalid
// indices.
var ErrIndexOutOfRange = errors.New("index out of range")

// MalformedImportError reports a structurally invalid exported game payload.
type MalformedImportError struct {
	Reason string
}

func (e *MalformedImportError) Error() string {
	return fmt.Sprintf("malformed import: %s", e.Reason)
}
