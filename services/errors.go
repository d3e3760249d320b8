// services/errors.go
package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks caller mistakes (missing owner/date, ceiling breach).
// Controllers map it to 400; nothing is persisted when it is returned.
var ErrValidation = errors.New("invalid request")

func validationErrf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}

// OwnerFailure records one fan-out target that could not be written.
type OwnerFailure struct {
	Owner  string `json:"owner"`
	Reason string `json:"reason"`
}

// PropagationError reports a partially failed apply-to-all fan-out: the
// initiating partner's own save succeeded, and the writes listed in Applied
// are committed and stay committed, but one or more other partners failed.
// Operators retry the failed owners using the run id; nothing is rolled back.
type PropagationError struct {
	RunID   string         `json:"runId"`
	Applied []string       `json:"applied"`
	Failed  []OwnerFailure `json:"failed"`
}

func (e *PropagationError) Error() string {
	names := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		names[i] = f.Owner
	}
	return fmt.Sprintf("propagation run %s: %d of %d partner updates failed (%s)",
		e.RunID, len(e.Failed), len(e.Failed)+len(e.Applied), strings.Join(names, ", "))
}
