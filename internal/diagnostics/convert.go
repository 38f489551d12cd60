package diagnostics

import (
	"errors"
	"fmt"

	"wfst/internal/replace"
)

// FromReplaceError converts a construction or expansion error raised by
// internal/replace into a Diagnostic with a stable error code. These errors
// carry no source position, so the returned Diagnostic's Position is zero;
// a caller that knows a position sets it itself.
func FromReplaceError(err error) Diagnostic {
	var rootErr *replace.UnknownRootError
	if errors.As(err, &rootErr) {
		return Diagnostic{
			Level:    Error,
			Code:     CodeUnknownRoot,
			Message:  fmt.Sprintf("root non-terminal %d is not declared by any component", rootErr.Root),
			HelpText: "declare a component for this label, or point root at one that already exists",
		}
	}

	var stateErr *replace.ComponentStateOutOfRangeError
	if errors.As(err, &stateErr) {
		return Diagnostic{
			Level:   Error,
			Code:    CodeComponentStateOutOfRange,
			Message: fmt.Sprintf("component %d produced out-of-range state %d", stateErr.Component, stateErr.State),
			Notes:   []string{"this is a bug in the named component's wFST, not in the replace call itself"},
		}
	}

	var weightErr *replace.BrokenFinalWeightError
	if errors.As(err, &weightErr) {
		return Diagnostic{
			Level:   Error,
			Code:    CodeBrokenFinalWeight,
			Message: fmt.Sprintf("component %d reports state %d final but returned no final weight", weightErr.Component, weightErr.State),
		}
	}

	return Diagnostic{Level: Error, Message: err.Error()}
}
