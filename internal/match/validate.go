package match

import (
	"fmt"
	"strings"
)

// InvalidInputError reports malformed caller input. It is the only error the
// matching entry points surface; everything backend-related degrades to the
// deterministic path instead.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// validate guards every public entry point: every element of both inputs
// must be a non-empty string after trimming. Empty slices are fine, they
// just yield an empty result.
func validate(identifiers, names []string) error {
	if err := validateStrings("identifiers", identifiers); err != nil {
		return err
	}
	return validateStrings("names", names)
}

func validateStrings(field string, values []string) error {
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return &InvalidInputError{
				Field:  field,
				Reason: fmt.Sprintf("element %d is empty", i),
			}
		}
	}
	return nil
}
