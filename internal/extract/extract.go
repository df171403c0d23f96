// Package extract locates media references and metadata fields in raw page
// markup. Every function here is a pure function of its input text.
package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound indicates a required field matched none of its patterns.
	ErrFieldNotFound = errors.New("field not found")
	// ErrMalformedFragment indicates an embedded data fragment could not be
	// parsed or did not carry a usable locator.
	ErrMalformedFragment = errors.New("malformed fragment")
)

// FieldNotFoundError names the required field that could not be extracted.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("unable to extract %s", e.Field)
}

// Is makes errors.Is(err, ErrFieldNotFound) hold for any FieldNotFoundError.
func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrFieldNotFound
}
