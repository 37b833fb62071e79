package estimate

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors for the estimate package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrInvalidPaceFormat = errors.New("invalid 5 km pace format")
	ErrPrediction        = errors.New("prediction failed")
)

// MissingFieldsError reports which required fields the extraction could
// not produce. Non-fatal: the user is expected to resubmit.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
