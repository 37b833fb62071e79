package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	"github.com/cptzbik/halfmaraton/pkg/response"
)

// User-facing messages, kept in the language of the product surface.
var (
	errMissingFields = errors.New("Brakuje następujących danych")
	errInvalidPace   = errors.New("Nieprawidłowy format tempa na 5 km")
)

// respondError translates domain errors into HTTP responses.
// Missing fields and pace-format failures are client errors the user
// resolves by resubmitting; everything else is a contained 500.
func (h *handler) respondError(c *gin.Context, err error) {
	var missingErr *estimate.MissingFieldsError
	switch {
	case errors.As(err, &missingErr):
		response.Error(c, errMissingFields, map[string]interface{}{
			"missing_fields": missingErr.Fields,
		})
	case errors.Is(err, estimate.ErrEmptyInput):
		response.Error(c, err, nil)
	case errors.Is(err, estimate.ErrInvalidPaceFormat):
		response.Error(c, errInvalidPace, nil)
	default:
		// Prediction and any unexpected failure: generic error, plus
		// the secondary warning the UI renders alongside it.
		response.InternalErrorWithWarning(c, "Nie udało się przetworzyć danych lub wykonać predykcji.")
	}
}
