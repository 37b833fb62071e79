package estimate

import (
	"context"

	"github.com/cptzbik/halfmaraton/internal/regression"
)

// UseCase defines the business logic interface for the estimate domain.
type UseCase interface {
	// Estimate extracts runner attributes from free text and predicts
	// the half-marathon finish time.
	Estimate(ctx context.Context, input EstimateInput) (EstimateOutput, error)

	// ModelInfo returns metadata about the loaded regression pipeline.
	ModelInfo() regression.Info
}

// Predictor is the regression pipeline surface the use case needs.
type Predictor interface {
	Predict(row regression.Row) (float64, error)
	Info() regression.Info
}
