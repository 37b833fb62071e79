package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	"github.com/cptzbik/halfmaraton/internal/model"
	"github.com/cptzbik/halfmaraton/internal/regression"
	"github.com/cptzbik/halfmaraton/pkg/pace"
)

// Estimate runs the full pipeline: LLM extraction, validation, pace
// normalization, and regression prediction.
func (uc *implUseCase) Estimate(ctx context.Context, input estimate.EstimateInput) (estimate.EstimateOutput, error) {
	text := strings.TrimSpace(input.FreeText)
	if text == "" {
		return estimate.EstimateOutput{}, estimate.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Estimate: input_length=%d", len(text))

	record, provider := uc.extract(ctx, text)

	if missing := record.Missing(); len(missing) > 0 {
		uc.l.Infof(ctx, "Estimate: extraction incomplete, missing=%v", missing)
		return estimate.EstimateOutput{}, &estimate.MissingFieldsError{Fields: missing}
	}

	paceVal, err := resolvePace(record.Pace)
	if err != nil {
		uc.l.Warnf(ctx, "Estimate: pace resolution failed for %s: %v", string(record.Pace), err)
		return estimate.EstimateOutput{}, err
	}

	runner := model.RunnerInput{
		GenderEncoded: *record.GenderEncoded,
		Age:           *record.Age,
		PaceMinPerKm:  paceVal,
	}

	row := regression.Row{
		Columns: model.RequiredFields,
		Values:  []float64{float64(runner.GenderEncoded), float64(runner.Age), runner.PaceMinPerKm},
	}

	seconds, err := uc.pipeline.Predict(row)
	if err != nil {
		uc.l.Errorf(ctx, "Estimate: pipeline prediction failed: %v", err)
		return estimate.EstimateOutput{}, fmt.Errorf("%w: %v", estimate.ErrPrediction, err)
	}

	uc.l.Infof(ctx, "Estimate: predicted %.0fs at pace %.2f min/km", seconds, paceVal)

	return estimate.EstimateOutput{
		Seconds:      seconds,
		Formatted:    pace.FormatSeconds(seconds),
		PaceMinPerKm: paceVal,
		Provider:     provider,
	}, nil
}

// ModelInfo returns metadata about the loaded regression pipeline.
func (uc *implUseCase) ModelInfo() regression.Info {
	return uc.pipeline.Info()
}
