package model

import "encoding/json"

// Required extraction field names. These are the exact column names the
// regression pipeline was fit on, so they are Polish and must never drift.
const (
	FieldGender = "płeć_encoded"
	FieldAge    = "wiek"
	FieldPace   = "5 km Tempo"
)

// RequiredFields lists every field the extractor must produce, in the
// column order the regression pipeline expects.
var RequiredFields = []string{FieldGender, FieldAge, FieldPace}

// ExtractedRecord is the best-effort structured record produced by the
// LLM extraction step. Every field is optional: a nil pointer means the
// model could not find the value. A failed extraction yields the zero
// record, so it surfaces to callers as all fields missing.
//
// Pace is a raw JSON value because the model may answer with a number
// (4.5), a time string ("22:30"), or a direct textual pace ("4.5").
type ExtractedRecord struct {
	GenderEncoded *int            `json:"płeć_encoded"`
	Age           *int            `json:"wiek"`
	Pace          json.RawMessage `json:"5 km Tempo"`
}

// Missing returns the names of required fields that are absent or null,
// in RequiredFields order.
func (r ExtractedRecord) Missing() []string {
	var missing []string
	if r.GenderEncoded == nil {
		missing = append(missing, FieldGender)
	}
	if r.Age == nil {
		missing = append(missing, FieldAge)
	}
	if len(r.Pace) == 0 || string(r.Pace) == "null" {
		missing = append(missing, FieldPace)
	}
	return missing
}

// RunnerInput is a fully validated, numeric input row for the
// regression pipeline. All fields are set before prediction is
// attempted.
type RunnerInput struct {
	GenderEncoded int     // 0 = female, 1 = male
	Age           int
	PaceMinPerKm  float64 // minutes per kilometer over 5 km
}

// EnvironmentType labels the deployment environment.
type EnvironmentType string

const (
	EnvironmentDevelopment EnvironmentType = "development"
	EnvironmentProduction  EnvironmentType = "production"
)
