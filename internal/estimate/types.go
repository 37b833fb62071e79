package estimate

// EstimateInput is the input for one estimation submission.
type EstimateInput struct {
	FreeText string // natural-language self-description from the runner
}

// EstimateOutput is the result of a successful estimation.
type EstimateOutput struct {
	Seconds      float64 // predicted half-marathon duration
	Formatted    string  // "{h}h {m}min {s}sek"
	PaceMinPerKm float64 // resolved 5 km pace used for the prediction
	Provider     string  // LLM provider that served the extraction ("" on cache hit)
}
