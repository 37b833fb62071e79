package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	"github.com/cptzbik/halfmaraton/internal/model"
	"github.com/cptzbik/halfmaraton/pkg/llmprovider"
	"github.com/cptzbik/halfmaraton/pkg/pace"
)

// extract sends the free text to the LLM and parses the response into
// a record. Extraction never fails the submission: transport errors and
// unparsable responses both degrade to an empty record, which the
// caller reports as missing fields. Returns the provider that served
// the request, or "" on a cache hit.
func (uc *implUseCase) extract(ctx context.Context, text string) (model.ExtractedRecord, string) {
	if cached, ok := uc.cache.Get(text); ok {
		uc.l.Debugf(ctx, "extract: cache hit for input_length=%d", len(text))
		return cached, ""
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: buildExtractionPrompt(uc.now().Year()),
		UserText:     text,
		Temperature:  0,
	})
	if err != nil {
		uc.l.Errorf(ctx, "extract: LLM request failed: %v", err)
		return model.ExtractedRecord{}, ""
	}

	record, err := parseExtraction(resp.Text)
	if err != nil {
		uc.l.Errorf(ctx, "extract: failed to parse LLM response. Raw=%q error=%v", resp.Text, err)
		return model.ExtractedRecord{}, resp.ProviderName
	}

	// Temperature-0 extraction is deterministic, so the parsed record
	// is safe to reuse for identical input.
	uc.cache.Add(text, record)

	return record, resp.ProviderName
}

// parseExtraction sanitizes and unmarshals the raw LLM response text.
func parseExtraction(text string) (model.ExtractedRecord, error) {
	cleaned := sanitizeJSONResponse(text)

	var record model.ExtractedRecord
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return model.ExtractedRecord{}, fmt.Errorf("failed to parse extraction JSON: %w", err)
	}
	return record, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// resolvePace disambiguates the extracted pace value. A textual value
// containing a colon is a 5 km time and goes through the normalizer;
// textual without a colon is a per-kilometer pace already; a numeric
// value is used as-is.
func resolvePace(raw json.RawMessage) (float64, error) {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: %s", estimate.ErrInvalidPaceFormat, string(raw))
	}

	if strings.Contains(s, ":") {
		val, err := pace.Normalize(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", estimate.ErrInvalidPaceFormat, s)
		}
		return val, nil
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", estimate.ErrInvalidPaceFormat, s)
	}
	return val, nil
}
