package usecase

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cptzbik/halfmaraton/internal/estimate"
)

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain JSON untouched",
			input: `{"wiek": 30}`,
			want:  `{"wiek": 30}`,
		},
		{
			name:  "Json code fence stripped",
			input: "```json\n{\"wiek\": 30}\n```",
			want:  `{"wiek": 30}`,
		},
		{
			name:  "Bare code fence stripped",
			input: "```\n{\"wiek\": 30}\n```",
			want:  `{"wiek": 30}`,
		},
		{
			name:  "Surrounding prose trimmed",
			input: "Oto wynik: {\"wiek\": 30} mam nadzieję że pomogłem",
			want:  `{"wiek": 30}`,
		},
		{
			name:  "No JSON at all passes through",
			input: "no structured data here",
			want:  "no structured data here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.input); got != tt.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseExtraction(t *testing.T) {
	t.Run("Full record", func(t *testing.T) {
		record, err := parseExtraction(`{"płeć_encoded": 1, "wiek": 30, "5 km Tempo": "22:30"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.GenderEncoded == nil || *record.GenderEncoded != 1 {
			t.Errorf("unexpected gender: %v", record.GenderEncoded)
		}
		if record.Age == nil || *record.Age != 30 {
			t.Errorf("unexpected age: %v", record.Age)
		}
		if len(record.Missing()) != 0 {
			t.Errorf("expected no missing fields, got %v", record.Missing())
		}
	})

	t.Run("Explicit nulls count as missing", func(t *testing.T) {
		record, err := parseExtraction(`{"płeć_encoded": null, "wiek": null, "5 km Tempo": null}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := record.Missing(); len(got) != 3 {
			t.Errorf("expected 3 missing fields, got %v", got)
		}
	})

	t.Run("Invalid JSON errors", func(t *testing.T) {
		if _, err := parseExtraction("not json at all"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestResolvePace(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"Numeric as-is", `4.5`, 4.5, false},
		{"Time string normalized", `"22:30"`, 4.5, false},
		{"HHMMSS time string", `"1:22:30"`, (60 + 22 + 0.5) / 5, false},
		{"Textual pace without colon", `"4.75"`, 4.75, false},
		{"Garbage string", `"szybko"`, 0, true},
		{"Garbage time", `"ab:cd"`, 0, true},
		{"Unsupported JSON shape", `{"mm": 22}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePace(json.RawMessage(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, estimate.ErrInvalidPaceFormat) {
					t.Fatalf("expected ErrInvalidPaceFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("resolvePace(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := buildExtractionPrompt(2026)
	if !strings.Contains(prompt, "teraz mamy 2026") {
		t.Errorf("prompt must carry the injected year")
	}
	for _, key := range []string{"płeć_encoded", "wiek", "5 km Tempo"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt must pin output key %q", key)
		}
	}
}
