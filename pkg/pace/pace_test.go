package pace_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cptzbik/halfmaraton/pkg/pace"
)

const eps = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:  "MMSS",
			input: "22:30",
			want:  4.5, // 22.5 minutes over 5 km
		},
		{
			name:  "MMSS uneven",
			input: "23:10",
			want:  (23 + 10.0/60) / 5,
		},
		{
			name:  "HHMMSS",
			input: "1:22:30",
			want:  (60 + 22 + 30.0/60) / 5,
		},
		{
			name:  "Plain number is total minutes",
			input: "25",
			want:  5.0,
		},
		{
			name:  "Plain decimal",
			input: "23.5",
			want:  4.7,
		},
		{
			name:  "Surrounding whitespace",
			input: "  22:30 ",
			want:  4.5,
		},
		{
			name:    "Garbage",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "Garbage colon parts",
			input:   "aa:bb",
			wantErr: true,
		},
		{
			name:    "Too many parts",
			input:   "1:2:3:4",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pace.Normalize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, pace.ErrInvalidFormat) {
					t.Fatalf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"With hours", 3725, "1h 2min 5sek"},
		{"Without hours", 185, "3min 5sek"},
		{"Exactly one hour", 3600, "1h 0min 0sek"},
		{"Fractional seconds truncated", 185.9, "3min 5sek"},
		{"Zero", 0, "0min 0sek"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pace.FormatSeconds(tt.seconds); got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
