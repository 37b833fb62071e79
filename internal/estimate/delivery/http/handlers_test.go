package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	"github.com/cptzbik/halfmaraton/internal/regression"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type mockUseCase struct {
	output estimate.EstimateOutput
	err    error
	info   regression.Info

	gotInput estimate.EstimateInput
}

func (m *mockUseCase) Estimate(ctx context.Context, input estimate.EstimateInput) (estimate.EstimateOutput, error) {
	m.gotInput = input
	return m.output, m.err
}

func (m *mockUseCase) ModelInfo() regression.Info {
	return m.info
}

func newTestRouter(uc estimate.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(mockLogger{}, uc))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimateHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{
			output: estimate.EstimateOutput{
				Seconds:      5620,
				Formatted:    "1h 33min 40sek",
				PaceMinPerKm: 4.5,
				Provider:     "openai",
			},
		}
		w := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/v1/estimate",
			`{"text":"Mam 30 lat, jestem mężczyzną, 5km biegam w 22:30"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
		}
		if uc.gotInput.FreeText != "Mam 30 lat, jestem mężczyzną, 5km biegam w 22:30" {
			t.Errorf("usecase got text %q", uc.gotInput.FreeText)
		}

		var resp struct {
			ErrorCode int `json:"error_code"`
			Data      struct {
				Seconds      float64 `json:"seconds"`
				Formatted    string  `json:"formatted"`
				PaceMinPerKm float64 `json:"pace_min_per_km"`
				Message      string  `json:"message"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("error_code = %d, want 0", resp.ErrorCode)
		}
		if resp.Data.Formatted != "1h 33min 40sek" {
			t.Errorf("formatted = %q", resp.Data.Formatted)
		}
		if resp.Data.PaceMinPerKm != 4.5 {
			t.Errorf("pace_min_per_km = %v, want 4.5", resp.Data.PaceMinPerKm)
		}
		if !strings.Contains(resp.Data.Message, "1h 33min 40sek") {
			t.Errorf("message %q does not contain formatted time", resp.Data.Message)
		}
	})

	t.Run("missing body field is a 400", func(t *testing.T) {
		w := doRequest(t, newTestRouter(&mockUseCase{}), http.MethodPost, "/api/v1/estimate", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing extracted fields lists them", func(t *testing.T) {
		uc := &mockUseCase{
			err: &estimate.MissingFieldsError{Fields: []string{"wiek", "5 km Tempo"}},
		}
		w := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/v1/estimate", `{"text":"biegam"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}

		var resp struct {
			Message string `json:"message"`
			Data    struct {
				MissingFields []string `json:"missing_fields"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(resp.Data.MissingFields) != 2 || resp.Data.MissingFields[0] != "wiek" || resp.Data.MissingFields[1] != "5 km Tempo" {
			t.Errorf("missing_fields = %v", resp.Data.MissingFields)
		}
	})

	t.Run("invalid pace format is a 400", func(t *testing.T) {
		uc := &mockUseCase{err: estimate.ErrInvalidPaceFormat}
		w := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/v1/estimate", `{"text":"tempo abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("prediction failure is a 500 with warning", func(t *testing.T) {
		uc := &mockUseCase{err: estimate.ErrPrediction}
		w := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/v1/estimate", `{"text":"dane"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}

		var resp struct {
			Data struct {
				Warning string `json:"warning"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Data.Warning == "" {
			t.Error("expected a warning in the 500 payload")
		}
	})
}

func TestModelHandler(t *testing.T) {
	uc := &mockUseCase{
		info: regression.Info{
			Name:      "halfmarathon_gbt",
			Schema:    []string{"płeć_encoded", "wiek", "5 km Tempo"},
			TreeCount: 120,
		},
	}
	w := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/v1/model", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			Model regression.Info `json:"model"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Model.TreeCount != 120 {
		t.Errorf("tree_count = %d, want 120", resp.Data.Model.TreeCount)
	}
	if len(resp.Data.Model.Schema) != 3 {
		t.Errorf("schema = %v", resp.Data.Model.Schema)
	}
}
