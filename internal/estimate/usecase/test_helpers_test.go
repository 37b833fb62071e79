package usecase_test

import (
	"context"

	"github.com/cptzbik/halfmaraton/internal/regression"
	"github.com/cptzbik/halfmaraton/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

// Mock LLM generator returning a canned response
type mockLLM struct {
	response *llmprovider.Response
	err      error
	calls    int
	lastReq  *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

// Mock predictor recording the row it was called with
type mockPredictor struct {
	result  float64
	err     error
	lastRow *regression.Row
}

func (m *mockPredictor) Predict(row regression.Row) (float64, error) {
	m.lastRow = &row
	if m.err != nil {
		return 0, m.err
	}
	return m.result, nil
}

func (m *mockPredictor) Info() regression.Info {
	return regression.Info{Name: "test-pipeline", Schema: []string{"płeć_encoded", "wiek", "5 km Tempo"}, TreeCount: 1}
}

func llmText(text string) *llmprovider.Response {
	return &llmprovider.Response{Text: text, ProviderName: "openai", ModelName: "gpt-3.5-turbo"}
}
