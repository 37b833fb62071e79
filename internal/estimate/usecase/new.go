package usecase

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	"github.com/cptzbik/halfmaraton/internal/model"
	"github.com/cptzbik/halfmaraton/pkg/llmprovider"
	pkgLog "github.com/cptzbik/halfmaraton/pkg/log"
)

// extractionCacheSize bounds the deterministic extraction cache.
const extractionCacheSize = 512

// llmGenerator is the LLM surface the use case needs; satisfied by
// *llmprovider.Manager.
type llmGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmGenerator
	pipeline estimate.Predictor
	cache    *lru.Cache[string, model.ExtractedRecord]
	now      func() time.Time
}

// New creates a new estimate UseCase instance.
func New(l pkgLog.Logger, llm llmGenerator, pipeline estimate.Predictor) *implUseCase {
	// Size is small and fixed, so construction cannot fail.
	cache, _ := lru.New[string, model.ExtractedRecord](extractionCacheSize)
	return &implUseCase{
		l:        l,
		llm:      llm,
		pipeline: pipeline,
		cache:    cache,
		now:      time.Now,
	}
}
