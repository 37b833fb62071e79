package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	pkgLog "github.com/cptzbik/halfmaraton/pkg/log"
)

// Handler is the public interface for the estimate HTTP delivery layer.
type Handler interface {
	Estimate(c *gin.Context)
	Model(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc estimate.UseCase
}

// New creates a new HTTP handler for the estimate domain.
func New(l pkgLog.Logger, uc estimate.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
