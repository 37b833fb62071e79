package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	estimateDelivery "github.com/cptzbik/halfmaraton/internal/estimate/delivery/http"
	"github.com/cptzbik/halfmaraton/internal/middleware"
	pkgLog "github.com/cptzbik/halfmaraton/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	estimateHandler estimateDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	EstimateHandler estimateDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		estimateHandler: cfg.EstimateHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.estimateHandler == nil {
		return errors.New("estimate handler is required")
	}
	return nil
}
