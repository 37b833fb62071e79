package middleware

import (
	"github.com/cptzbik/halfmaraton/config"
	pkgLog "github.com/cptzbik/halfmaraton/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l   pkgLog.Logger
	cfg config.HTTPServerConfig
}

func New(l pkgLog.Logger, cfg config.HTTPServerConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
