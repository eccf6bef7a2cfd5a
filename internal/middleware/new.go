package middleware

import (
	"taskboard/config"
	pkgLog "taskboard/pkg/log"
)

type Middleware struct {
	l      pkgLog.Logger
	config *config.Config

	limiter *ownerLimiter
}

func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newOwnerLimiter(cfg.RateLimit),
	}
}
