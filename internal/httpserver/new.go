package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskboard/config"
	"taskboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin *gin.Engine
	l   log.Logger
	cfg *config.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg *config.Config) (*HTTPServer, error) {
	gin.SetMode(cfg.HTTPServer.Mode)

	srv := &HTTPServer{
		l:   logger,
		gin: gin.New(),
		cfg: cfg,
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
	if srv.cfg.HTTPServer.Mode == "" {
		return errors.New("mode is required")
	}
	if srv.cfg.HTTPServer.Port == 0 {
		return errors.New("port is required")
	}
	return nil
}
