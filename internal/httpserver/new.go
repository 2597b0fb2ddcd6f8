package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "executive-assistant-ai/internal/assistant/delivery/http"
	"executive-assistant-ai/internal/middleware"
	proactiveHTTP "executive-assistant-ai/internal/proactive/delivery/http"
	"executive-assistant-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	assistantHandler assistantHTTP.Handler
	proactiveHandler proactiveHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	AssistantHandler assistantHTTP.Handler

	// ProactiveHandler may be nil when the orchestrator's collaborators
	// are not configured; its routes are skipped.
	ProactiveHandler proactiveHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		assistantHandler: cfg.AssistantHandler,
		proactiveHandler: cfg.ProactiveHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}
