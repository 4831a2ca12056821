// Package handler aggregates the transport handlers of the application.
package handler

import (
	"github.com/mignatov/authkeeper/internal/config"
	"github.com/mignatov/authkeeper/internal/handler/http"
	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/service"
	"github.com/mignatov/authkeeper/internal/session"
)

// Handlers holds one handler per configured transport. Only HTTP is
// supported; the aggregate exists so the server layer stays transport-agnostic.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by the server
// configuration. At least one transport address must be configured.
func NewHandlers(services *service.Services, registry *session.Registry, cfg config.Server, appCfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, registry, appCfg.SessionTTL, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
