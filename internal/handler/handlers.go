package handler

import (
	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/handler/http"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
