package middlewares

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewMiddlewares(sessionService contracts.SessionService, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}
