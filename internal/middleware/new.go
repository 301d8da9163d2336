package middleware

import (
	"smartmeet/config"
	"smartmeet/pkg/log"
	"smartmeet/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
	}
}
