// Package http implements the HTTP transport layer of the sync server:
// routing, authentication, logging and tracing middleware, and the sync
// endpoints themselves.
package http

import (
	"github.com/avolkov/nutrisync/internal/config"
	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/service"
)

type Handler struct {
	services *service.Services

	auth      config.Auth
	buildInfo BuildInfo
	logger    *logger.Logger
}

// BuildInfo is reported by the version endpoint.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewHandler(services *service.Services, auth config.Auth, buildInfo BuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		auth:      auth,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
