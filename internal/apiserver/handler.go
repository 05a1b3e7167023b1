package apiserver

import (
	"strings"

	"github.com/MKhiriev/go-pass-client/internal/logger"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_id"

type Handler struct {
	service  *Service
	basePath string

	logger *logger.Logger
}

func NewHandler(service *Service, basePath string, logger *logger.Logger) *Handler {
	basePath = strings.TrimRight(basePath, "/")
	logger.Info().Str("base_path", basePath).Msg("http handler created")
	return &Handler{
		service:  service,
		basePath: basePath,
		logger:   logger,
	}
}
