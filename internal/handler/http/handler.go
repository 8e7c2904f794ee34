package http

import (
	"github.com/MKhiriev/go-api-config/internal/apiconfig"
	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/internal/utils"
	"github.com/MKhiriev/go-api-config/models"
)

// IDGenerator produces request trace ids.
type IDGenerator interface {
	Generate() string
}

type Handler struct {
	api       apiconfig.Resolver
	buildInfo models.AppBuildInfo
	ids       IDGenerator

	logger *logger.Logger
}

func NewHandler(api apiconfig.Resolver, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		api:       api,
		buildInfo: buildInfo,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
