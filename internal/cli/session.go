package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-api-config/internal/apiconfig"
	"github.com/MKhiriev/go-api-config/internal/config"
	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/internal/store"
	"github.com/MKhiriev/go-api-config/models"
)

var errStoreDisabled = errors.New("persisted override store is disabled")

// session holds what a single command invocation shares: configuration,
// logger and the lazily opened store.
type session struct {
	info models.AppBuildInfo

	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
}

func (s *session) load(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.NewWriterLogger("cli", cmd.ErrOrStderr()).WithLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.log = log
	return nil
}

// overrides opens the persisted override store on first use.
func (s *session) overrides(ctx context.Context) (store.OverrideRepository, error) {
	if s.cfg.Store.Disabled {
		return nil, errStoreDisabled
	}

	if s.storages == nil {
		storages, err := store.NewStorages(ctx, s.cfg.Store, s.log)
		if err != nil {
			return nil, fmt.Errorf("error opening override store: %w", err)
		}
		s.storages = storages
	}

	return s.storages.Overrides, nil
}

// apiConfig builds the resolver. An unavailable store only removes the
// override tier.
func (s *session) apiConfig(ctx context.Context) *apiconfig.APIConfig {
	var reader store.OverrideReader
	if repo, err := s.overrides(ctx); err != nil {
		s.log.Debug().Err(err).Msg("resolving without persisted overrides")
	} else {
		reader = repo
	}

	return apiconfig.New(apiconfig.NewSources(s.cfg, reader), s.log)
}

func (s *session) close() {
	if err := s.storages.Close(); err != nil && s.log != nil {
		s.log.Warn().Err(err).Msg("error closing override store")
	}
}
