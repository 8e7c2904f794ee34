package cli

import (
	"github.com/spf13/cobra"

	handler "github.com/MKhiriev/go-api-config/internal/handler/http"
	"github.com/MKhiriev/go-api-config/internal/server"
)

func newServeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagnostics HTTP endpoints",
		Long: "serve exposes GET /api/env-info, GET /api/qualify?endpoint= and GET /api/version " +
			"until SIGINT or SIGTERM is received.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := s.apiConfig(cmd.Context())
			api.Resolve(cmd.Context())

			h := handler.NewHandler(api, s.info, s.log)
			srv, err := server.NewServer(h.Init(), s.cfg.Server, s.log)
			if err != nil {
				return err
			}

			return runtimeErr(srv.Run(cmd.Context()))
		},
	}
}
