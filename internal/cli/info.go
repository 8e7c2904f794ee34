package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the environment snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := s.apiConfig(cmd.Context()).Snapshot(cmd.Context())

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return runtimeErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
