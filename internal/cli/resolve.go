package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(s *session) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved API base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := s.apiConfig(cmd.Context())
			baseURL := api.Resolve(cmd.Context())

			if showSource {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", baseURL, api.Source())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), baseURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSource, "source", false, "also print the tier that produced the URL")

	return cmd
}
