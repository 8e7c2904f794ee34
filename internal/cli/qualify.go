package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQualifyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "qualify <endpoint>...",
		Short: "Print fully-qualified URLs for endpoints",
		Example: "  apiconfig qualify /users/1\n" +
			"  apiconfig qualify users/1 https://other.example.com/x",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := s.apiConfig(cmd.Context())
			for _, endpoint := range args {
				fmt.Fprintln(cmd.OutOrStdout(), api.Qualify(endpoint))
			}
			return nil
		},
	}
}
