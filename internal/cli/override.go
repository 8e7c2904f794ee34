package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-api-config/internal/apiconfig"
	"github.com/MKhiriev/go-api-config/internal/store"
)

var errEmptyOverride = errors.New("override value must not be empty")

func newOverrideCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Manage the persisted API base URL override",
	}

	cmd.AddCommand(
		newOverrideSetCmd(s),
		newOverrideClearCmd(s),
		newOverrideShowCmd(s),
	)

	return cmd
}

func newOverrideSetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set <url>",
		Short: "Pin the API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errEmptyOverride
			}

			repo, err := s.overrides(cmd.Context())
			if err != nil {
				return runtimeErr(err)
			}
			if err = repo.SetOverride(cmd.Context(), apiconfig.OverrideKey, args[0]); err != nil {
				return runtimeErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", apiconfig.OverrideKey, args[0])
			return nil
		},
	}
}

func newOverrideClearCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the pinned API base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := s.overrides(cmd.Context())
			if err != nil {
				return runtimeErr(err)
			}

			err = repo.ClearOverride(cmd.Context(), apiconfig.OverrideKey)
			switch {
			case errors.Is(err, store.ErrOverrideNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No override set.")
			case err != nil:
				return runtimeErr(err)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", apiconfig.OverrideKey)
			}
			return nil
		},
	}
}

func newOverrideShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List persisted overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := s.overrides(cmd.Context())
			if err != nil {
				return runtimeErr(err)
			}

			overrides, err := repo.ListOverrides(cmd.Context())
			if err != nil {
				return runtimeErr(err)
			}
			if len(overrides) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No override set.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE\tUPDATED")
			for _, o := range overrides {
				fmt.Fprintf(w, "%s\t%s\t%s\n", o.Key, o.Value, o.UpdatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}
