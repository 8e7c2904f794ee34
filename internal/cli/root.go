package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-api-config/internal/config"
	"github.com/MKhiriev/go-api-config/models"
)

// Exit codes returned by Run.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

// Run executes the command tree with the process arguments and returns an
// exit code.
func Run(info models.AppBuildInfo) int {
	return execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, info)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, info models.AppBuildInfo) int {
	s := &session{info: info}
	defer s.close()

	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		var rerr *runtimeError
		if errors.As(err, &rerr) {
			return ExitRuntimeError
		}
		return ExitUsageError
	}

	return ExitSuccess
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "apiconfig",
		Short: "Resolve and inspect the backend API base URL",
		Long: "apiconfig resolves which backend API base URL a client targets from a persisted override, " +
			"a host-injected global, the build environment and a built-in default, in that order.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newResolveCmd(s),
		newQualifyCmd(s),
		newInfoCmd(s),
		newOverrideCmd(s),
		newServeCmd(s),
		newVersionCmd(s),
	)

	return root
}

// runtimeError marks failures that happen after the command line was
// accepted.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }

func (e *runtimeError) Unwrap() error { return e.err }

func runtimeErr(err error) error {
	if err == nil {
		return nil
	}
	return &runtimeError{err: err}
}
