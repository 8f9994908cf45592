// pkg/cvcli/wrap.go

package cvcli

import (
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/spf13/cobra"
)

// Wrap adapts a RuntimeContext-aware handler into a cobra RunE, adding panic
// recovery and end-of-command logging.
func Wrap(fn func(rc *cvio.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := cvio.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		return err
	}
}
