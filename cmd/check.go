// cmd/check.go

package cmd

import (
	"github.com/certvault/certvault/pkg/cvcli"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify connectivity and authentication against the secret store",
	Long: `Connects, applies the configured authentication strategy and runs the
readiness check (token lookup-self). Exits nonzero with an explicit
authentication error when the store is unreachable or the credentials are
not accepted.`,
	RunE: cvcli.Wrap(func(rc *cvio.RuntimeContext, cmd *cobra.Command, args []string) error {
		if _, err := newInstaller(rc); err != nil {
			return err
		}
		otelzap.Ctx(rc.Ctx).Info("✅ Secret store connection ready")
		return nil
	}),
}
