/* cmd/root.go */

package cmd

import (
	"os"

	"github.com/certvault/certvault/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command for certvault.
var RootCmd = &cobra.Command{
	Use:   "certvault",
	Short: "Deploys renewed TLS certificate bundles into HashiCorp Vault",
	Long: `certvault is invoked by a certificate issuance engine (for example as a
certbot deploy hook) whenever a certificate has been renewed. It parses the
renewed leaf certificate, derives a canonical secret payload (PEM material,
serial, validity window, SAN domains) and writes it to a versioned KV store
over an authenticated connection.`,
	SilenceUsage: true,
}

func init() {
	registerConnectionFlags(RootCmd)
	RootCmd.AddCommand(deployCmd, renewCmd, checkCmd, infoCmd)
}

// Execute runs the CLI and exits nonzero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.L().Error("Command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
