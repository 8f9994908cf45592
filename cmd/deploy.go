// cmd/deploy.go

package cmd

import (
	"github.com/certvault/certvault/pkg/cvcli"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a renewed certificate bundle to the secret store",
	Long: `Reads the certificate, private key and fullchain files, extracts the leaf
certificate's serial, validity window and SAN domains, and writes the
canonical payload to the configured KV v2 mount under the domain's secret
path. One write attempt; failures propagate to the caller.`,
	RunE: cvcli.Wrap(func(rc *cvio.RuntimeContext, cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		certPath, _ := cmd.Flags().GetString("cert")
		keyPath, _ := cmd.Flags().GetString("key")
		chainPath, _ := cmd.Flags().GetString("chain")
		fullchainPath, _ := cmd.Flags().GetString("fullchain")

		inst, err := newInstaller(rc)
		if err != nil {
			return err
		}
		return inst.Deploy(rc, domain, certPath, keyPath, chainPath, fullchainPath)
	}),
}

func init() {
	f := deployCmd.Flags()
	f.String("domain", "", "Domain the bundle was issued for")
	f.String("cert", "", "Path to the PEM leaf certificate")
	f.String("key", "", "Path to the PEM private key")
	f.String("chain", "", "Path to the intermediates-only chain")
	f.String("fullchain", "", "Path to the full chain (leaf plus intermediates)")
	_ = deployCmd.MarkFlagRequired("domain")
	_ = deployCmd.MarkFlagRequired("cert")
	_ = deployCmd.MarkFlagRequired("key")
	_ = deployCmd.MarkFlagRequired("fullchain")
}
