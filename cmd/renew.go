// cmd/renew.go

package cmd

import (
	"os"
	"strings"

	"github.com/certvault/certvault/pkg/cvcli"
	"github.com/certvault/certvault/pkg/cverr"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/certvault/certvault/pkg/installer"
	"github.com/spf13/cobra"
)

var renewCmd = &cobra.Command{
	Use:   "renew",
	Short: "Deploy a renewed lineage from its live directory",
	Long: `Derives the certificate, key, chain and fullchain paths from a
certbot-style lineage directory and deploys under the lineage's primary
domain. When run as a certbot deploy hook, --lineage-dir and --domain
default to the RENEWED_LINEAGE and RENEWED_DOMAINS environment variables.`,
	RunE: cvcli.Wrap(func(rc *cvio.RuntimeContext, cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("lineage-dir")
		domains, _ := cmd.Flags().GetStringSlice("domain")

		if dir == "" {
			dir = os.Getenv("RENEWED_LINEAGE")
		}
		if len(domains) == 0 {
			if env := os.Getenv("RENEWED_DOMAINS"); env != "" {
				domains = strings.Fields(env)
			}
		}
		if dir == "" {
			return cverr.New(cverr.KindConfiguration, "lineage directory is required (set --lineage-dir or RENEWED_LINEAGE)")
		}
		if len(domains) == 0 {
			return cverr.New(cverr.KindConfiguration, "domain is required (set --domain or RENEWED_DOMAINS)")
		}

		inst, err := newInstaller(rc)
		if err != nil {
			return err
		}
		return inst.RenewDeploy(rc, installer.LineageFromDir(dir, domains...))
	}),
}

func init() {
	f := renewCmd.Flags()
	f.String("lineage-dir", "", "Lineage live directory (cert.pem, privkey.pem, chain.pem, fullchain.pem)")
	f.StringSlice("domain", nil, "Domain names of the lineage; the first is the secret path name")
}
