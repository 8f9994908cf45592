// pkg/installer/lineage.go

package installer

import (
	"path/filepath"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/certvault/certvault/pkg/cvio"
)

// Lineage describes one certificate lineage as maintained by the issuance
// engine on disk. Names[0] is the primary domain.
type Lineage struct {
	Names         []string
	CertPath      string
	KeyPath       string
	ChainPath     string
	FullchainPath string
}

// LineageFromDir builds a lineage from a certbot-style live directory
// (cert.pem, privkey.pem, chain.pem, fullchain.pem).
func LineageFromDir(dir string, names ...string) Lineage {
	return Lineage{
		Names:         names,
		CertPath:      filepath.Join(dir, "cert.pem"),
		KeyPath:       filepath.Join(dir, "privkey.pem"),
		ChainPath:     filepath.Join(dir, "chain.pem"),
		FullchainPath: filepath.Join(dir, "fullchain.pem"),
	}
}

// RenewDeploy deploys the lineage under its primary domain name.
func (v *VaultInstaller) RenewDeploy(rc *cvio.RuntimeContext, lineage Lineage) error {
	if len(lineage.Names) == 0 {
		return cverr.New(cverr.KindConfiguration, "lineage carries no domain names")
	}
	return v.Deploy(rc, lineage.Names[0],
		lineage.CertPath, lineage.KeyPath, lineage.ChainPath, lineage.FullchainPath)
}
