// pkg/installer/deployer.go

package installer

import (
	"fmt"
	"os"
	"path"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("certvault/pkg/installer")

// SecretWriter is the narrow slice of the store client the deployer needs.
type SecretWriter interface {
	IsAuthenticated(rc *cvio.RuntimeContext) bool
	WriteSecret(rc *cvio.RuntimeContext, mount, secretPath string, data map[string]interface{}) error
}

// VaultInstaller deploys renewed certificate bundles into the secret store.
type VaultInstaller struct {
	NoopLifecycle

	store    SecretWriter
	addr     string
	mount    string
	basePath string
}

var _ Installer = (*VaultInstaller)(nil)

// New builds a VaultInstaller writing through store under mount, prefixing
// secret paths with basePath when it is non-empty.
func New(store SecretWriter, addr, mount, basePath string) *VaultInstaller {
	return &VaultInstaller{
		store:    store,
		addr:     addr,
		mount:    mount,
		basePath: basePath,
	}
}

// Prepare is the readiness gate. It verifies the session token once, up
// front, so that credential misconfiguration fails immediately instead of
// obscurely on the first write of a renewal run.
func (v *VaultInstaller) Prepare(rc *cvio.RuntimeContext) error {
	if !v.store.IsAuthenticated(rc) {
		return cverr.New(cverr.KindAuthentication, "not authenticated to secret store")
	}
	otelzap.Ctx(rc.Ctx).Debug("Secret store readiness check passed")
	return nil
}

// MoreInfo returns a human-readable description of the installer.
func (v *VaultInstaller) MoreInfo() string {
	return fmt.Sprintf("HashiCorp Vault certificate installer (store: %s, mount: %s, base path: %q)",
		v.addr, v.mount, v.basePath)
}

// GetAllNames reports the domains this installer manages configuration for.
// Deployment is driven entirely by the issuance engine, so none.
func (v *VaultInstaller) GetAllNames() []string {
	return []string{}
}

// SecretPath returns basePath/domain, or just domain when no base path is
// configured. One secret per domain; redeploys overwrite it.
func (v *VaultInstaller) SecretPath(domain string) string {
	if v.basePath == "" {
		return domain
	}
	return path.Join(v.basePath, domain)
}

// Deploy reads the renewed bundle from disk, extracts the leaf certificate
// metadata, and writes the canonical payload to the store. Any failure
// aborts before the write and propagates unchanged; a single write attempt
// is made and the issuance engine owns retry policy. chainPath is part of
// the bundle contract but the payload chain field is sourced from the
// fullchain file.
func (v *VaultInstaller) Deploy(rc *cvio.RuntimeContext, domain, certPath, keyPath, chainPath, fullchainPath string) error {
	_, span := tracer.Start(rc.Ctx, "installer.Deploy")
	defer span.End()
	log := otelzap.Ctx(rc.Ctx)

	certText, err := os.ReadFile(certPath)
	if err != nil {
		return cverr.Wrap(cverr.KindIO, err, "read certificate file")
	}
	keyText, err := os.ReadFile(keyPath)
	if err != nil {
		return cverr.Wrap(cverr.KindIO, err, "read private key file")
	}
	fullchainText, err := os.ReadFile(fullchainPath)
	if err != nil {
		return cverr.Wrap(cverr.KindIO, err, "read fullchain file")
	}

	meta, err := ExtractMetadata(certText)
	if err != nil {
		return err
	}

	payload := NewPayload(string(certText), string(keyText), string(fullchainText), meta)
	secretPath := v.SecretPath(domain)

	log.Info("Deploying certificate to secret store",
		zap.String("domain", domain),
		zap.String("path", secretPath),
		zap.String("serial", meta.Serial),
		zap.Int64("expires", meta.Expires),
		zap.Strings("sans", meta.Domains))

	if err := v.store.WriteSecret(rc, v.mount, secretPath, payload.Map()); err != nil {
		return err
	}

	log.Info("✅ Certificate deployed", zap.String("domain", domain), zap.String("path", secretPath))
	return nil
}
