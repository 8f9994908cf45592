// pkg/vault/write.go

package vault

import (
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// WriteSecret upserts data as a new version of the KV v2 secret at
// mount/secretPath. The payload fully replaces any prior content at that
// path; no merge is performed. A single attempt is made, retry policy
// belongs to the issuance engine.
func (c *Client) WriteSecret(rc *cvio.RuntimeContext, mount, secretPath string, data map[string]interface{}) error {
	ctx, span := tracer.Start(rc.Ctx, "vault.WriteSecret")
	defer span.End()
	log := otelzap.Ctx(rc.Ctx)

	kv := c.api.KVv2(mount)
	secret, err := kv.Put(ctx, secretPath, data)
	if err != nil {
		return classifyStoreError(err, secretPath)
	}

	version := 0
	if secret != nil && secret.VersionMetadata != nil {
		version = secret.VersionMetadata.Version
	}
	log.Info("✅ Secret written",
		zap.String("mount", mount),
		zap.String("path", secretPath),
		zap.Int("version", version))
	return nil
}
