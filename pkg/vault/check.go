// pkg/vault/check.go

package vault

import (
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// IsAuthenticated reports whether the held token is currently valid. This is
// a network round-trip (token lookup-self); it is the readiness gate run
// once at startup so that credential misconfiguration fails immediately and
// loudly instead of during an unattended renewal run.
func (c *Client) IsAuthenticated(rc *cvio.RuntimeContext) bool {
	log := otelzap.Ctx(rc.Ctx)

	if c.Token() == "" {
		log.Debug("No session token held; skipping lookup-self")
		return false
	}

	if _, err := c.api.Auth().Token().LookupSelfWithContext(rc.Ctx); err != nil {
		log.Debug("Token lookup-self failed", zap.Error(err))
		return false
	}
	return true
}
