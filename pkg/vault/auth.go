// pkg/vault/auth.go

package vault

import (
	"path"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/hashicorp/vault/api/auth/approle"
	"github.com/hashicorp/vault/api/auth/userpass"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Default mount points of the login methods, used when auth-path is not set.
const (
	defaultAppRoleMount  = "approle"
	defaultJWTMount      = "jwt"
	defaultUserpassMount = "userpass"
)

// Authenticate applies exactly one authentication strategy, in fixed
// precedence: static token, approle, JWT, userpass. Strategies are never
// combined; a static token wins without any network round-trip. A client
// with no material configured stays unauthenticated, which the readiness
// gate reports before any deployment work begins.
func (c *Client) Authenticate(rc *cvio.RuntimeContext) error {
	_, span := tracer.Start(rc.Ctx, "vault.Authenticate")
	defer span.End()
	log := otelzap.Ctx(rc.Ctx)

	switch {
	case c.opts.Token != "":
		c.setToken(c.opts.Token)
		log.Debug("Using static token for secret store auth")
		return nil
	case c.opts.RoleID != "" && c.opts.SecretID != "":
		return c.loginAppRole(rc)
	case c.opts.JWTRole != "" && c.opts.JWTKey != "":
		return c.loginJWT(rc)
	case c.opts.Username != "" && c.opts.Password != "":
		return c.loginUserpass(rc)
	default:
		log.Warn("⚠️ No authentication material configured, client is unauthenticated")
		return nil
	}
}

func (c *Client) loginAppRole(rc *cvio.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	mount := c.opts.AuthPath
	if mount == "" {
		mount = defaultAppRoleMount
	}

	auth, err := approle.NewAppRoleAuth(
		c.opts.RoleID,
		&approle.SecretID{FromString: c.opts.SecretID},
		approle.WithMountPath(mount),
	)
	if err != nil {
		return cverr.Wrap(cverr.KindConfiguration, err, "create approle auth")
	}

	secret, err := c.api.Auth().Login(rc.Ctx, auth)
	if err != nil {
		return cverr.Wrap(cverr.KindAuthentication, err, "approle login failed")
	}
	if secret == nil || secret.Auth == nil {
		return cverr.New(cverr.KindAuthentication, "no auth info returned from approle login")
	}

	c.setToken(secret.Auth.ClientToken)
	log.Info("Authenticated to secret store with approle",
		zap.String("auth_mount", mount),
		zap.String("token_accessor", secret.Auth.Accessor))
	return nil
}

func (c *Client) loginJWT(rc *cvio.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	mount := c.opts.AuthPath
	if mount == "" {
		mount = defaultJWTMount
	}

	secret, err := c.api.Logical().WriteWithContext(rc.Ctx, path.Join("auth", mount, "login"), map[string]interface{}{
		"role": c.opts.JWTRole,
		"jwt":  c.opts.JWTKey,
	})
	if err != nil {
		return cverr.Wrap(cverr.KindAuthentication, err, "jwt login failed")
	}
	if secret == nil || secret.Auth == nil {
		return cverr.New(cverr.KindAuthentication, "no auth info returned from jwt login")
	}

	c.setToken(secret.Auth.ClientToken)
	log.Info("Authenticated to secret store with jwt",
		zap.String("auth_mount", mount),
		zap.String("token_accessor", secret.Auth.Accessor))
	return nil
}

func (c *Client) loginUserpass(rc *cvio.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	mount := c.opts.AuthPath
	if mount == "" {
		mount = defaultUserpassMount
	}

	auth, err := userpass.NewUserpassAuth(
		c.opts.Username,
		&userpass.Password{FromString: c.opts.Password},
		userpass.WithMountPath(mount),
	)
	if err != nil {
		return cverr.Wrap(cverr.KindConfiguration, err, "create userpass auth")
	}

	secret, err := c.api.Auth().Login(rc.Ctx, auth)
	if err != nil {
		return cverr.Wrap(cverr.KindAuthentication, err, "userpass login failed")
	}
	if secret == nil || secret.Auth == nil {
		return cverr.New(cverr.KindAuthentication, "no auth info returned from userpass login")
	}

	c.setToken(secret.Auth.ClientToken)
	log.Info("Authenticated to secret store with userpass",
		zap.String("auth_mount", mount),
		zap.String("token_accessor", secret.Auth.Accessor))
	return nil
}
