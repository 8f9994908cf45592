// pkg/vault/config.go

package vault

import (
	"github.com/certvault/certvault/pkg/cverr"
	"github.com/spf13/viper"
)

// Options is the connection configuration for the secret store. It is
// established once at startup and held for the process lifetime.
type Options struct {
	// Address is the base URL of the secret store.
	Address string
	// TLSServerName, when set, pins the TLS identity validated during the
	// handshake independently of the host in Address.
	TLSServerName string
	// CACert is the path to a CA bundle trusted instead of the system roots.
	CACert string

	// Authentication material. At most one strategy is applied, in the
	// precedence documented on Client.Authenticate.
	Token    string
	RoleID   string
	SecretID string
	JWTRole  string
	JWTKey   string
	Username string
	Password string
	// AuthPath overrides the mount point of the login method.
	AuthPath string

	// Mount is the KV v2 mount secrets are written under.
	Mount string
	// BasePath is an optional prefix for secret paths.
	BasePath string
}

// OptionsFromViper reads the connection configuration from the given viper
// instance. Flag and environment bindings are the caller's responsibility.
func OptionsFromViper(v *viper.Viper) Options {
	return Options{
		Address:       v.GetString("addr"),
		TLSServerName: v.GetString("tls-server-name"),
		CACert:        v.GetString("tls-cacert"),
		Token:         v.GetString("token"),
		RoleID:        v.GetString("role-id"),
		SecretID:      v.GetString("secret-id"),
		JWTRole:       v.GetString("jwt-role"),
		JWTKey:        v.GetString("jwt-key"),
		Username:      v.GetString("username"),
		Password:      v.GetString("password"),
		AuthPath:      v.GetString("auth-path"),
		Mount:         v.GetString("mount"),
		BasePath:      v.GetString("path"),
	}
}

// Validate checks that the settings required to reach the store are present.
func (o Options) Validate() error {
	if o.Address == "" {
		return cverr.New(cverr.KindConfiguration, "secret store address is required (set --addr or VAULT_ADDR)")
	}
	if o.Mount == "" {
		return cverr.New(cverr.KindConfiguration, "KV mount point is required (set --mount or VAULT_MOUNT)")
	}
	return nil
}

// HasAuth reports whether any authentication material is configured. With
// none, the client stays unauthenticated and the readiness gate fails.
func (o Options) HasAuth() bool {
	return o.Token != "" ||
		(o.RoleID != "" && o.SecretID != "") ||
		(o.JWTRole != "" && o.JWTKey != "") ||
		(o.Username != "" && o.Password != "")
}
