// cmd/flags.go

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Each connection option falls back to an environment variable, with the
// flag taking precedence. The variable names match what the Vault CLI and
// deploy-hook environments already export.
var envFallbacks = map[string]string{
	"addr":            "VAULT_ADDR",
	"token":           "VAULT_TOKEN",
	"role-id":         "VAULT_ROLE_ID",
	"secret-id":       "VAULT_SECRET_ID",
	"jwt-role":        "VAULT_JWT_ROLE",
	"jwt-key":         "VAULT_JWT_KEY",
	"username":        "VAULT_USERNAME",
	"password":        "VAULT_PASSWORD",
	"auth-path":       "VAULT_AUTH_PATH",
	"tls-server-name": "VAULT_TLS_SERVER_NAME",
	"tls-cacert":      "VAULT_CACERT",
	"mount":           "VAULT_MOUNT",
	"path":            "VAULT_PATH",
}

func registerConnectionFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("addr", "", "Secret store base URL")
	f.String("token", "", "Static auth token")
	f.String("role-id", "", "AppRole role ID")
	f.String("secret-id", "", "AppRole secret ID")
	f.String("jwt-role", "", "Role for JWT login")
	f.String("jwt-key", "", "JWT presented for login")
	f.String("username", "", "Userpass username")
	f.String("password", "", "Userpass password")
	f.String("auth-path", "", "Mount point of the login method (default depends on the method)")
	f.String("tls-server-name", "", "Validate the store's TLS certificate against this name instead of the URL host")
	f.String("tls-cacert", "", "Path to a CA bundle trusted for the store connection")
	f.String("mount", "", "KV v2 mount point secrets are written under")
	f.String("path", "", "Base path prefix for deployed secrets")

	for flag, env := range envFallbacks {
		_ = viper.BindPFlag(flag, f.Lookup(flag))
		_ = viper.BindEnv(flag, env)
	}
}
