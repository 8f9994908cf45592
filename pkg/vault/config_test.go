package vault

import (
	"testing"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromViper(t *testing.T) {
	v := viper.New()
	v.Set("addr", "https://vault.internal:8200")
	v.Set("tls-server-name", "vault.service.consul")
	v.Set("tls-cacert", "/etc/ssl/vault-ca.pem")
	v.Set("token", "s.token")
	v.Set("role-id", "rid")
	v.Set("secret-id", "sid")
	v.Set("jwt-role", "jrole")
	v.Set("jwt-key", "jkey")
	v.Set("auth-path", "corp")
	v.Set("mount", "secret")
	v.Set("path", "certs")

	opts := OptionsFromViper(v)

	assert.Equal(t, "https://vault.internal:8200", opts.Address)
	assert.Equal(t, "vault.service.consul", opts.TLSServerName)
	assert.Equal(t, "/etc/ssl/vault-ca.pem", opts.CACert)
	assert.Equal(t, "s.token", opts.Token)
	assert.Equal(t, "rid", opts.RoleID)
	assert.Equal(t, "sid", opts.SecretID)
	assert.Equal(t, "jrole", opts.JWTRole)
	assert.Equal(t, "jkey", opts.JWTKey)
	assert.Equal(t, "corp", opts.AuthPath)
	assert.Equal(t, "secret", opts.Mount)
	assert.Equal(t, "certs", opts.BasePath)
}

func TestOptionsFromViper_EnvFallback(t *testing.T) {
	t.Setenv("VAULT_ADDR", "https://env.vault:8200")
	t.Setenv("VAULT_MOUNT", "env-secret")

	v := viper.New()
	require.NoError(t, v.BindEnv("addr", "VAULT_ADDR"))
	require.NoError(t, v.BindEnv("mount", "VAULT_MOUNT"))

	opts := OptionsFromViper(v)

	assert.Equal(t, "https://env.vault:8200", opts.Address)
	assert.Equal(t, "env-secret", opts.Mount)
}

func TestOptionsValidate(t *testing.T) {
	valid := Options{Address: "https://vault.internal:8200", Mount: "secret"}
	require.NoError(t, valid.Validate())

	noAddr := Options{Mount: "secret"}
	err := noAddr.Validate()
	require.Error(t, err)
	assert.True(t, cverr.HasKind(err, cverr.KindConfiguration))

	noMount := Options{Address: "https://vault.internal:8200"}
	err = noMount.Validate()
	require.Error(t, err)
	assert.True(t, cverr.HasKind(err, cverr.KindConfiguration))
}

func TestOptionsHasAuth(t *testing.T) {
	assert.False(t, Options{}.HasAuth())
	assert.False(t, Options{RoleID: "rid"}.HasAuth(), "approle needs both halves of the credential pair")
	assert.False(t, Options{JWTKey: "jkey"}.HasAuth())

	assert.True(t, Options{Token: "t"}.HasAuth())
	assert.True(t, Options{RoleID: "rid", SecretID: "sid"}.HasAuth())
	assert.True(t, Options{JWTRole: "r", JWTKey: "k"}.HasAuth())
	assert.True(t, Options{Username: "u", Password: "p"}.HasAuth())
}
