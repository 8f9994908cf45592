package httpclient

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transportTLS(t *testing.T, client *http.Client) *tls.Config {
	t.Helper()
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	return transport.TLSClientConfig
}

func TestNewSession_Default(t *testing.T) {
	client, err := NewSession("", "")
	require.NoError(t, err)

	cfg := transportTLS(t, client)
	assert.Empty(t, cfg.ServerName)
	assert.Nil(t, cfg.RootCAs)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	assert.NotZero(t, client.Timeout)
}

func TestNewSession_ServerNameOverride(t *testing.T) {
	// The validated identity is decoupled from the dial address: the session
	// always presents and checks the override, not the URL host.
	client, err := NewSession("vault.service.consul", "")
	require.NoError(t, err)

	cfg := transportTLS(t, client)
	assert.Equal(t, "vault.service.consul", cfg.ServerName)
}

func TestNewSession_MissingCABundle(t *testing.T) {
	_, err := NewSession("", filepath.Join(t.TempDir(), "missing-ca.pem"))
	require.Error(t, err)
	assert.True(t, cverr.HasKind(err, cverr.KindConfiguration))
}

func TestNewSession_CustomCABundle(t *testing.T) {
	caPath := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(caPath, makeCAPEM(t), 0o600))

	client, err := NewSession("vault.service.consul", caPath)
	require.NoError(t, err)

	cfg := transportTLS(t, client)
	assert.NotNil(t, cfg.RootCAs, "custom CA bundle must replace the system roots for this session")
	assert.Equal(t, "vault.service.consul", cfg.ServerName)
}

func TestNewSession_InvalidCABundle(t *testing.T) {
	caPath := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(caPath, []byte("not a certificate"), 0o600))

	_, err := NewSession("", caPath)
	require.Error(t, err)
	assert.True(t, cverr.HasKind(err, cverr.KindConfiguration))
}

func makeCAPEM(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Test Root CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
