// pkg/httpclient/httpclient.go

package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/certvault/certvault/pkg/cverr"
	rootcerts "github.com/hashicorp/go-rootcerts"
)

const (
	requestTimeout = 30 * time.Second
	dialTimeout    = 5 * time.Second
)

// NewSession builds the outbound HTTP client used to reach the secret store.
//
// serverName, when non-empty, is the TLS identity validated during the
// handshake regardless of the host in the connection URL, so the store can
// be dialed via an IP or internal load-balancer name while its certificate
// is still checked against its logical service name. caCertPath, when
// non-empty, replaces the system trust roots for this session.
//
// Construction performs no network I/O; the only failure mode is an
// unreadable or unparsable CA bundle.
func NewSession(serverName, caCertPath string) (*http.Client, error) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if serverName != "" {
		tlsCfg.ServerName = serverName
	}
	if caCertPath != "" {
		if _, err := os.Stat(caCertPath); err != nil {
			return nil, cverr.Wrap(cverr.KindConfiguration, err, "CA certificate bundle not readable")
		}
		if err := rootcerts.ConfigureTLS(tlsCfg, &rootcerts.Config{CAFile: caCertPath}); err != nil {
			return nil, cverr.Wrap(cverr.KindConfiguration, err, "load CA certificate bundle")
		}
	}

	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsCfg,
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}, nil
}
