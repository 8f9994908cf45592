// pkg/vault/client.go

package vault

import (
	"sync"

	"github.com/certvault/certvault/pkg/cverr"
	"github.com/certvault/certvault/pkg/cvio"
	"github.com/certvault/certvault/pkg/httpclient"
	"github.com/hashicorp/vault/api"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("certvault/pkg/vault")

// Client wraps the Vault API client together with the options it was built
// from. One authenticated client is shared across all deploys in a process;
// the token handoff is guarded so concurrent deploys stay safe.
type Client struct {
	api  *api.Client
	opts Options

	mu sync.Mutex
}

// Connect creates a client bound to the configured address and TLS session.
// No authentication is attempted here.
func Connect(rc *cvio.RuntimeContext, opts Options) (*Client, error) {
	log := otelzap.Ctx(rc.Ctx)

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	session, err := httpclient.NewSession(opts.TLSServerName, opts.CACert)
	if err != nil {
		return nil, err
	}

	cfg := api.DefaultConfig()
	cfg.Address = opts.Address
	cfg.HttpClient = session

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, cverr.Wrap(cverr.KindConfiguration, err, "create secret store client")
	}
	// api.NewClient picks up VAULT_TOKEN on its own; authentication is applied
	// explicitly by Authenticate, never implicitly at connect time.
	client.ClearToken()

	log.Debug("Secret store client created",
		zap.String("addr", opts.Address),
		zap.String("tls_server_name", opts.TLSServerName))
	return &Client{api: client, opts: opts}, nil
}

// Options returns the connection configuration the client was built from.
func (c *Client) Options() Options {
	return c.opts
}

// Token returns the session token currently held by the client.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.api.Token()
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.api.SetToken(token)
}
