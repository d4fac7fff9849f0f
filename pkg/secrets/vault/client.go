// Package secrets implements a HashiCorp Vault KV v2 client used to load the
// gateway's signing key material at startup.
package secrets

import (
	"github.com/hashicorp/vault/api"

	"github.com/plm-management-toolkit/gateway/config"
)

// Default path for secrets if not configured.
const DefaultSecretPath = "secret/data/gateway"

// Storager is the key-value surface the gateway needs from a secret store.
type Storager interface {
	GetKeyValue(key string) (string, error)
	SetKeyValue(key, value string) error
	DeleteKeyValue(key string) error
}

// Client implements Storager against HashiCorp Vault.
type Client struct {
	client *api.Client
	path   string // Base path for all secrets (e.g., "secret/data/gateway")
}

var _ Storager = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets a custom path for secrets storage.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client (useful for testing).
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new Vault Client instance.
// For production: pass config to create a new API client.
// For testing: use WithClient option to inject a mock client.
func NewClient(cfg *config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no client was injected via options, create one from config
	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, err
		}

		client.SetToken(cfg.Token)
		c.client = client
	}

	// Apply path from config if not set by options
	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}
