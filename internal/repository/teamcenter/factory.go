package teamcenter

import (
	"context"

	"github.com/plm-management-toolkit/gateway/config"
	"github.com/plm-management-toolkit/gateway/internal/entity"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// Session is the authentication-facing surface of the remote system.
type Session interface {
	Authenticate(ctx context.Context, username, password string) (*entity.AuthResponse, error)
	SetSessionToken(token string)
	ClearSessionToken()
	Logout(ctx context.Context) error
}

var _ Session = (*Client)(nil)

// Factory builds one client per request context. Sharing a client across
// identities would race on its session header, so nothing outside this
// factory constructs clients.
type Factory struct {
	cfg *config.Config
	log logger.Interface
}

// NewFactory -.
func NewFactory(cfg *config.Config, log logger.Interface) *Factory {
	return &Factory{cfg: cfg, log: log}
}

// NewSession returns a fresh client with no remote session attached.
func (f *Factory) NewSession() Session {
	return NewClient(f.cfg, f.log)
}

// SetupItemRepository returns an item repository bound to the given remote
// session.
func (f *Factory) SetupItemRepository(remoteSession string) Items {
	client := NewClient(f.cfg, f.log)
	client.SetSessionToken(remoteSession)

	return NewItemRepository(client)
}

// SetupSearchRepository returns a search repository bound to the given remote
// session.
func (f *Factory) SetupSearchRepository(remoteSession string) Search {
	client := NewClient(f.cfg, f.log)
	client.SetSessionToken(remoteSession)

	return NewSearchRepository(client)
}
