// Package teamcenter implements the outbound client and repositories for the
// remote PLM REST dialect. A Client instance carries the remote session of
// exactly one caller; instances are never shared across identities, so the
// mutable session header cannot race between concurrent requests.
package teamcenter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/plm-management-toolkit/gateway/config"
	"github.com/plm-management-toolkit/gateway/internal/entity"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// Client is the single point of outbound traffic to the remote PLM system.
type Client struct {
	http      *http.Client
	baseURL   string
	endpoints config.Endpoints
	session   string
	log       logger.Interface
}

// NewClient creates a client with no remote session attached.
func NewClient(cfg *config.Config, log logger.Interface) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Teamcenter.Timeout},
		baseURL:   strings.TrimRight(cfg.Teamcenter.BaseURL, "/"),
		endpoints: cfg.Teamcenter.Endpoints,
		log:       log,
	}
}

// SetSessionToken attaches a remote session id to all subsequent calls.
// Redundant calls are harmless.
func (c *Client) SetSessionToken(token string) {
	c.session = token
}

// ClearSessionToken detaches the remote session id. Redundant calls are
// harmless.
func (c *Client) ClearSessionToken() {
	c.session = ""
}

// SessionToken returns the currently attached remote session id.
func (c *Client) SessionToken() string {
	return c.session
}

// Authenticate creates a remote session and attaches its id to this client
// for all subsequent calls.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*entity.AuthResponse, error) {
	body := entity.AuthRequest{
		Credentials: entity.Credentials{
			Username: username,
			Password: password,
		},
	}

	var out entity.AuthResponse

	if err := c.Post(ctx, c.endpoints.Sessions, body, &out); err != nil {
		return nil, ErrAuthentication.Wrap("Authenticate", "c.Post", err)
	}

	c.SetSessionToken(out.SessionID)

	c.log.Info("teamcenter - authenticated user %s", username)

	return &out, nil
}

// Logout terminates the remote session, best effort. The local session header
// is always cleared afterward, even when the remote call fails, so a stale
// header can never survive a logout.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Delete(ctx, c.endpoints.Sessions)

	c.ClearSessionToken()

	if err != nil {
		return err
	}

	c.log.Info("teamcenter - session terminated")

	return nil
}

// Get -.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post -.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put -.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete -.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Endpoints exposes the configured remote paths to the repositories built on
// this client.
func (c *Client) Endpoints() config.Endpoints {
	return c.endpoints
}

// do executes one remote call. Every failure, regardless of verb, passes
// through the same error translation before reaching a caller.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return ErrNetwork.Wrap(method+" "+path, "json.Marshal", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return ErrNetwork.Wrap(method+" "+path, "http.NewRequestWithContext", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.session != "" {
		req.Header.Set("Authorization", "Bearer "+c.session)
	}

	c.log.Debug("teamcenter - %s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.translateTransportError(method+" "+path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrNetwork.Wrap(method+" "+path, "io.ReadAll", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return c.translateStatusError(method+" "+path, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return ErrNetwork.Wrap(method+" "+path, "json.Unmarshal", err)
		}
	}

	return nil
}

// translateStatusError maps a remote HTTP status to a gateway error kind. The
// remote-supplied message is preserved inside the wrapped cause; the kind's
// friendly message is what callers may show to users.
func (c *Client) translateStatusError(call string, status int, body []byte) error {
	msg := remoteMessage(body)
	cause := fmt.Errorf("remote status %d: %s", status, msg) //nolint:err113 // remote message is dynamic

	c.log.Warn("teamcenter - %s failed: %v", call, cause)

	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthenticated.Wrap(call, "remote", cause)
	case http.StatusForbidden:
		return ErrForbidden.Wrap(call, "remote", cause)
	case http.StatusNotFound:
		return ErrNotFound.Wrap(call, "remote", cause)
	case http.StatusInternalServerError:
		e := ErrRemoteInternal
		e.RemoteMessage = msg

		return e.Wrap(call, "remote", cause)
	case http.StatusServiceUnavailable:
		return ErrRemoteUnavailable.Wrap(call, "remote", cause)
	default:
		return ErrNetwork.Wrap(call, "remote", cause)
	}
}

// translateTransportError splits pre-response failures into timeout,
// connection refused, and generic network errors.
func (c *Client) translateTransportError(call string, err error) error {
	c.log.Warn("teamcenter - %s failed: %v", call, err)

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout.Wrap(call, "c.http.Do", err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout.Wrap(call, "c.http.Do", err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return ErrConnectionRefused.Wrap(call, "c.http.Do", err)
	}

	return ErrNetwork.Wrap(call, "c.http.Do", err)
}

// remoteMessage extracts the remote's message field from an error body, when
// there is one.
func remoteMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return "unknown error"
}
