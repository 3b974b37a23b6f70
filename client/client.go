package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-rootcerts"
)

// Config carries everything needed to construct a Client. It is built fresh
// for each invocation from command-line flags and never persisted.
type Config struct {
	// Addr is the scheduler's hostname or IP address.
	Addr string

	// Port is the scheduler's control port.
	Port int

	// CACert is the path to a PEM-encoded CA certificate used to verify the
	// scheduler's TLS certificate. Empty means the system cert pool is used.
	CACert string

	// Token, when non-empty, is sent as a bearer token on every request.
	Token string

	// Timeout bounds the whole request. Zero means no timeout; the call
	// blocks until the scheduler answers or the connection drops.
	Timeout time.Duration

	// Logger receives request/response debug lines. Nil disables logging.
	Logger hclog.Logger
}

// Client talks to one scheduler. Construct with New; the zero value is not
// usable.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	logger  hclog.Logger
}

// New builds a Client from cfg. TLS verification uses the CA certificate at
// cfg.CACert when given. A CA certificate that cannot be loaded is a
// *NegotiationError: the secure transport cannot be established without it.
func New(cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8002
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.Timeout
	transport := httpClient.Transport.(*http.Transport)
	transport.TLSHandshakeTimeout = 10 * time.Second
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if cfg.CACert != "" {
		err := rootcerts.ConfigureTLS(transport.TLSClientConfig, &rootcerts.Config{
			CAFile: cfg.CACert,
		})
		if err != nil {
			return nil, &NegotiationError{Op: "load ca certificate", Err: err}
		}
	}

	base, err := url.Parse(fmt.Sprintf("https://%s:%d", cfg.Addr, cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler address %q: %w", cfg.Addr, err)
	}

	return &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    httpClient,
		logger:  logger,
	}, nil
}

// call performs exactly one round trip for the named operation and
// interprets the reply. The scheduler answers with a string-encoded boolean;
// success is the exact literal "True" and every other body is failure. That
// is a strict equality check, not a truthy parse: "true", "False", and the
// empty string are all negative results.
func (c *Client) call(ctx context.Context, op string, params url.Values) (bool, error) {
	u := *c.baseURL
	u.Path = "/" + op
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("%s: build request: %w", op, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("scheduler request", "op", op, "url", u.String())
	resp, err := c.http.Do(req)
	if err != nil {
		if isNegotiationFailure(err) {
			return false, &NegotiationError{Op: op, Err: err}
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Replies are a handful of bytes; cap the read so a misbehaving endpoint
	// cannot balloon memory. Anything truncated cannot equal "True" anyway.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false, fmt.Errorf("%s: read response: %w", op, err)
	}
	c.logger.Debug("scheduler response", "op", op, "status", resp.StatusCode,
		"body", strings.TrimSpace(string(body)))

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%s: scheduler returned status %d", op, resp.StatusCode)
	}
	return string(body) == "True", nil
}
