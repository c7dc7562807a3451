package appwriteimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/pkg/logger"
	"go.uber.org/fx"
)

// Client speaks the Appwrite v1 REST contract. It is constructed once and
// handed to every consumer; there is no package-level instance.
type Client struct {
	http     *http.Client
	endpoint string
	project  string
	platform string
	logger   logger.Logger

	mu      sync.Mutex
	session string
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *Client {
	return &Client{
		http:     &http.Client{},
		endpoint: strings.TrimRight(opts.Config.Appwrite.Endpoint, "/"),
		project:  opts.Config.Appwrite.ProjectID,
		platform: opts.Config.Appwrite.Platform,
		logger:   opts.Logger.WithComponent("AppwriteClient"),
	}
}

var (
	_ appwrite.Accounts  = (*Client)(nil)
	_ appwrite.Databases = (*Client)(nil)
	_ appwrite.Storage   = (*Client)(nil)
	_ appwrite.Avatars   = (*Client)(nil)
)

// Endpoint returns the configured API base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SetSession activates a session secret for subsequent requests.
func (c *Client) SetSession(secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = secret
}

func (c *Client) currentSession() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// apiError is the Appwrite error envelope.
type apiError struct {
	Message    string `json:"message"`
	Type       string `json:"type"`
	StatusCode int    `json:"code"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("appwrite: %s (%s, code %d)", e.Message, e.Type, e.StatusCode)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Appwrite-Project", c.project)
	req.Header.Set("X-Appwrite-Response-Format", "1.6.0")
	req.Header.Set("User-Agent", c.platform)
	if s := c.currentSession(); s != "" {
		req.Header.Set("X-Appwrite-Session", s)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// do issues the request and decodes a 2xx body into out (when non-nil).
// Non-2xx responses are returned as *apiError.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("request finished",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"took", time.Since(start).Round(time.Millisecond).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apiError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(b), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
