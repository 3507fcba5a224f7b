package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeguard/internal/source"
)

const defaultTimeout = 30 * time.Second

// File is a fetched remote source file.
type File struct {
	Name string
	Data []byte
}

// Client downloads source files over HTTP(S).
type Client struct {
	HTTP     *http.Client
	MaxBytes int64
	// Token, when set, is sent as a bearer token.
	Token  string
	Logger *zap.Logger
}

// NewClient returns a client with a request timeout and byte ceiling.
func NewClient(maxBytes int64, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:     &http.Client{Timeout: defaultTimeout},
		MaxBytes: maxBytes,
		Logger:   logger,
	}
}

// IsURL reports whether s looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch downloads rawURL. GitHub "blob" page URLs are rewritten to their
// raw content URL. The file name is the last path segment.
func (c *Client) Fetch(ctx context.Context, rawURL string) (File, error) {
	target, name, err := resolve(rawURL)
	if err != nil {
		return File{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return File{}, fmt.Errorf("failed to build request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	c.logger().Debug("fetching source", zap.String("url", target))
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return File{}, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return File{}, fmt.Errorf("failed to fetch %s: %d - %s", target, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := source.ReadAll(resp.Body, c.MaxBytes)
	if err != nil {
		return File{}, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	return File{Name: name, Data: data}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// resolve returns the URL to download and the file name it carries.
func resolve(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	// github.com/<owner>/<repo>/blob/<ref>/<path> -> raw.githubusercontent.com/<owner>/<repo>/<ref>/<path>
	if u.Host == "github.com" {
		parts := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
		if len(parts) > 4 && parts[2] == "blob" {
			u.Host = "raw.githubusercontent.com"
			u.Path = "/" + strings.Join(append(parts[:2], parts[3:]...), "/")
			u.RawQuery = ""
		}
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = ""
	}
	return u.String(), name, nil
}
