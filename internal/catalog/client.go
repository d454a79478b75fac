package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/platform"
)

// DefaultBaseURL is the host serving solc release binaries.
const DefaultBaseURL = "https://binaries.soliditylang.org"

const (
	// DefaultTimeout bounds each catalog or artifact request.
	DefaultTimeout = 60 * time.Second
	// DefaultMaxDownloadBytes bounds a single artifact download.
	DefaultMaxDownloadBytes = int64(100 * 1024 * 1024) // 100 MiB
)

const userAgent = "solc-select"

// NetworkError reports a transport, status, or decode failure against URL.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure looks transient: a transport error or a 5xx.
func (e *NetworkError) Retryable() bool {
	if e.StatusCode >= 500 && e.StatusCode <= 599 {
		return true
	}
	if e.StatusCode != 0 {
		return false
	}
	if errors.Is(e.Err, context.Canceled) {
		return false
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr)
}

// Client talks to the remote release host for a single platform.
// It performs no caching and no retries.
type Client struct {
	BaseURL          string
	Platform         platform.Key
	HTTPClient       *http.Client
	MaxDownloadBytes int64
}

// NewClient returns a Client with an explicit request timeout.
func NewClient(baseURL string, key platform.Key, timeout time.Duration, maxDownloadBytes int64) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxDownloadBytes <= 0 {
		maxDownloadBytes = DefaultMaxDownloadBytes
	}
	return &Client{
		BaseURL:          strings.TrimRight(baseURL, "/"),
		Platform:         key,
		HTTPClient:       &http.Client{Timeout: timeout},
		MaxDownloadBytes: maxDownloadBytes,
	}
}

// ListURL returns the catalog document URL.
func (c *Client) ListURL() string {
	return c.url("list.json")
}

// ArtifactURL returns the download URL for an artifact filename.
func (c *Client) ArtifactURL(artifact string) string {
	return c.url(artifact)
}

func (c *Client) url(name string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.BaseURL, "/"), c.Platform, name)
}

// Fetch downloads and decodes the release catalog.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	url := c.ListURL()
	resp, err := c.get(ctx, url)
	if err != nil {
		return Catalog{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	var doc Catalog
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Catalog{}, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogDecodeFailedFmt, url, err)}
	}
	if doc.Releases == nil {
		return Catalog{}, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogDecodeFailedFmt, url, errors.New(messages.CatalogMissingReleases))}
	}
	return doc, nil
}

// Download streams the artifact into dest and returns the number of bytes written.
func (c *Client) Download(ctx context.Context, artifact string, dest io.Writer) (int64, error) {
	url := c.ArtifactURL(artifact)
	resp, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	maxBytes := c.MaxDownloadBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDownloadBytes
	}
	n, err := io.Copy(dest, io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return n, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogFetchFailedFmt, url, err)}
	}
	if n > maxBytes {
		return n, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogDownloadTooLargeFmt, url, n, maxBytes)}
	}
	return n, nil
}

// get issues a GET and returns the response only for HTTP 200.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogCreateRequestFmt, url, err)}
	}
	req.Header.Set("User-Agent", userAgent)

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			return nil, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogTimeoutFmt, url, err)}
		}
		return nil, &NetworkError{URL: url, Err: fmt.Errorf(messages.CatalogFetchFailedFmt, url, err)}
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf(messages.CatalogNotFoundFmt, url)}
	}
	if resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		statusText := resp.Status
		_ = resp.Body.Close()
		return nil, &NetworkError{URL: url, StatusCode: status, Err: fmt.Errorf(messages.CatalogUnexpectedStatusFmt, url, statusText)}
	}
	return resp, nil
}

// isTimeoutError reports whether err is a network timeout.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
