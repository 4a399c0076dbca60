// core/fetch/fetch.go
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// Policy is the retry contract for a single Fetch call: up to MaxAttempts
// requests, waiting BaseDelay * 2^(attempt-1) between them.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Config controls the shared transport.
type Config struct {
	Timeout     time.Duration // per-request; 0 means 10s
	InsecureTLS bool          // skip certificate verification (the source wiki serves a broken chain)
}

// Client performs blocking GETs with bounded exponential-backoff retry.
// Any transport error or non-2xx status counts as a failed attempt.
type Client struct {
	hc  *http.Client
	log logrus.FieldLogger
}

func New(cfg Config, log logrus.FieldLogger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	tr := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.InsecureTLS {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		hc:  &http.Client{Transport: tr, Timeout: timeout},
		log: log,
	}
}

// Fetch GETs url under pol and returns the response body as text.
// After exhausting attempts it returns an error; it never panics and the
// caller is expected to degrade to "no data".
func (c *Client) Fetch(ctx context.Context, url string, pol Policy) (string, error) {
	if pol.MaxAttempts < 1 {
		pol.MaxAttempts = 1
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient = c.hc
	rc.Logger = nil
	rc.RetryMax = pol.MaxAttempts - 1
	rc.RetryWaitMin = pol.BaseDelay
	rc.RetryWaitMax = pol.BaseDelay << uint(pol.MaxAttempts) // never the binding limit
	rc.Backoff = retryablehttp.DefaultBackoff
	rc.CheckRetry = checkRetry
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			c.log.Warnf("attempt %d: retrying %s", attempt+1, req.URL)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := rc.Do(req)
	if err != nil {
		c.log.Errorf("failed to fetch %s after %d attempts: %v", url, pol.MaxAttempts, err)
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

// checkRetry retries on any transport error or non-2xx status, unlike the
// library default which lets 4xx through.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return true, nil
	}
	return false, nil
}
