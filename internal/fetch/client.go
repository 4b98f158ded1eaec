// Package fetch implements the resilient JSON client: one logical GET is
// tried against an ordered list of candidate base URLs until one answers.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CandidateSource yields the ordered base URLs to try. An empty string means
// "relative to the configured origin". Implementations must not return an
// empty list.
type CandidateSource interface {
	Candidates() []string
}

// StaticCandidates is a fixed, precomputed candidate list. Callers that
// resolve once per session wrap the resolver output in this.
type StaticCandidates []string

func (s StaticCandidates) Candidates() []string { return s }

// CandidateFunc adapts a function to the CandidateSource interface.
type CandidateFunc func() []string

func (f CandidateFunc) Candidates() []string { return f() }

// Client performs GETs against whichever candidate base URL is reachable.
// Independent calls are safe from concurrent goroutines; each call runs its
// own sequential scan over the candidates.
type Client struct {
	source CandidateSource
	origin string
	http   *http.Client
}

// New creates a Client over the given candidate source. origin is the base
// URL substituted for the empty-string candidate ("relative to the current
// origin"); it may itself be empty, in which case that candidate simply
// fails like any other unreachable one. A zero timeout leaves the
// underlying HTTP client without a deadline.
func New(source CandidateSource, origin string, timeout time.Duration) *Client {
	return &Client{
		source: source,
		origin: strings.TrimRight(origin, "/"),
		http:   &http.Client{Timeout: timeout},
	}
}

// GetJSON performs one logical GET of path (root-relative, query already
// encoded) and unmarshals the first successful JSON body into out.
//
// Candidates are tried strictly in order; a 2xx response whose body parses
// as JSON ends the scan immediately and later candidates are never
// contacted. A transport failure, non-2xx status, or unparsable body is
// recorded and the scan moves on. When every candidate has failed, the
// returned error is an *ExhaustedError wrapping the last failure. There are
// no retries beyond the single pass.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	candidates := c.source.Candidates()

	var lastErr error
	attempts := 0
	for _, base := range candidates {
		attempts++
		if base == "" {
			base = c.origin
		}
		if err := c.getOnce(ctx, base+path, out); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return &ExhaustedError{Path: path, Attempts: attempts, Last: lastErr}
}

func (c *Client) getOnce(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
