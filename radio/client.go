package radio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the callsign does not exist.
var ErrNotFound = errors.New("no such callsign found")

// Callsign is the lookup result.  Absent fields stay empty.
type Callsign struct {
	Callsign string `json:"callsign,omitempty"`
	Name     string `json:"name,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	State    string `json:"state,omitempty"`
	Link     string `json:"link,omitempty"`
}

// Client queries the lookup API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client; baseURL must end with the API prefix.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: timeout}}
}

// Lookup fetches callsign details.
func (c *Client) Lookup(ctx context.Context, callsign string) (*Callsign, error) {
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid lookup url %q: %w", c.baseURL, err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+escapeSegment(callsign), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", callsign, err)
	}
	defer response.Body.Close()
	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case response.StatusCode < 200 || response.StatusCode > 299:
		return nil, fmt.Errorf("lookup %s: unexpected status %s", callsign, response.Status)
	}
	result := &Callsign{}
	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}
	return result, nil
}

// escapeSegment escapes callsign as a single path segment; dots are escaped
// too so "." and ".." cannot climb out of the API prefix.
func escapeSegment(callsign string) string {
	return strings.ReplaceAll(url.PathEscape(callsign), ".", "%2E")
}
