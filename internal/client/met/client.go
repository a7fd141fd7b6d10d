package met

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrObjectNotFound marks an identifier the catalog affirmatively does not
// know. Every other failure (transport, timeout, non-2xx, bad body) is
// transient from the caller's point of view and is never retried here.
var ErrObjectNotFound = errors.New("met: object not found")

type Client struct {
	host       string
	httpClient *http.Client
	timeout    time.Duration
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, host string, timeout time.Duration) *Client {
	if host == "" {
		host = "https://collectionapi.metmuseum.org/public/collection/v1"
	}
	host = strings.TrimRight(host, "/")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		host:       host,
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Object carries the raw optional fields of a catalog record. Defaulting of
// absent fields is the caller's job.
type Object struct {
	ObjectID          json.Number `json:"objectID"`
	Title             string      `json:"title"`
	ArtistDisplayName string      `json:"artistDisplayName"`
	ObjectDate        string      `json:"objectDate"`
	PrimaryImageSmall string      `json:"primaryImageSmall"`
	PrimaryImage      string      `json:"primaryImage"`
	ObjectURL         string      `json:"objectURL"`
}

// ImageURL returns the first available of {small image, full image}, or "".
func (o *Object) ImageURL() string {
	if o.PrimaryImageSmall != "" {
		return o.PrimaryImageSmall
	}
	return o.PrimaryImage
}

// GetObject fetches one catalog record. The call carries its own timeout so
// callers without a deadline still get bounded latency.
func (c *Client) GetObject(ctx context.Context, externalID string) (*Object, []byte, error) {
	if externalID == "" {
		return nil, nil, fmt.Errorf("external id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.doRequest(ctx, "/objects/"+url.PathEscape(externalID))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, err
	}

	var obj Object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, nil, fmt.Errorf("decode object %s: %w", externalID, err)
	}
	// The Met API answers 200 with a message body for some unknown IDs.
	if obj.ObjectID.String() == "" || obj.ObjectID.String() == "0" {
		return nil, nil, ErrObjectNotFound
	}
	return &obj, body, nil
}

// IsNotFound reports the deterministic, non-retryable absence outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
