package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrUnexpectedStatus = errors.New("unexpected webhook status")

// Client defines the interface for posting leads to the operator webhook
type Client interface {
	Send(ctx context.Context, payload any) error
}

type clientImpl struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a webhook client. A nil httpClient uses http.DefaultClient.
func NewClient(url string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		url:        url,
		httpClient: httpClient,
	}
}

// Send issues exactly one POST with a JSON body. Only a final 2xx status is success.
func (c *clientImpl) Send(ctx context.Context, payload any) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	// body is not parsed; drain it so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
