package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

// DefaultRelayTimeout bounds a relay call when none is configured.
const DefaultRelayTimeout = 10 * time.Second

// RelayClient posts notification payloads to the email relay.
type RelayClient struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

// NewRelayClient returns a client for the relay endpoint at url. A
// non-positive timeout selects DefaultRelayTimeout.
func NewRelayClient(url string, timeout time.Duration) *RelayClient {
	if timeout <= 0 {
		timeout = DefaultRelayTimeout
	}
	return &RelayClient{url: url, timeout: timeout, http: &http.Client{}}
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Send makes a single POST attempt. Any transport failure, timeout or
// non-2xx status is returned as a *RelayError.
func (c *RelayClient) Send(ctx context.Context, payload models.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &RelayError{Message: err.Error(), Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return &RelayError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestSourceHeader, common.RequestSourceValue)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &RelayError{
				Message: fmt.Sprintf("timeout of %dms exceeded", c.timeout.Milliseconds()),
				Err:     err,
			}
		}
		return &RelayError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &RelayError{StatusCode: resp.StatusCode, Message: diagnostic(resp.StatusCode, raw)}
}

// diagnostic prefers the relay's own explanation over the bare status.
func diagnostic(code int, raw []byte) string {
	var r relayResponse
	if err := json.Unmarshal(raw, &r); err == nil {
		if msg := strings.TrimSpace(r.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(r.Message); msg != "" {
			return msg
		}
	}
	return statusMessage(code)
}
