package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

// WebhookError reports a non-2xx answer from the automation webhook.
type WebhookError struct {
	StatusCode int
}

func (e *WebhookError) Error() string {
	return "webhook failed: " + http.StatusText(e.StatusCode)
}

func (e *WebhookError) Unwrap() error { return common.ErrorWebhookFailed }

// Forwarder posts notification payloads to the automation webhook. One
// attempt per call; the HTTP client timeout bounds it.
type Forwarder struct {
	url      string
	user     string
	password string
	http     *http.Client
}

func NewForwarder(url, user, password string, timeout time.Duration) *Forwarder {
	return &Forwarder{
		url:      url,
		user:     user,
		password: password,
		http:     &http.Client{Timeout: timeout},
	}
}

// Forward sends p to the webhook. Basic credentials are attached only when
// a user is configured.
func (f *Forwarder) Forward(ctx context.Context, p models.EmailPayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorWebhookFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestSourceHeader, common.RequestSourceValue)
	if f.user != "" {
		req.SetBasicAuth(f.user, f.password)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorWebhookFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &WebhookError{StatusCode: resp.StatusCode}
	}
	return nil
}
