package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayload = models.EmailPayload{
	Name:       "Amy",
	Email:      "a@x.com",
	EmployeeID: "E-1",
	Department: "General",
	Timestamp:  "2026-01-02T03:04:05.000Z",
}

func TestRelayClient_Success(t *testing.T) {
	var got models.EmailPayload
	var gotCT, gotSource string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotSource = r.Header.Get("X-Request-Source")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true,"message":"Email sent successfully"}`))
	}))
	defer ts.Close()

	err := NewRelayClient(ts.URL, time.Second).Send(context.Background(), testPayload)
	require.NoError(t, err)
	assert.Equal(t, testPayload, got)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "employee-manager", gotSource)
}

func TestRelayClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusInternalServerError, `{"error":"webhook failed: Unauthorized"}`, "webhook failed: Unauthorized"},
		{"message field", http.StatusBadGateway, `{"message":"upstream down"}`, "upstream down"},
		{"no body", http.StatusServiceUnavailable, ``, "request failed with status code 503"},
		{"html body", http.StatusNotFound, `<html>nope</html>`, "request failed with status code 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			err := NewRelayClient(ts.URL, time.Second).Send(context.Background(), testPayload)

			var re *RelayError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.status, re.StatusCode)
			assert.Equal(t, tt.message, err.Error())
			assert.ErrorIs(t, err, ErrRelayFailed)
		})
	}
}

func TestRelayClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	start := time.Now()
	err := NewRelayClient(ts.URL, 50*time.Millisecond).Send(context.Background(), testPayload)

	var re *RelayError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 0, re.StatusCode)
	assert.Equal(t, "timeout of 50ms exceeded", re.Message)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRelayClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := NewRelayClient(url, time.Second).Send(context.Background(), testPayload)

	var re *RelayError
	require.ErrorAs(t, err, &re)
	assert.Zero(t, re.StatusCode)
	assert.NotEmpty(t, re.Message)
}

func TestNewRelayClient_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultRelayTimeout, NewRelayClient("http://x", 0).timeout)
}
