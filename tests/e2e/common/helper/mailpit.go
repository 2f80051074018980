//go:build e2e

package helper

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Mailpit talks to the mail catcher's HTTP API.
type Mailpit struct {
	baseURL string
	client  *http.Client
}

func NewMailpit(baseURL string) *Mailpit {
	return &Mailpit{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type MailAddress struct {
	Name    string `json:"Name"`
	Address string `json:"Address"`
}

type MessageSummary struct {
	ID      string        `json:"ID"`
	From    MailAddress   `json:"From"`
	To      []MailAddress `json:"To"`
	ReplyTo []MailAddress `json:"ReplyTo"`
	Subject string        `json:"Subject"`
	Snippet string        `json:"Snippet"`
}

type messagesResponse struct {
	Total    int              `json:"total"`
	Messages []MessageSummary `json:"messages"`
}

// Messages lists caught mail, newest first.
func (m *Mailpit) Messages(t *testing.T) []MessageSummary {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, m.baseURL+"/api/v1/messages", nil)
	require.NoError(t, err)
	resp, err := m.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out messagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Messages
}

// WaitForMessages polls until at least n messages arrived.
func (m *Mailpit) WaitForMessages(t *testing.T, n int) []MessageSummary {
	t.Helper()

	var msgs []MessageSummary
	require.Eventually(t, func() bool {
		msgs = m.Messages(t)
		return len(msgs) >= n
	}, 10*time.Second, 100*time.Millisecond, "expected %d messages", n)
	return msgs
}

func (m *Mailpit) Reset(t *testing.T) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, m.baseURL+"/api/v1/messages", nil)
	require.NoError(t, err)
	resp, err := m.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
