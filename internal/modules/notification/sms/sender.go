package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WebhookSender posts messages to an SMS-gateway webhook. An empty URL means
// SMS is not configured; callers should treat that as "channel disabled"
// rather than an error path.
type WebhookSender struct {
	url   string
	token string
	http  *http.Client
}

func NewWebhookSender(url, token string, timeout time.Duration) *WebhookSender {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookSender{
		url:   strings.TrimSpace(url),
		token: strings.TrimSpace(token),
		http:  &http.Client{Timeout: timeout},
	}
}

func (s *WebhookSender) Configured() bool {
	return s.url != ""
}

func (s *WebhookSender) Send(ctx context.Context, to, body string) error {
	if s.url == "" {
		return errors.New("sms webhook url not configured")
	}

	raw, err := json.Marshal(map[string]string{
		"to":   to,
		"body": body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms webhook returned %d", resp.StatusCode)
	}
	return nil
}
