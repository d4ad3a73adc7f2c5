// Package notify delivers best-effort email notifications through an
// external HTTP webhook. Failures are logged and swallowed; nothing here
// ever propagates an error back to the request path.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type emailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EmailSender posts messages to the configured webhook. A sender with an
// empty URL is valid and silently skips delivery.
type EmailSender struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

func NewEmailSender(url string, logger zerolog.Logger) *EmailSender {
	return &EmailSender{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Send delivers one email, best effort.
func (s *EmailSender) Send(ctx context.Context, to, subject, message string) {
	if s.url == "" {
		s.logger.Debug().Msg("email webhook not configured, skipping send")
		return
	}

	body, err := json.Marshal(emailPayload{To: to, Subject: subject, Message: message})
	if err != nil {
		s.logger.Error().Err(err).Msg("email payload marshal failed")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		s.logger.Error().Err(err).Msg("email request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("to", to).Msg("email webhook request failed")
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		s.logger.Error().Int("status", resp.StatusCode).Str("to", to).Msg("email webhook rejected message")
		return
	}
	s.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
}
