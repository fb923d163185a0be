package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"time"

	"github.com/avast/retry-go/v4"

	"rayk_backend/internals/configs"
)

// ChannelEngine sends one rendered message to one recipient and returns the
// vendor message ID when the provider reports one.
type ChannelEngine interface {
	Send(ctx context.Context, to, subject, body string) (vendorMessageID string, err error)
	Enabled() bool
}

var sendRetryOpts = []retry.Option{
	retry.Attempts(3),
	retry.Delay(500 * time.Millisecond),
	retry.DelayType(retry.BackOffDelay),
	retry.LastErrorOnly(true),
}

/* =========================================================
   EmailEngine - SendGrid HTTP API with SMTP fallback
   ========================================================= */

type EmailEngine struct {
	httpClient *http.Client
}

func NewEmailEngine() *EmailEngine {
	return &EmailEngine{httpClient: &http.Client{Timeout: 15 * time.Second}}
}

func (e *EmailEngine) Enabled() bool {
	return configs.SendGridAPIKey != "" || (configs.SMTPHost != "" && configs.SMTPUser != "")
}

func (e *EmailEngine) Send(ctx context.Context, to, subject, body string) (string, error) {
	if configs.SendGridAPIKey != "" {
		return e.sendViaSendGrid(ctx, to, subject, body)
	}
	if configs.SMTPHost != "" && configs.SMTPUser != "" {
		return "", e.sendViaSMTP(to, subject, body)
	}
	return "", errors.New("email channel not configured")
}

func (e *EmailEngine) sendViaSendGrid(ctx context.Context, to, subject, body string) (string, error) {
	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": configs.SMTPUser},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": body},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var messageID string
	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			"https://api.sendgrid.com/v3/mail/send", bytes.NewReader(raw))
		if err != nil {
			return retry.Unrecoverable(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+configs.SendGridAPIKey)

		resp, err := e.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return retry.Unrecoverable(fmt.Errorf("sendgrid auth failed: %d", resp.StatusCode))
		}
		if resp.StatusCode >= 300 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, string(detail))
		}
		messageID = resp.Header.Get("X-Message-Id")
		return nil
	}, sendRetryOpts...)
	return messageID, err
}

func (e *EmailEngine) sendViaSMTP(to, subject, body string) error {
	addr := configs.SMTPHost + ":" + configs.SMTPPort
	auth := smtp.PlainAuth("", configs.SMTPUser, configs.SMTPPassword, configs.SMTPHost)

	msg := []byte("From: " + configs.SMTPUser + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body + "\r\n")

	return retry.Do(func() error {
		return smtp.SendMail(addr, auth, configs.SMTPUser, []string{to}, msg)
	}, sendRetryOpts...)
}
