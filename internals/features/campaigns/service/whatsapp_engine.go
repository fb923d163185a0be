package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"rayk_backend/internals/configs"
)

/* =========================================================
   WhatsAppEngine - WhatsApp Business Graph API
   ========================================================= */

type WhatsAppEngine struct {
	httpClient *http.Client
	baseURL    string
}

func NewWhatsAppEngine() *WhatsAppEngine {
	return &WhatsAppEngine{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://graph.facebook.com/v19.0",
	}
}

func (e *WhatsAppEngine) Enabled() bool {
	return configs.WhatsAppToken != "" && configs.WhatsAppPhoneID != ""
}

func (e *WhatsAppEngine) Send(ctx context.Context, to, _ string, body string) (string, error) {
	if !e.Enabled() {
		return "", errors.New("whatsapp channel not configured")
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]any{"preview_url": true, "body": body},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := e.baseURL + "/" + configs.WhatsAppPhoneID + "/messages"
	var messageID string
	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
		if err != nil {
			return retry.Unrecoverable(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+configs.WhatsAppToken)

		resp, err := e.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			return retry.Unrecoverable(errors.New("whatsapp auth failed"))
		}
		respRaw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode >= 300 {
			return fmt.Errorf("whatsapp status %d: %s", resp.StatusCode, string(respRaw))
		}

		var parsed struct {
			Messages []struct {
				ID string `json:"id"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(respRaw, &parsed); err != nil {
			return retry.Unrecoverable(fmt.Errorf("whatsapp response parse: %w", err))
		}
		if len(parsed.Messages) > 0 {
			messageID = parsed.Messages[0].ID
		}
		return nil
	}, sendRetryOpts...)
	return messageID, err
}
