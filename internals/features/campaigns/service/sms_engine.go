package service

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

	"github.com/avast/retry-go/v4"

	"rayk_backend/internals/configs"
)

/* =========================================================
   SMSEngine - Twilio Messages API (form-encoded, basic auth)
   ========================================================= */

type SMSEngine struct {
	httpClient *http.Client
}

func NewSMSEngine() *SMSEngine {
	return &SMSEngine{httpClient: &http.Client{Timeout: 15 * time.Second}}
}

func (e *SMSEngine) Enabled() bool {
	return configs.TwilioAccountSID != "" && configs.TwilioAuthToken != "" && configs.TwilioFromNumber != ""
}

// Send posts to /2010-04-01/Accounts/{sid}/Messages.json. to is normalized
// digits; Twilio wants the +.
func (e *SMSEngine) Send(ctx context.Context, to, _ string, body string) (string, error) {
	if !e.Enabled() {
		return "", errors.New("sms channel not configured")
	}

	endpoint := "https://api.twilio.com/2010-04-01/Accounts/" + configs.TwilioAccountSID + "/Messages.json"
	form := url.Values{}
	form.Set("To", "+"+strings.TrimPrefix(to, "+"))
	form.Set("From", configs.TwilioFromNumber)
	form.Set("Body", body)

	var sid string
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
			strings.NewReader(form.Encode()))
		if err != nil {
			return retry.Unrecoverable(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(configs.TwilioAccountSID, configs.TwilioAuthToken)

		resp, err := e.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			return retry.Unrecoverable(errors.New("twilio auth failed"))
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode >= 300 {
			return fmt.Errorf("twilio status %d: %s", resp.StatusCode, string(raw))
		}

		var parsed struct {
			Sid string `json:"sid"`
		}
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return retry.Unrecoverable(fmt.Errorf("twilio response parse: %w", err))
		}
		sid = parsed.Sid
		return nil
	}, sendRetryOpts...)
	return sid, err
}
