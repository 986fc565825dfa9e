package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	sendGridURL     = "https://api.sendgrid.com/v3/mail/send"
	SettingKeyEmail = "SENDGRID_API_KEY"
)

var ErrMissingAPIKey = errors.New("missing SENDGRID_API_KEY in settings")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type SettingsSource interface {
	GetSetting(key string) (string, error)
}

type Mailer interface {
	SendStatusEmail(ctx context.Context, email string, orderID int, status string) error
}

// SendGridMailer dispatches transactional order-status emails. The provider
// API key lives in the settings collection, not in the environment.
type SendGridMailer struct {
	Settings SettingsSource
	Client   HTTPClient
	From     string
}

func NewSendGridMailer(settings SettingsSource, client HTTPClient, from string) *SendGridMailer {
	return &SendGridMailer{Settings: settings, Client: client, From: from}
}

func (m *SendGridMailer) SendStatusEmail(ctx context.Context, email string, orderID int, status string) error {
	apiKey, err := m.Settings.GetSetting(SettingKeyEmail)
	if err != nil {
		return fmt.Errorf("load sendgrid key: %w", err)
	}
	if apiKey == "" {
		return ErrMissingAPIKey
	}

	subject := fmt.Sprintf("Order #%d Status Update", orderID)
	text := fmt.Sprintf("Your order #%d status is now: %s. Thank you for ordering!", orderID, strings.ToUpper(status))

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": email}}},
		},
		"from":    map[string]string{"email": m.From},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": text},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, detail)
	}
	return nil
}

var _ Mailer = (*SendGridMailer)(nil)
