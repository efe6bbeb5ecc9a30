package provider

import (
	"context"
	"net/http"

	"solnet-sms/internal/domain/notification"
)

const bulkSMSEndpoint = "https://api.bulksms.com/v1/messages"

var _ notification.Provider = (*BulkSMS)(nil)

// BulkSMS sends SMS through the BulkSMS JSON API. The API key travels in
// the request body.
type BulkSMS struct {
	cfg        notification.GatewayConfig
	httpClient *http.Client
}

// NewBulkSMS creates a BulkSMS adapter.
func NewBulkSMS(cfg notification.GatewayConfig, client *http.Client) *BulkSMS {
	return &BulkSMS{cfg: cfg, httpClient: client}
}

// Kind returns the provider identifier.
func (p *BulkSMS) Kind() notification.ProviderKind {
	return notification.ProviderBulkSMS
}

// Send delivers one SMS via POST to the messages endpoint.
func (p *BulkSMS) Send(ctx context.Context, to, message string) error {
	endpoint := bulkSMSEndpoint
	if p.cfg.BaseURL != "" {
		endpoint = p.cfg.BaseURL
	}

	payload := map[string]string{
		"api_key":   p.cfg.APIKey,
		"sender_id": p.cfg.Sender(),
		"phone":     to,
		"message":   message,
	}

	return postJSON(ctx, p.httpClient, endpoint, payload, p.cfg.CustomHeaders)
}
