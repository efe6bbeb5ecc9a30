package provider

import (
	"context"
	"net/http"

	"solnet-sms/internal/domain/notification"
)

const localAggregatorEndpoint = "https://api.ethiopiansms.com/send"

var _ notification.Provider = (*LocalAggregator)(nil)

// LocalAggregator sends SMS through a local Ethiopian SMS aggregator.
// Same contract shape as BulkSMS: API key in the JSON body.
type LocalAggregator struct {
	cfg        notification.GatewayConfig
	httpClient *http.Client
}

// NewLocalAggregator creates a local aggregator adapter.
func NewLocalAggregator(cfg notification.GatewayConfig, client *http.Client) *LocalAggregator {
	return &LocalAggregator{cfg: cfg, httpClient: client}
}

// Kind returns the provider identifier.
func (p *LocalAggregator) Kind() notification.ProviderKind {
	return notification.ProviderLocalAggregator
}

// Send delivers one SMS via POST to the aggregator's send endpoint.
func (p *LocalAggregator) Send(ctx context.Context, to, message string) error {
	endpoint := localAggregatorEndpoint
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
