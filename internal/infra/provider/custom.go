package provider

import (
	"context"
	"errors"
	"net/http"

	"solnet-sms/internal/domain/notification"
)

var _ notification.Provider = (*Custom)(nil)

// Custom sends SMS to a caller-configured endpoint with caller-supplied
// headers. It covers shops that run their own aggregator bridge.
type Custom struct {
	cfg        notification.GatewayConfig
	httpClient *http.Client
}

// NewCustom creates a custom endpoint adapter.
func NewCustom(cfg notification.GatewayConfig, client *http.Client) *Custom {
	return &Custom{cfg: cfg, httpClient: client}
}

// Kind returns the provider identifier.
func (p *Custom) Kind() notification.ProviderKind {
	return notification.ProviderCustom
}

// Send delivers one SMS via POST to the configured custom endpoint.
func (p *Custom) Send(ctx context.Context, to, message string) error {
	if p.cfg.CustomEndpoint == "" {
		return errors.New("custom provider: no endpoint configured")
	}

	payload := map[string]string{
		"to":      to,
		"message": message,
		"from":    p.cfg.Sender(),
	}

	return postJSON(ctx, p.httpClient, p.cfg.CustomEndpoint, payload, p.cfg.CustomHeaders)
}
