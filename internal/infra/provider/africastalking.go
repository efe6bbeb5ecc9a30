package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"solnet-sms/internal/domain/notification"
)

const africasTalkingBaseURL = "https://api.africastalking.com"

var _ notification.Provider = (*AfricasTalking)(nil)

// AfricasTalking sends SMS through the Africa's Talking messaging API.
// Auth is the apiKey header; the body is form-encoded.
type AfricasTalking struct {
	cfg        notification.GatewayConfig
	httpClient *http.Client
}

// NewAfricasTalking creates an Africa's Talking adapter.
func NewAfricasTalking(cfg notification.GatewayConfig, client *http.Client) *AfricasTalking {
	return &AfricasTalking{cfg: cfg, httpClient: client}
}

// Kind returns the provider identifier.
func (p *AfricasTalking) Kind() notification.ProviderKind {
	return notification.ProviderAfricasTalking
}

// Send delivers one SMS via POST {base}/version1/messaging.
func (p *AfricasTalking) Send(ctx context.Context, to, message string) error {
	base := africasTalkingBaseURL
	if p.cfg.BaseURL != "" {
		base = strings.TrimSuffix(p.cfg.BaseURL, "/")
	}
	endpoint := base + "/version1/messaging"

	form := url.Values{
		"username": {p.cfg.Username},
		"to":       {to},
		"message":  {message},
		"from":     {p.cfg.Sender()},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", p.cfg.APIKey)
	for key, value := range p.cfg.CustomHeaders {
		req.Header.Set(key, value)
	}

	return execute(p.httpClient, req)
}
