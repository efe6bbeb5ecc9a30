package provider

import (
	"context"
	"net/http"

	"solnet-sms/internal/domain/notification"
)

const ethioTelecomEndpoint = "https://sms.ethiotelecom.et/api/send"

var _ notification.Provider = (*EthioTelecom)(nil)

// EthioTelecom sends SMS through the Ethio Telecom business SMS API.
// Auth is username/password in the request body.
type EthioTelecom struct {
	cfg        notification.GatewayConfig
	httpClient *http.Client
}

// NewEthioTelecom creates an Ethio Telecom adapter.
func NewEthioTelecom(cfg notification.GatewayConfig, client *http.Client) *EthioTelecom {
	return &EthioTelecom{cfg: cfg, httpClient: client}
}

// Kind returns the provider identifier.
func (p *EthioTelecom) Kind() notification.ProviderKind {
	return notification.ProviderEthioTelecom
}

// Send delivers one SMS via POST to the send endpoint. Amharic bodies
// require the explicit UTF-8 encoding field.
func (p *EthioTelecom) Send(ctx context.Context, to, message string) error {
	endpoint := ethioTelecomEndpoint
	if p.cfg.BaseURL != "" {
		endpoint = p.cfg.BaseURL
	}

	payload := map[string]string{
		"username":     p.cfg.Username,
		"password":     p.cfg.Password,
		"sender_id":    p.cfg.Sender(),
		"phone":        to,
		"message":      message,
		"message_type": "text",
		"encoding":     "UTF-8",
	}

	return postJSON(ctx, p.httpClient, endpoint, payload, p.cfg.CustomHeaders)
}
