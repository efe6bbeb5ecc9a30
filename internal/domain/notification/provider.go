package notification

import "context"

// Provider defines the contract for one SMS provider adapter.
// Implementations live in infra/provider/, one per third-party API.
type Provider interface {
	// Send delivers a message to a single normalized destination number.
	Send(ctx context.Context, to, message string) error

	// Kind returns which provider this adapter implements.
	Kind() ProviderKind
}

// SettingsStore defines the contract for loading the active provider
// configuration. The repair-shop application owns the settings screen;
// this service only reads the result.
type SettingsStore interface {
	// GetProviderConfig returns the active gateway configuration.
	// Returns nil, nil when no configuration row exists.
	GetProviderConfig(ctx context.Context) (*GatewayConfig, error)
}

// TemplateStore defines the contract for loading message template sets.
// Only the first returned set is used; the built-in default bundle
// covers the empty case.
type TemplateStore interface {
	GetTemplateSets(ctx context.Context) ([]TemplateSet, error)
}
