package notification

import (
	"context"
	"log/slog"
)

// Outcome classifies the result of one send attempt. The caller-facing
// contract stays boolean, but the tagged outcome drives structured
// logging so failure causes stay distinguishable.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDemo
	OutcomeConfigError
	OutcomeTransportError
	OutcomeUnsupportedProvider
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDemo:
		return "demo"
	case OutcomeConfigError:
		return "config_error"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeUnsupportedProvider:
		return "unsupported_provider"
	default:
		return "unknown"
	}
}

// delivered reports whether the outcome counts as success at the boundary.
// Demo-mode sends are reported successful: the business operation that
// triggered the notification must never observe a delivery problem.
func (o Outcome) delivered() bool {
	return o == OutcomeOK || o == OutcomeDemo
}

// Gateway is the outbound SMS orchestrator. It holds the immutable
// provider configuration and the adapter registry, decides the operating
// mode per send (disabled / demo / live), and absorbs every failure.
type Gateway struct {
	cfg       GatewayConfig
	providers map[ProviderKind]Provider
}

// NewGateway creates a gateway with the given resolved configuration and
// provider adapters. Use LoadGatewayConfig to resolve the configuration
// from the settings store first.
func NewGateway(cfg GatewayConfig, providers ...Provider) *Gateway {
	pm := make(map[ProviderKind]Provider, len(providers))
	for _, p := range providers {
		pm[p.Kind()] = p
	}
	return &Gateway{cfg: cfg, providers: pm}
}

// LoadGatewayConfig resolves the gateway configuration once, at startup.
// The settings store is authoritative; if it is unreachable or empty,
// the environment-derived fallback is used with the provider forced to
// africas_talking.
func LoadGatewayConfig(ctx context.Context, store SettingsStore, fallback GatewayConfig) GatewayConfig {
	if store != nil {
		cfg, err := store.GetProviderConfig(ctx)
		switch {
		case err != nil:
			slog.Warn("settings store unavailable, using environment fallback", "error", err)
		case cfg == nil || cfg.Provider == "":
			slog.Warn("no sms settings configured, using environment fallback")
		default:
			return *cfg
		}
	}

	fallback.Provider = ProviderAfricasTalking
	return fallback
}

// Config returns the resolved gateway configuration.
func (g *Gateway) Config() GatewayConfig {
	return g.cfg
}

// Send delivers one SMS and reports success. It never returns an error
// and never panics: configuration gaps resolve to demo mode, transport
// and dispatch failures are logged and reported as false.
func (g *Gateway) Send(ctx context.Context, to, message string) bool {
	return g.send(ctx, to, message).delivered()
}

func (g *Gateway) send(ctx context.Context, to, message string) Outcome {
	// Defensive: LoadGatewayConfig always sets a provider.
	if g.cfg.Provider == "" {
		slog.Warn("sms gateway disabled: no provider configured", "to", to)
		return OutcomeConfigError
	}

	dest := NormalizePhone(to)

	if !g.cfg.HasCredentials() {
		slog.Info("sms demo mode: no credentials, skipping network call",
			"provider", g.cfg.Provider,
			"to", dest,
			"message", truncate(message, 80),
		)
		return OutcomeDemo
	}

	provider, ok := g.providers[g.cfg.Provider]
	if !ok {
		slog.Error("unsupported sms provider",
			"provider", g.cfg.Provider,
			"to", dest,
		)
		return OutcomeUnsupportedProvider
	}

	if err := provider.Send(ctx, dest, message); err != nil {
		slog.Error("sms delivery failed",
			"provider", g.cfg.Provider,
			"to", dest,
			"error", err,
		)
		return OutcomeTransportError
	}

	slog.Info("sms sent",
		"provider", g.cfg.Provider,
		"to", dest,
		"message", truncate(message, 80),
	)
	return OutcomeOK
}

// truncate shortens message bodies for log fields.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
