package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	to      string
	message string
}

// fakeProvider records every Send call and optionally fails.
type fakeProvider struct {
	kind  ProviderKind
	err   error
	calls []sentMessage
}

func (f *fakeProvider) Send(_ context.Context, to, message string) error {
	f.calls = append(f.calls, sentMessage{to: to, message: message})
	return f.err
}

func (f *fakeProvider) Kind() ProviderKind { return f.kind }

// fakeSettingsStore returns a canned config or error.
type fakeSettingsStore struct {
	cfg *GatewayConfig
	err error
}

func (f *fakeSettingsStore) GetProviderConfig(context.Context) (*GatewayConfig, error) {
	return f.cfg, f.err
}

func TestGatewayDemoModeWithoutCredentials(t *testing.T) {
	fake := &fakeProvider{kind: ProviderBulkSMS}
	gw := NewGateway(GatewayConfig{Provider: ProviderBulkSMS}, fake)

	ok := gw.Send(context.Background(), "0911223344", "selam")

	assert.True(t, ok, "demo mode reports success")
	assert.Empty(t, fake.calls, "demo mode must not touch the provider")
}

func TestGatewayLiveDispatchNormalizesDestination(t *testing.T) {
	fake := &fakeProvider{kind: ProviderBulkSMS}
	gw := NewGateway(GatewayConfig{Provider: ProviderBulkSMS, APIKey: "k"}, fake)

	ok := gw.Send(context.Background(), "0911223344", "selam")

	assert.True(t, ok)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "+251911223344", fake.calls[0].to)
	assert.Equal(t, "selam", fake.calls[0].message)
}

func TestGatewayUnsupportedProvider(t *testing.T) {
	fake := &fakeProvider{kind: ProviderBulkSMS}
	gw := NewGateway(GatewayConfig{Provider: "carrier_pigeon", APIKey: "k"}, fake)

	assert.False(t, gw.Send(context.Background(), "0911223344", "selam"))
	assert.Empty(t, fake.calls)
}

func TestGatewayTransportFailureReturnsFalse(t *testing.T) {
	fake := &fakeProvider{kind: ProviderEthioTelecom, err: errors.New("connection refused")}
	gw := NewGateway(GatewayConfig{
		Provider: ProviderEthioTelecom,
		Username: "solnet",
		Password: "secret",
	}, fake)

	assert.False(t, gw.Send(context.Background(), "0911223344", "selam"))
	require.Len(t, fake.calls, 1)
}

func TestGatewayDisabledWithoutProvider(t *testing.T) {
	gw := NewGateway(GatewayConfig{})
	assert.False(t, gw.Send(context.Background(), "0911223344", "selam"))
}

func TestHasCredentials(t *testing.T) {
	assert.False(t, GatewayConfig{Provider: ProviderBulkSMS}.HasCredentials())
	assert.False(t, GatewayConfig{Username: "u"}.HasCredentials(), "username alone is not enough")
	assert.True(t, GatewayConfig{APIKey: "k"}.HasCredentials())
	assert.True(t, GatewayConfig{Username: "u", Password: "p"}.HasCredentials())
	assert.True(t, GatewayConfig{CustomEndpoint: "https://bridge.local/send"}.HasCredentials())
}

func TestLoadGatewayConfigPrefersStore(t *testing.T) {
	stored := &GatewayConfig{Provider: ProviderEthioTelecom, Username: "solnet", Password: "secret"}
	cfg := LoadGatewayConfig(context.Background(), &fakeSettingsStore{cfg: stored}, GatewayConfig{})

	assert.Equal(t, ProviderEthioTelecom, cfg.Provider)
	assert.Equal(t, "solnet", cfg.Username)
}

func TestLoadGatewayConfigFallsBackOnStoreError(t *testing.T) {
	fallback := GatewayConfig{Provider: ProviderBulkSMS, APIKey: "env-key", SenderID: "SolNet"}
	cfg := LoadGatewayConfig(context.Background(), &fakeSettingsStore{err: errors.New("store down")}, fallback)

	// The fallback provider is forced to africas_talking.
	assert.Equal(t, ProviderAfricasTalking, cfg.Provider)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadGatewayConfigFallsBackOnEmptyStore(t *testing.T) {
	cfg := LoadGatewayConfig(context.Background(), &fakeSettingsStore{}, GatewayConfig{})
	assert.Equal(t, ProviderAfricasTalking, cfg.Provider)
}

func TestSenderDefault(t *testing.T) {
	assert.Equal(t, "SolNet", GatewayConfig{}.Sender())
	assert.Equal(t, "MyShop", GatewayConfig{SenderID: "MyShop"}.Sender())
}
