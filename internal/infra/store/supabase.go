package store

import (
	"context"
	"encoding/json"
	"fmt"

	"solnet-sms/internal/domain/notification"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const (
	settingsTable  = "sms_settings"
	templatesTable = "sms_templates"
)

var (
	_ notification.SettingsStore = (*SupabaseSettingsStore)(nil)
	_ notification.TemplateStore = (*SupabaseTemplateStore)(nil)
)

// NewClient creates a Supabase client shared by the settings and
// template stores.
func NewClient(supabaseURL, serviceKey string) (*supa.Client, error) {
	client, err := supa.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating supabase client: %w", err)
	}
	return client, nil
}

// SupabaseSettingsStore reads the active SMS provider configuration from
// the repair-shop application's sms_settings table.
type SupabaseSettingsStore struct {
	client *supa.Client
}

// NewSupabaseSettingsStore creates a Supabase-backed settings store.
func NewSupabaseSettingsStore(client *supa.Client) *SupabaseSettingsStore {
	return &SupabaseSettingsStore{client: client}
}

// settingsRow is the PostgREST representation of one sms_settings record.
type settingsRow struct {
	ID             string            `json:"id,omitempty"`
	Provider       string            `json:"provider"`
	APIKey         *string           `json:"api_key,omitempty"`
	Username       *string           `json:"username,omitempty"`
	Password       *string           `json:"password,omitempty"`
	SenderID       *string           `json:"sender_id,omitempty"`
	BaseURL        *string           `json:"base_url,omitempty"`
	CustomEndpoint *string           `json:"custom_endpoint,omitempty"`
	CustomHeaders  map[string]string `json:"custom_headers,omitempty"`
	IsActive       bool              `json:"is_active"`
}

// GetProviderConfig returns the most recent active configuration row,
// or nil, nil when none exists.
func (s *SupabaseSettingsStore) GetProviderConfig(ctx context.Context) (*notification.GatewayConfig, error) {
	data, _, err := s.client.From(settingsTable).
		Select("*", "exact", false).
		Eq("is_active", "true").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(0, 0, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching sms settings: %w", err)
	}

	var rows []settingsRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing sms settings: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rowToConfig(&rows[0]), nil
}

func rowToConfig(row *settingsRow) *notification.GatewayConfig {
	cfg := &notification.GatewayConfig{
		Provider:      notification.ProviderKind(row.Provider),
		CustomHeaders: row.CustomHeaders,
	}
	cfg.APIKey = deref(row.APIKey)
	cfg.Username = deref(row.Username)
	cfg.Password = deref(row.Password)
	cfg.SenderID = deref(row.SenderID)
	cfg.BaseURL = deref(row.BaseURL)
	cfg.CustomEndpoint = deref(row.CustomEndpoint)
	return cfg
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SupabaseTemplateStore reads message template sets from the repair-shop
// application's sms_templates table.
type SupabaseTemplateStore struct {
	client *supa.Client
}

// NewSupabaseTemplateStore creates a Supabase-backed template store.
func NewSupabaseTemplateStore(client *supa.Client) *SupabaseTemplateStore {
	return &SupabaseTemplateStore{client: client}
}

// templateRow is the PostgREST representation of one sms_templates record.
type templateRow struct {
	ID                   string  `json:"id,omitempty"`
	Name                 string  `json:"name"`
	DeviceRegistration   *string `json:"device_registration,omitempty"`
	DeviceStatusUpdate   *string `json:"device_status_update,omitempty"`
	DeviceReadyForPickup *string `json:"device_ready_for_pickup,omitempty"`
}

// GetTemplateSets returns all template sets, oldest first. The notifier
// consumes only the first one; an empty result is not an error.
func (s *SupabaseTemplateStore) GetTemplateSets(ctx context.Context) ([]notification.TemplateSet, error) {
	data, _, err := s.client.From(templatesTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching sms templates: %w", err)
	}

	var rows []templateRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing sms templates: %w", err)
	}

	sets := make([]notification.TemplateSet, 0, len(rows))
	for _, row := range rows {
		sets = append(sets, notification.TemplateSet{
			Name:                 row.Name,
			DeviceRegistration:   deref(row.DeviceRegistration),
			DeviceStatusUpdate:   deref(row.DeviceStatusUpdate),
			DeviceReadyForPickup: deref(row.DeviceReadyForPickup),
		})
	}
	return sets, nil
}
