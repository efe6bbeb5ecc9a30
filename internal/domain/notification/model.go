package notification

// ProviderKind identifies an SMS provider implementation.
type ProviderKind string

const (
	ProviderAfricasTalking  ProviderKind = "africas_talking"
	ProviderBulkSMS         ProviderKind = "bulksms"
	ProviderEthioTelecom    ProviderKind = "ethio_telecom"
	ProviderLocalAggregator ProviderKind = "local_aggregator"
	ProviderCustom          ProviderKind = "custom"
)

// DefaultSenderID is used when no sender ID is configured.
const DefaultSenderID = "SolNet"

// GatewayConfig is the resolved provider selection and credentials.
// It is loaded once at gateway construction and read-only afterwards,
// so it is safe to share across concurrent sends.
type GatewayConfig struct {
	Provider       ProviderKind      `json:"provider"`
	APIKey         string            `json:"api_key,omitempty"`
	Username       string            `json:"username,omitempty"`
	Password       string            `json:"password,omitempty"`
	SenderID       string            `json:"sender_id,omitempty"`
	BaseURL        string            `json:"base_url,omitempty"`
	CustomEndpoint string            `json:"custom_endpoint,omitempty"`
	CustomHeaders  map[string]string `json:"custom_headers,omitempty"`
}

// HasCredentials reports whether any usable credential set is present.
// Absence of credentials is not an error — it puts the gateway in demo mode.
func (c GatewayConfig) HasCredentials() bool {
	if c.APIKey != "" {
		return true
	}
	if c.Username != "" && c.Password != "" {
		return true
	}
	return c.CustomEndpoint != ""
}

// Sender returns the configured sender ID, defaulting to DefaultSenderID.
func (c GatewayConfig) Sender() string {
	if c.SenderID == "" {
		return DefaultSenderID
	}
	return c.SenderID
}

// Device repair lifecycle statuses, as reported by the repair-shop application.
const (
	StatusRegistered     = "registered"
	StatusDiagnosed      = "diagnosed"
	StatusInProgress     = "in_progress"
	StatusWaitingParts   = "waiting_parts"
	StatusCompleted      = "completed"
	StatusReadyForPickup = "ready_for_pickup"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// statusMessages maps each lifecycle status to the Amharic sentence
// injected into the status-update template as {statusMessage}.
var statusMessages = map[string]string{
	StatusRegistered:     "መሣሪያዎ ለጥገና ተመዝግቧል።",
	StatusDiagnosed:      "መሣሪያዎ ተመርምሮ ችግሩ ታውቋል።",
	StatusInProgress:     "መሣሪያዎ በጥገና ላይ ነው።",
	StatusWaitingParts:   "መሣሪያዎ መለዋወጫ በመጠበቅ ላይ ነው።",
	StatusCompleted:      "የመሣሪያዎ ጥገና ተጠናቅቋል።",
	StatusReadyForPickup: "መሣሪያዎ ለመረከብ ዝግጁ ነው።",
	StatusDelivered:      "መሣሪያዎን ተረክበዋል።",
	StatusCancelled:      "የመሣሪያዎ ጥገና ተሰርዟል።",
}

// statusFallbackMessage is used for statuses not in the table.
const statusFallbackMessage = "የመሣሪያዎ ሁኔታ ተዘምኗል።"

// StatusMessage returns the Amharic sentence for a lifecycle status,
// falling back to a generic "status updated" sentence for unknown values.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return statusFallbackMessage
}

// DeviceContext is the immutable snapshot of a device record passed in
// by the device-event source. The gateway never mutates or persists it.
// TotalCost and EstimatedCompletionDate are optional; empty means absent.
type DeviceContext struct {
	ID                      string `json:"id"`
	ReceiptNumber           string `json:"receipt_number"`
	CustomerName            string `json:"customer_name"`
	CustomerPhone           string `json:"customer_phone" binding:"required"`
	DeviceType              string `json:"device_type"`
	Brand                   string `json:"brand"`
	Model                   string `json:"model"`
	ProblemDescription      string `json:"problem_description"`
	Status                  string `json:"status"`
	TotalCost               string `json:"total_cost,omitempty"`
	EstimatedCompletionDate string `json:"estimated_completion_date,omitempty"`
}

// TemplateSet is a named bundle of the three lifecycle message templates.
type TemplateSet struct {
	Name                 string `json:"name"`
	DeviceRegistration   string `json:"device_registration"`
	DeviceStatusUpdate   string `json:"device_status_update"`
	DeviceReadyForPickup string `json:"device_ready_for_pickup"`
}

// DefaultTemplateSet is the built-in Amharic bundle used whenever the
// template store returns nothing. The system must always be able to
// produce some message, so this constant is the terminal fallback.
var DefaultTemplateSet = TemplateSet{
	Name:                 "default",
	DeviceRegistration:   "ውድ {customerName}፣ {deviceType} {brand} {model} መሣሪያዎ በSolNet የጥገና ማዕከል ተመዝግቧል። የደረሰኝ ቁጥር፦ {receiptNumber}። {costInfo}{completionInfo}እናመሰግናለን!",
	DeviceStatusUpdate:   "ውድ {customerName}፣ የመሣሪያዎ ({brand} {model}) ሁኔታ ተቀይሯል። {statusMessage} የደረሰኝ ቁጥር፦ {receiptNumber}። {costInfo}{completionInfo}",
	DeviceReadyForPickup: "ውድ {customerName}፣ መሣሪያዎ ({brand} {model}) ተጠግኖ ዝግጁ ነው! ለመረከብ የደረሰኝ ቁጥር {receiptNumber} ይዘው ይምጡ። {costInfo}SolNet እናመሰግናለን!",
}
