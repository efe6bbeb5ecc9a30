package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDevice() DeviceContext {
	return DeviceContext{
		ID:                 "dev-1",
		ReceiptNumber:      "SN-2024-0042",
		CustomerName:       "Abebe Kebede",
		CustomerPhone:      "0911223344",
		DeviceType:         "Laptop",
		Brand:              "Lenovo",
		Model:              "ThinkPad T14",
		ProblemDescription: "does not boot",
		Status:             StatusRegistered,
	}
}

func TestRenderTemplateSubstitutesAllRecognizedPlaceholders(t *testing.T) {
	tmpl := "{customerName} {customerPhone} {deviceType} {brand} {model} " +
		"{problemDescription} {receiptNumber} {status} {totalCost} {costInfo} " +
		"{estimatedCompletionDate} {completionInfo}"

	dev := sampleDevice()
	dev.TotalCost = "1500"
	dev.EstimatedCompletionDate = "2026-09-05"

	out := RenderTemplate(tmpl, dev)

	assert.NotContains(t, out, "{")
	assert.Contains(t, out, "Abebe Kebede")
	assert.Contains(t, out, "SN-2024-0042")
	assert.Contains(t, out, "ThinkPad T14")
}

func TestRenderTemplateLeavesUnknownPlaceholdersLiteral(t *testing.T) {
	out := RenderTemplate("hello {customerName} {unknownToken}", sampleDevice())
	assert.Contains(t, out, "{unknownToken}")
	assert.NotContains(t, out, "{customerName}")
}

func TestRenderTemplateCostFragment(t *testing.T) {
	dev := sampleDevice()

	// Absent cost: fragment disappears entirely.
	out := RenderTemplate("x{costInfo}y", dev)
	assert.Equal(t, "xy", out)

	dev.TotalCost = "1500"
	out = RenderTemplate("x{costInfo}y", dev)
	assert.Contains(t, out, "1500")
	assert.Contains(t, out, "ብር")
}

func TestRenderTemplateCompletionFragment(t *testing.T) {
	dev := sampleDevice()

	out := RenderTemplate("x{completionInfo}y", dev)
	assert.Equal(t, "xy", out)

	dev.EstimatedCompletionDate = "2026-09-05"
	out = RenderTemplate("x{completionInfo}y", dev)
	assert.Contains(t, out, "05/09/2026")

	// Unparseable dates pass through as given.
	dev.EstimatedCompletionDate = "next week"
	out = RenderTemplate("x{completionInfo}y", dev)
	assert.Contains(t, out, "next week")
}

func TestRenderStatusTemplateInjectsStatusMessage(t *testing.T) {
	dev := sampleDevice()
	dev.Status = StatusCompleted

	out := RenderStatusTemplate("{statusMessage}", dev, StatusMessage(dev.Status))
	assert.Equal(t, "የመሣሪያዎ ጥገና ተጠናቅቋል።", out)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "መሣሪያዎ ለመረከብ ዝግጁ ነው።", StatusMessage(StatusReadyForPickup))
	assert.Equal(t, "የመሣሪያዎ ሁኔታ ተዘምኗል።", StatusMessage("shipped_to_mars"))

	// Every canonical status has a dedicated sentence.
	for _, status := range []string{
		StatusRegistered, StatusDiagnosed, StatusInProgress, StatusWaitingParts,
		StatusCompleted, StatusReadyForPickup, StatusDelivered, StatusCancelled,
	} {
		assert.NotEqual(t, statusFallbackMessage, StatusMessage(status), status)
	}
}

func TestDefaultTemplatesRenderClean(t *testing.T) {
	dev := sampleDevice()
	dev.TotalCost = "2300"
	dev.EstimatedCompletionDate = "2026-09-10"

	for name, tmpl := range map[string]string{
		"registration":     DefaultTemplateSet.DeviceRegistration,
		"ready_for_pickup": DefaultTemplateSet.DeviceReadyForPickup,
	} {
		out := RenderTemplate(tmpl, dev)
		require.NotContains(t, out, "{", name)
	}

	out := RenderStatusTemplate(DefaultTemplateSet.DeviceStatusUpdate, dev, StatusMessage(StatusInProgress))
	require.False(t, strings.ContainsRune(out, '{'))
}
