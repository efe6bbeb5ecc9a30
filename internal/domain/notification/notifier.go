package notification

import (
	"context"
	"log/slog"
)

// Notifier maps device-repair lifecycle events to templates and sends the
// rendered message through the gateway. All three operations share one
// contract: never fail the caller, always attempt, log on failure.
type Notifier struct {
	gateway   *Gateway
	templates TemplateStore
}

// NewNotifier creates a lifecycle notifier.
func NewNotifier(gateway *Gateway, templates TemplateStore) *Notifier {
	return &Notifier{gateway: gateway, templates: templates}
}

// NotifyRegistration sends the registration confirmation for a newly
// checked-in device. Returns whether delivery was reported successful.
func (n *Notifier) NotifyRegistration(ctx context.Context, dev DeviceContext) bool {
	set := n.loadTemplates(ctx)
	msg := RenderTemplate(set.DeviceRegistration, dev)
	return n.gateway.Send(ctx, dev.CustomerPhone, msg)
}

// NotifyStatusChange sends a status-update message. oldStatus is audit
// information only; the message body is driven by dev.Status.
func (n *Notifier) NotifyStatusChange(ctx context.Context, dev DeviceContext, oldStatus string) bool {
	slog.Info("device status changed",
		"device_id", dev.ID,
		"receipt", dev.ReceiptNumber,
		"from", oldStatus,
		"to", dev.Status,
	)

	set := n.loadTemplates(ctx)
	msg := RenderStatusTemplate(set.DeviceStatusUpdate, dev, StatusMessage(dev.Status))
	return n.gateway.Send(ctx, dev.CustomerPhone, msg)
}

// NotifyReadyForPickup sends the pickup invitation. The device lifecycle
// manager calls this explicitly when a device becomes ready; it is not
// triggered automatically by NotifyStatusChange.
func (n *Notifier) NotifyReadyForPickup(ctx context.Context, dev DeviceContext) bool {
	set := n.loadTemplates(ctx)
	msg := RenderTemplate(set.DeviceReadyForPickup, dev)
	return n.gateway.Send(ctx, dev.CustomerPhone, msg)
}

// loadTemplates returns the first template set from the store, filling
// any blank template from the built-in default bundle. Store errors and
// empty results resolve to the default bundle — a message is always
// produced.
func (n *Notifier) loadTemplates(ctx context.Context) TemplateSet {
	if n.templates == nil {
		return DefaultTemplateSet
	}

	sets, err := n.templates.GetTemplateSets(ctx)
	if err != nil {
		slog.Warn("template store unavailable, using built-in templates", "error", err)
		return DefaultTemplateSet
	}
	if len(sets) == 0 {
		return DefaultTemplateSet
	}

	set := sets[0]
	if set.DeviceRegistration == "" {
		set.DeviceRegistration = DefaultTemplateSet.DeviceRegistration
	}
	if set.DeviceStatusUpdate == "" {
		set.DeviceStatusUpdate = DefaultTemplateSet.DeviceStatusUpdate
	}
	if set.DeviceReadyForPickup == "" {
		set.DeviceReadyForPickup = DefaultTemplateSet.DeviceReadyForPickup
	}
	return set
}
