package notification

import (
	"context"
	"net/http"
	"time"

	"solnet-sms/internal/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the three lifecycle triggers over HTTP for the
// repair-shop application. Sends run on a detached goroutine with their
// own timeout so a slow provider never stalls the business operation —
// every trigger answers 202 immediately.
type Handler struct {
	notifier    *Notifier
	sendTimeout time.Duration
}

// NewHandler creates a new notification handler.
func NewHandler(notifier *Notifier, sendTimeout time.Duration) *Handler {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &Handler{notifier: notifier, sendTimeout: sendTimeout}
}

// StatusChangeRequest is the payload for a status-change trigger.
type StatusChangeRequest struct {
	DeviceContext
	OldStatus string `json:"old_status"`
}

// Registration handles POST /notify/registration
func (h *Handler) Registration(c *gin.Context) {
	var dev DeviceContext
	if err := c.ShouldBindJSON(&dev); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(func(ctx context.Context) {
		h.notifier.NotifyRegistration(ctx, dev)
	})

	accepted(c, dev, "registration")
}

// StatusChange handles POST /notify/status-change
func (h *Handler) StatusChange(c *gin.Context) {
	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(func(ctx context.Context) {
		h.notifier.NotifyStatusChange(ctx, req.DeviceContext, req.OldStatus)
	})

	accepted(c, req.DeviceContext, "status_change")
}

// ReadyForPickup handles POST /notify/ready-for-pickup
func (h *Handler) ReadyForPickup(c *gin.Context) {
	var dev DeviceContext
	if err := c.ShouldBindJSON(&dev); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(func(ctx context.Context) {
		h.notifier.NotifyReadyForPickup(ctx, dev)
	})

	accepted(c, dev, "ready_for_pickup")
}

// dispatch runs fn on its own goroutine with a fresh context, detached
// from the request lifetime. The extra margin over the send timeout
// covers template loading before the HTTP call starts.
func (h *Handler) dispatch(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.sendTimeout+5*time.Second)
		defer cancel()
		fn(ctx)
	}()
}

func accepted(c *gin.Context, dev DeviceContext, trigger string) {
	common.Success(c, http.StatusAccepted, gin.H{
		"status":    "accepted",
		"trigger":   trigger,
		"device_id": dev.ID,
	})
}

// RegisterRoutes registers notification routes to the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/notify/registration", h.Registration)
	rg.POST("/notify/status-change", h.StatusChange)
	rg.POST("/notify/ready-for-pickup", h.ReadyForPickup)
}
