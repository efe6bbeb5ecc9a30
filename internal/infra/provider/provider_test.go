package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"solnet-sms/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	header http.Header
	body   []byte
}

// recordingServer captures every request and answers with the given status.
func recordingServer(t *testing.T, status int) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			header: r.Header.Clone(),
			body:   body,
		})
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func jsonBody(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	var m map[string]string
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestAfricasTalkingSend(t *testing.T) {
	srv, requests := recordingServer(t, http.StatusOK)

	cfg := notification.GatewayConfig{
		Provider:      notification.ProviderAfricasTalking,
		APIKey:        "at-key",
		Username:      "solnet",
		BaseURL:       srv.URL,
		CustomHeaders: map[string]string{"X-Tenant": "solnet"},
	}
	p := NewAfricasTalking(cfg, NewHTTPClient(5*time.Second))

	require.NoError(t, p.Send(context.Background(), "+251911223344", "selam"))
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/version1/messaging", req.path)
	assert.Equal(t, "at-key", req.header.Get("apiKey"))
	assert.Equal(t, "solnet", req.header.Get("X-Tenant"))
	assert.Contains(t, req.header.Get("Content-Type"), "application/x-www-form-urlencoded")

	form, err := url.ParseQuery(string(req.body))
	require.NoError(t, err)
	assert.Equal(t, "solnet", form.Get("username"))
	assert.Equal(t, "+251911223344", form.Get("to"))
	assert.Equal(t, "selam", form.Get("message"))
	assert.Equal(t, "SolNet", form.Get("from"))
}

func TestBulkSMSSend(t *testing.T) {
	srv, requests := recordingServer(t, http.StatusOK)

	cfg := notification.GatewayConfig{
		Provider: notification.ProviderBulkSMS,
		APIKey:   "bulk-key",
		SenderID: "SolNet",
		BaseURL:  srv.URL,
	}
	p := NewBulkSMS(cfg, NewHTTPClient(5*time.Second))

	require.NoError(t, p.Send(context.Background(), "+251911223344", "selam"))
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))

	body := jsonBody(t, req.body)
	assert.Equal(t, map[string]string{
		"api_key":   "bulk-key",
		"sender_id": "SolNet",
		"phone":     "+251911223344",
		"message":   "selam",
	}, body)
}

func TestEthioTelecomSend(t *testing.T) {
	srv, requests := recordingServer(t, http.StatusOK)

	cfg := notification.GatewayConfig{
		Provider: notification.ProviderEthioTelecom,
		Username: "solnet",
		Password: "secret",
		BaseURL:  srv.URL,
	}
	p := NewEthioTelecom(cfg, NewHTTPClient(5*time.Second))

	require.NoError(t, p.Send(context.Background(), "+251911223344", "ሰላም"))
	require.Len(t, *requests, 1)

	body := jsonBody(t, (*requests)[0].body)
	assert.Equal(t, "solnet", body["username"])
	assert.Equal(t, "secret", body["password"])
	assert.Equal(t, "SolNet", body["sender_id"])
	assert.Equal(t, "+251911223344", body["phone"])
	assert.Equal(t, "ሰላም", body["message"])
	assert.Equal(t, "text", body["message_type"])
	assert.Equal(t, "UTF-8", body["encoding"])
}

func TestLocalAggregatorSend(t *testing.T) {
	srv, requests := recordingServer(t, http.StatusOK)

	cfg := notification.GatewayConfig{
		Provider: notification.ProviderLocalAggregator,
		APIKey:   "agg-key",
		BaseURL:  srv.URL,
	}
	p := NewLocalAggregator(cfg, NewHTTPClient(5*time.Second))

	require.NoError(t, p.Send(context.Background(), "+251911223344", "selam"))
	require.Len(t, *requests, 1)

	body := jsonBody(t, (*requests)[0].body)
	assert.Equal(t, "agg-key", body["api_key"])
	assert.Equal(t, "+251911223344", body["phone"])
}

func TestCustomSend(t *testing.T) {
	srv, requests := recordingServer(t, http.StatusOK)

	cfg := notification.GatewayConfig{
		Provider:       notification.ProviderCustom,
		CustomEndpoint: srv.URL + "/bridge/send",
		CustomHeaders:  map[string]string{"X-Auth": "abc"},
	}
	p := NewCustom(cfg, NewHTTPClient(5*time.Second))

	require.NoError(t, p.Send(context.Background(), "+251911223344", "selam"))
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, "/bridge/send", req.path)
	assert.Equal(t, "abc", req.header.Get("X-Auth"))

	body := jsonBody(t, req.body)
	assert.Equal(t, map[string]string{
		"to":      "+251911223344",
		"message": "selam",
		"from":    "SolNet",
	}, body)
}

func TestCustomSendWithoutEndpoint(t *testing.T) {
	p := NewCustom(notification.GatewayConfig{Provider: notification.ProviderCustom}, NewHTTPClient(time.Second))
	assert.Error(t, p.Send(context.Background(), "+251911223344", "selam"))
}

func TestNon200IsAFailure(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv, _ := recordingServer(t, status)
		cfg := notification.GatewayConfig{
			Provider: notification.ProviderBulkSMS,
			APIKey:   "k",
			BaseURL:  srv.URL,
		}
		p := NewBulkSMS(cfg, NewHTTPClient(5*time.Second))
		assert.Error(t, p.Send(context.Background(), "+251911223344", "selam"), "status %d", status)
	}
}

func TestTransportErrorIsAFailure(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusOK)
	cfg := notification.GatewayConfig{
		Provider: notification.ProviderBulkSMS,
		APIKey:   "k",
		BaseURL:  srv.URL,
	}
	srv.Close() // refuse connections

	p := NewBulkSMS(cfg, NewHTTPClient(time.Second))
	assert.Error(t, p.Send(context.Background(), "+251911223344", "selam"))
}
