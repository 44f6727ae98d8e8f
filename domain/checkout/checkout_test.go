package checkout

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
)

func testUser() *auth.SessionUser {
	return &auth.SessionUser{ID: "user-1", Email: "jane@acme.com"}
}

func validRequest() *CreateSessionRequest {
	return &CreateSessionRequest{
		ItemID:        "sales-closer",
		ItemType:      "agent",
		Price:         99,
		BillingPeriod: BillingMonthly,
	}
}

func testService(providerURL, apiKey string) *Service {
	cfg := &config.Config{}
	cfg.Checkout.ProviderURL = providerURL
	cfg.Checkout.APIKey = apiKey
	cfg.Checkout.SuccessURL = "https://app.example.com/dashboard"
	cfg.Checkout.CancelURL = "https://www.example.com/pricing"
	return NewService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateSession_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	// Provider URL known but key missing: service is unconfigured and
	// must fail before any network call.
	svc := testService(server.URL, "")

	_, err := svc.CreateSession(context.Background(), validRequest(), testUser())
	require.Error(t, err)
	assert.Equal(t, "not_configured", err.(*apperror.Error).Code)
	assert.Zero(t, calls.Load(), "no network call may be attempted when unconfigured")
}

func TestCreateSession_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sales-closer", body["item_id"])
		assert.Equal(t, "user-1", body["customer_id"])
		assert.Equal(t, "jane@acme.com", body["customer_email"])
		assert.Equal(t, "monthly", body["billing_period"])
		assert.Equal(t, float64(99), body["amount"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"cs_123","url":"https://pay.example.com/cs_123"}`))
	}))
	defer server.Close()

	svc := testService(server.URL, "sk_test")

	session, err := svc.CreateSession(context.Background(), validRequest(), testUser())
	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_123", session.URL)
}

func TestCreateSession_ProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message":"card declined"}`))
	}))
	defer server.Close()

	svc := testService(server.URL, "sk_test")

	_, err := svc.CreateSession(context.Background(), validRequest(), testUser())
	require.Error(t, err)

	appErr := err.(*apperror.Error)
	assert.Equal(t, "checkout_failed", appErr.Code)
	assert.Equal(t, "card declined", appErr.Message, "provider message must surface to the user")
}

func TestCreateSession_Validation(t *testing.T) {
	svc := testService("https://pay.example.com", "sk_test")

	tests := []struct {
		name   string
		mutate func(*CreateSessionRequest)
	}{
		{"missing item", func(r *CreateSessionRequest) { r.ItemID = "" }},
		{"bad item type", func(r *CreateSessionRequest) { r.ItemType = "gadget" }},
		{"zero price", func(r *CreateSessionRequest) { r.Price = 0 }},
		{"bad billing period", func(r *CreateSessionRequest) { r.BillingPeriod = "weekly" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.CreateSession(context.Background(), req, testUser())
			require.Error(t, err)
			assert.Equal(t, "bad_request", err.(*apperror.Error).Code)
		})
	}
}
