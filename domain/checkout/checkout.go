package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Billing periods accepted by the checkout provider
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

// CreateSessionRequest is the request body for starting a checkout
type CreateSessionRequest struct {
	ItemID        string  `json:"itemId"`
	ItemType      string  `json:"itemType"` // "agent" or "plan"
	Price         float64 `json:"price"`
	BillingPeriod string  `json:"billingPeriod"`
}

// SessionDTO is the created checkout session. The user is redirected
// to URL; completion is observed later via the provider's webhook into
// the main application, never through this call's return value.
type SessionDTO struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// providerRequest is the wire shape the checkout provider expects
type providerRequest struct {
	ItemID        string  `json:"item_id"`
	ItemType      string  `json:"item_type"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	BillingPeriod string  `json:"billing_period"`
	CustomerID    string  `json:"customer_id"`
	CustomerEmail string  `json:"customer_email"`
	SuccessURL    string  `json:"success_url"`
	CancelURL     string  `json:"cancel_url"`
}

type providerResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type providerError struct {
	Message string `json:"message"`
}

// Service creates checkout sessions with the external provider
type Service struct {
	cfg    *config.Config
	log    *slog.Logger
	client *resty.Client
}

// NewService creates a new checkout service
func NewService(cfg *config.Config, log *slog.Logger) *Service {
	client := resty.New().
		SetBaseURL(cfg.Checkout.ProviderURL).
		SetTimeout(cfg.Checkout.Timeout).
		SetAuthToken(cfg.Checkout.APIKey)

	return &Service{
		cfg:    cfg,
		log:    log.With(logger.Scope("checkout.svc")),
		client: client,
	}
}

// CreateSession starts a checkout with the external provider.
//
// When the provider is not configured this fails immediately, before
// any network call, so the page can show a blocking notification.
func (s *Service) CreateSession(ctx context.Context, req *CreateSessionRequest, user *auth.SessionUser) (*SessionDTO, error) {
	if !s.cfg.Checkout.IsConfigured() {
		return nil, apperror.ErrNotConfigured.WithMessage("Payment provider is not configured")
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	var (
		session SessionDTO
		perr    providerError
	)
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(providerRequest{
			ItemID:        req.ItemID,
			ItemType:      req.ItemType,
			Amount:        req.Price,
			Currency:      "USD",
			BillingPeriod: req.BillingPeriod,
			CustomerID:    user.ID,
			CustomerEmail: user.Email,
			SuccessURL:    s.cfg.Checkout.SuccessURL,
			CancelURL:     s.cfg.Checkout.CancelURL,
		}).
		SetResult(&providerResponse{}).
		SetError(&perr).
		Post("/v1/checkout/sessions")
	if err != nil {
		s.log.Error("checkout provider unreachable", logger.Error(err))
		return nil, apperror.ErrCheckoutFailed.WithInternal(err)
	}

	if resp.IsError() {
		msg := perr.Message
		if msg == "" {
			msg = fmt.Sprintf("checkout provider returned status %d", resp.StatusCode())
		}
		s.log.Error("checkout session rejected", slog.String("provider_message", msg))
		return nil, apperror.ErrCheckoutFailed.WithMessage(msg)
	}

	result := resp.Result().(*providerResponse)
	session = SessionDTO{SessionID: result.ID, URL: result.URL}

	s.log.Info("checkout session created",
		slog.String("session_id", session.SessionID),
		slog.String("item_id", req.ItemID),
		slog.String("billing_period", req.BillingPeriod),
	)

	return &session, nil
}

func (s *Service) validate(req *CreateSessionRequest) error {
	if req.ItemID == "" {
		return apperror.NewBadRequest("itemId is required")
	}
	if req.ItemType != "agent" && req.ItemType != "plan" {
		return apperror.NewBadRequest("itemType must be 'agent' or 'plan'")
	}
	if req.Price <= 0 {
		return apperror.NewBadRequest("price must be positive")
	}
	if req.BillingPeriod != BillingMonthly && req.BillingPeriod != BillingYearly {
		return apperror.NewBadRequest("billingPeriod must be 'monthly' or 'yearly'")
	}
	return nil
}
