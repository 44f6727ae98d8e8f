package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// store is the persistence surface the service needs
type store interface {
	Insert(ctx context.Context, ticket *Ticket) (*Ticket, error)
	MarkNotified(ctx context.Context, id string) error
}

// Service handles contact-sales submissions
type Service struct {
	repo   store
	sender Sender
	cfg    *config.Config
	log    *slog.Logger
}

// NewService creates a new contact service
func NewService(repo *Repository, sender Sender, cfg *config.Config, log *slog.Logger) *Service {
	return newService(repo, sender, cfg, log)
}

func newService(repo store, sender Sender, cfg *config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
		log:    log.With(logger.Scope("contact.svc")),
	}
}

// Submit validates a contact request, persists the ticket, and notifies
// the sales inbox. Validation failures carry per-field messages; a
// persistence failure is surfaced as a submission error so the caller
// keeps its form state and can resubmit.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest, user *auth.SessionUser) (*SubmitResponse, error) {
	if errors := Rules.Validate(req.Values()); len(errors) > 0 {
		return nil, apperror.NewValidation(errors)
	}

	source := req.Source
	if source == "" {
		source = "contact-sales"
	}

	ticket := &Ticket{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
		Message:   req.Message,
		Source:    source,
	}
	if user != nil {
		ticket.UserID = &user.ID
	}

	ticket, err := s.repo.Insert(ctx, ticket)
	if err != nil {
		return nil, apperror.ErrSubmissionFailed.
			WithMessage("Your message could not be submitted, please try again").
			WithInternal(err)
	}

	// Notification to sales is best effort: the ticket is already
	// recorded, so a delivery hiccup must not fail the submission.
	result, err := s.sender.Send(ctx, SendOptions{
		To:      s.cfg.Email.SalesEmail,
		Subject: fmt.Sprintf("Contact request from %s %s (%s)", ticket.FirstName, ticket.LastName, ticket.Company),
		Text:    s.notificationBody(ticket),
	})
	if err != nil || !result.Success {
		s.log.Warn("sales notification not delivered",
			slog.String("ticket_id", ticket.ID),
			logger.Error(err))
		return &SubmitResponse{ID: ticket.ID, Status: ticket.Status}, nil
	}

	if err := s.repo.MarkNotified(ctx, ticket.ID); err != nil {
		s.log.Warn("failed to update ticket status", slog.String("ticket_id", ticket.ID))
	}

	return &SubmitResponse{ID: ticket.ID, Status: StatusNotified}, nil
}

func (s *Service) notificationBody(t *Ticket) string {
	phone := t.Phone
	if phone == "" {
		phone = "not provided"
	}
	return fmt.Sprintf(
		"Name: %s %s\nEmail: %s\nCompany: %s\nPhone: %s\nSource: %s\n\n%s\n",
		t.FirstName, t.LastName, t.Email, t.Company, phone, t.Source, t.Message,
	)
}
