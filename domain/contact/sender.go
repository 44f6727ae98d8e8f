package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// SendOptions describes one outgoing notification email
type SendOptions struct {
	To      string
	ToName  string
	Subject string
	Text    string
}

// SendResult reports the outcome of a send attempt
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// Sender delivers ticket notifications to the sales inbox
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

// NewSender creates the appropriate sender based on configuration.
// Uses Mailgun when configured, otherwise falls back to a no-op sender.
func NewSender(cfg *config.Config, log *slog.Logger) Sender {
	if cfg.Email.Enabled && cfg.Email.IsConfigured() {
		log.Info("using Mailgun sender",
			slog.String("domain", cfg.Email.MailgunDomain),
			slog.String("from", cfg.Email.FromEmail))
		return newMailgunSender(cfg, log)
	}

	log.Info("using no-op notification sender (Mailgun not configured or email disabled)")
	return &noOpSender{log: log}
}

// mailgunSender sends notifications via the Mailgun API
type mailgunSender struct {
	cfg    *config.Config
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

func newMailgunSender(cfg *config.Config, log *slog.Logger) *mailgunSender {
	return &mailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: mailgun.NewMailgun(cfg.Email.MailgunDomain, cfg.Email.MailgunAPIKey),
	}
}

func (s *mailgunSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	to := opts.To
	if opts.ToName != "" {
		to = fmt.Sprintf("%s <%s>", opts.ToName, opts.To)
	}
	from := fmt.Sprintf("%s <%s>", s.cfg.Email.FromName, s.cfg.Email.FromEmail)

	message := s.client.NewMessage(from, opts.Subject, opts.Text, to)

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send notification",
			slog.String("to", opts.To),
			logger.Error(err))
		return &SendResult{Success: false, Error: err.Error()}, nil
	}

	s.log.Info("notification sent",
		slog.String("to", opts.To),
		slog.String("message_id", messageID))

	return &SendResult{Success: true, MessageID: messageID}, nil
}

// noOpSender logs instead of sending, for development and tests
type noOpSender struct {
	log *slog.Logger
}

func (s *noOpSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Info("notification send (no-op)",
		slog.String("to", opts.To),
		slog.String("subject", opts.Subject))

	return &SendResult{Success: true, MessageID: "noop-" + opts.To}, nil
}
