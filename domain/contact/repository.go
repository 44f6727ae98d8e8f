package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Repository handles database operations for contact tickets
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new contact ticket repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("contact.repo")),
	}
}

// Insert stores a new contact ticket and returns it with its ID set
func (r *Repository) Insert(ctx context.Context, ticket *Ticket) (*Ticket, error) {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	if ticket.Status == "" {
		ticket.Status = StatusNew
	}
	ticket.CreatedAt = time.Now().UTC()

	if _, err := r.db.NewInsert().Model(ticket).Exec(ctx); err != nil {
		r.log.Error("failed to insert contact ticket", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return ticket, nil
}

// MarkNotified updates a ticket's status after the sales notification
// has been delivered.
func (r *Repository) MarkNotified(ctx context.Context, id string) error {
	_, err := r.db.NewUpdate().
		Model((*Ticket)(nil)).
		Set("status = ?", StatusNotified).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		r.log.Error("failed to mark ticket notified", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	return nil
}
