// Package notify dispatches human-readable notifications to the users of a
// company. Delivery is best-effort: failures are logged and never surfaced
// to the caller, so a failed notification can never roll back a committed
// state transition.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Notification is one message delivered to one user.
type Notification struct {
	Title   string
	Message string
	Link    string
}

// Sink delivers a notification to a single user. Implemented by the
// external delivery collaborator; a slog-backed sink is provided for
// development.
type Sink interface {
	Notify(ctx context.Context, userID uuid.UUID, n Notification) error
}

// Directory resolves the member users of a company.
type Directory interface {
	MemberIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error)
}

type Dispatcher struct {
	sink Sink
	dir  Directory
}

func NewDispatcher(sink Sink, dir Directory) *Dispatcher {
	return &Dispatcher{sink: sink, dir: dir}
}

// NotifyCompany fans the notification out to every user of the company.
// Errors are logged, not returned.
func (d *Dispatcher) NotifyCompany(ctx context.Context, companyID uuid.UUID, n Notification) {
	userIDs, err := d.dir.MemberIDs(ctx, companyID)
	if err != nil {
		slog.Warn("failed to resolve notification recipients", "company_id", companyID, "error", err)
		return
	}

	for _, userID := range userIDs {
		if err := d.sink.Notify(ctx, userID, n); err != nil {
			slog.Warn("failed to deliver notification", "user_id", userID, "title", n.Title, "error", err)
		}
	}
}

// SlogSink logs notifications instead of delivering them.
type SlogSink struct{}

func (SlogSink) Notify(_ context.Context, userID uuid.UUID, n Notification) error {
	slog.Info("notification", "user_id", userID, "title", n.Title, "message", n.Message, "link", n.Link)
	return nil
}
