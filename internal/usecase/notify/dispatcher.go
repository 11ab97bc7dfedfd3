package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"donorhub/internal/infra"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TypeStatusChange       = "status_change"
	TypeDonationUsed       = "donation_used"
	TypeEligibilityDecided = "eligibility_decided"
)

type Notification struct {
	Type    string
	Title   string
	Message string
	Payload any
}

// Dispatcher delivers in-app notifications to a donor's feed. Delivery is
// best-effort and at-most-once: a failure is logged and swallowed, never
// surfaced to the caller, and never retried.
type Dispatcher interface {
	NotifyDonor(ctx context.Context, donorID *uuid.UUID, n Notification)
}

type feedDispatcher struct {
	uow shared.UnitOfWork
}

func NewFeedDispatcher(uow shared.UnitOfWork) Dispatcher {
	return &feedDispatcher{uow: uow}
}

// NotifyDonor is a no-op for walk-in registrations (nil donorID) and for
// donor IDs that no longer resolve to a profile.
func (d *feedDispatcher) NotifyDonor(ctx context.Context, donorID *uuid.UUID, n Notification) {
	if donorID == nil {
		return
	}

	if _, err := d.uow.CommandReads().DonorByID(ctx, *donorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Debug("skipping notification for unknown donor", "donor_id", donorID.String(), "type", n.Type)
			return
		}
		slog.Warn("failed to resolve donor for notification", "donor_id", donorID.String(), "type", n.Type, "error", err.Error())
		return
	}

	payload := []byte("{}")
	if n.Payload != nil {
		if b, err := json.Marshal(n.Payload); err == nil {
			payload = b
		} else {
			slog.Warn("failed to encode notification payload", "type", n.Type, "error", err.Error())
		}
	}

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Notifications().Create(ctx, shared.NewNotification{
			DonorID: *donorID,
			Type:    n.Type,
			Title:   n.Title,
			Message: n.Message,
			Payload: payload,
		})
		return createErr
	})
	if err != nil {
		slog.Warn("failed to deliver notification", "donor_id", donorID.String(), "type", n.Type, "error", err.Error())
	}
}
