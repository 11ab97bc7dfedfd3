package repository

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

const createNotificationQuery = `
INSERT INTO notifications (donor_id, type, title, message, payload)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *NotificationRepository) Create(ctx context.Context, n shared.NewNotification) (uuid.UUID, error) {
	payload := n.Payload
	if payload == nil {
		payload = []byte("{}")
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createNotificationQuery,
		pgconv.UUIDToPgtype(n.DonorID),
		n.Type,
		n.Title,
		n.Message,
		payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}

	return id, nil
}

const markNotificationReadQuery = `
UPDATE notifications
SET read_at = NOW()
WHERE id = $1
  AND donor_id = $2
  AND read_at IS NULL`

func (r *NotificationRepository) MarkRead(ctx context.Context, id, donorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, markNotificationReadQuery,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDToPgtype(donorID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found or already read", nil, infra.KindNotFound)
	}

	return nil
}
