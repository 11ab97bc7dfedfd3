package readstore

import (
	"context"
	"time"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const findNotificationsByDonorFirstPageQuery = `
SELECT id, donor_id, type, title, message, payload, read_at, created_at
FROM notifications
WHERE donor_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

const findNotificationsByDonorKeysetQuery = `
SELECT id, donor_id, type, title, message, payload, read_at, created_at
FROM notifications
WHERE donor_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (s *NotificationReadStore) FindByDonorFirstPage(ctx context.Context, donorID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, findNotificationsByDonorFirstPageQuery,
		pgconv.UUIDToPgtype(donorID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications first page", err)
	}
	return scanNotificationViews(rows)
}

func (s *NotificationReadStore) FindByDonorKeyset(ctx context.Context, donorID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, findNotificationsByDonorKeysetQuery,
		pgconv.UUIDToPgtype(donorID),
		pgconv.TimeToPgtype(afterCreatedAt),
		pgconv.UUIDToPgtype(afterID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications keyset page", err)
	}
	return scanNotificationViews(rows)
}

func scanNotificationViews(rows pgx.Rows) ([]*queries.NotificationView, error) {
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var (
			view      queries.NotificationView
			readAt    pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.DonorID, &view.Type, &view.Title, &view.Message,
			&view.Payload, &readAt, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}

		view.ReadAt = pgconv.TimePtrFromPgtype(readAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}

	return result, nil
}
