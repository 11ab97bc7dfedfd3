package queries

import (
	"context"
	"time"

	"donorhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListByDonor(ctx context.Context, donorID uuid.UUID, after *Cursor, limit int) ([]*NotificationView, *Cursor, error)
}

type NotificationReadStore interface {
	FindByDonorFirstPage(ctx context.Context, donorID uuid.UUID, limit int32) ([]*NotificationView, error)
	FindByDonorKeyset(ctx context.Context, donorID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListByDonor(ctx context.Context, donorID uuid.UUID, after *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	pageSize := normalizeLimit(limit)

	var (
		items []*NotificationView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.FindByDonorFirstPage(ctx, donorID, pageSize)
	} else {
		afterCreatedAt, afterID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindByDonorKeyset(ctx, donorID, afterCreatedAt, afterID, pageSize)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == int(pageSize) {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return items, next, nil
}
