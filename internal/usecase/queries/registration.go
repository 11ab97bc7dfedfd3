package queries

import (
	"context"
	"time"

	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRegistrationNotFound = errs.New("registration not found")
	ErrInvalidCursor        = errs.New("invalid cursor")
)

type RegistrationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, status *string, after *Cursor, limit int) ([]*RegistrationListItem, *Cursor, error)
}

type RegistrationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error)
	FindByEventFirstPage(ctx context.Context, eventID uuid.UUID, status *string, limit int32) ([]*RegistrationListItem, error)
	FindByEventKeyset(ctx context.Context, eventID uuid.UUID, status *string, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*RegistrationListItem, error)
}

type registrationQueriesImpl struct {
	readStore RegistrationReadStore
}

func NewRegistrationQueries(readStore RegistrationReadStore) RegistrationQueries {
	return &registrationQueriesImpl{readStore: readStore}
}

func (q *registrationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *registrationQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID, status *string, after *Cursor, limit int) ([]*RegistrationListItem, *Cursor, error) {
	pageSize := normalizeLimit(limit)

	var (
		items []*RegistrationListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.FindByEventFirstPage(ctx, eventID, status, pageSize)
	} else {
		afterCreatedAt, afterID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindByEventKeyset(ctx, eventID, status, afterCreatedAt, afterID, pageSize)
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
