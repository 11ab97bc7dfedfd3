package queries

import (
	"context"
	"time"

	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEligibilityNotFound = errs.New("eligibility request not found")

type EligibilityQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EligibilityView, error)
	ListPending(ctx context.Context, after *Cursor, limit int) ([]*EligibilityView, *Cursor, error)
}

type EligibilityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EligibilityView, error)
	FindPendingFirstPage(ctx context.Context, limit int32) ([]*EligibilityView, error)
	FindPendingKeyset(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*EligibilityView, error)
}

type eligibilityQueriesImpl struct {
	readStore EligibilityReadStore
}

func NewEligibilityQueries(readStore EligibilityReadStore) EligibilityQueries {
	return &eligibilityQueriesImpl{readStore: readStore}
}

func (q *eligibilityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EligibilityView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEligibilityNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eligibilityQueriesImpl) ListPending(ctx context.Context, after *Cursor, limit int) ([]*EligibilityView, *Cursor, error) {
	pageSize := normalizeLimit(limit)

	var (
		items []*EligibilityView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.FindPendingFirstPage(ctx, pageSize)
	} else {
		afterCreatedAt, afterID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindPendingKeyset(ctx, afterCreatedAt, afterID, pageSize)
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
