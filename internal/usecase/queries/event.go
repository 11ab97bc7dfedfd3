package queries

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

// Reference data for the dashboard: events, hospitals, donor profiles.
type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context) ([]*EventView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindAll(ctx context.Context) ([]*EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{readStore: readStore}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) List(ctx context.Context) ([]*EventView, error) {
	return q.readStore.FindAll(ctx)
}
