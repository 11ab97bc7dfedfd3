package queries

import (
	"context"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*InventoryCounterView, error)
	ListAll(ctx context.Context) ([]*InventoryCounterView, error)
}

type InventoryReadStore interface {
	FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*InventoryCounterView, error)
	FindAll(ctx context.Context) ([]*InventoryCounterView, error)
}

type inventoryQueriesImpl struct {
	readStore InventoryReadStore
}

func NewInventoryQueries(readStore InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{readStore: readStore}
}

func (q *inventoryQueriesImpl) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*InventoryCounterView, error) {
	return q.readStore.FindByHospital(ctx, hospitalID)
}

func (q *inventoryQueriesImpl) ListAll(ctx context.Context) ([]*InventoryCounterView, error) {
	return q.readStore.FindAll(ctx)
}
