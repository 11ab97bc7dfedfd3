package queries

import (
	"context"
)

type HospitalQueries interface {
	List(ctx context.Context) ([]*HospitalView, error)
}

type HospitalReadStore interface {
	FindAll(ctx context.Context) ([]*HospitalView, error)
}

type hospitalQueriesImpl struct {
	readStore HospitalReadStore
}

func NewHospitalQueries(readStore HospitalReadStore) HospitalQueries {
	return &hospitalQueriesImpl{readStore: readStore}
}

func (q *hospitalQueriesImpl) List(ctx context.Context) ([]*HospitalView, error) {
	return q.readStore.FindAll(ctx)
}
