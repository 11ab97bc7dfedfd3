package queries

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDonationNotFound = errs.New("donation not found")

type DonationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	GetByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*DonationView, error)
}

type DonationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	FindByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*DonationView, error)
}

type donationQueriesImpl struct {
	readStore DonationReadStore
}

func NewDonationQueries(readStore DonationReadStore) DonationQueries {
	return &donationQueriesImpl{readStore: readStore}
}

func (q *donationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DonationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *donationQueriesImpl) GetByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*DonationView, error) {
	view, err := q.readStore.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return view, nil
}
