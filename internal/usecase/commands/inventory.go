package commands

import (
	"context"
	"log/slog"

	"donorhub/internal/domain/donation"
	"donorhub/internal/domain/inventory"
	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHospitalNotFound = errs.New("hospital not found")

type RestockInventoryRequest struct {
	BloodType     string
	Units         int32
	MinimumStock  int32
	CriticalStock int32
}

type RestockResult struct {
	CounterID uuid.UUID
	BloodType string
}

type InventoryCommands interface {
	Restock(ctx context.Context, hospitalID uuid.UUID, req RestockInventoryRequest, actor uuid.UUID) (*RestockResult, error)
}

type inventoryUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryUseCase(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow}
}

// Restock sets a hospital's counter for one blood type to an absolute level,
// creating the counter row when the hospital never stocked that type before.
func (uc *inventoryUseCaseImpl) Restock(ctx context.Context, hospitalID uuid.UUID, req RestockInventoryRequest, actor uuid.UUID) (*RestockResult, error) {
	bloodType := donation.NormalizeBloodType(req.BloodType)
	if !bloodType.IsKnown() {
		return nil, errs.Mark(donation.ErrUnknownBloodType, ErrDomainValidation)
	}
	if derr := inventory.ValidateStockLevels(req.Units, req.MinimumStock, req.CriticalStock); derr != nil {
		return nil, errs.Mark(derr, ErrDomainValidation)
	}

	var counterID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().HospitalByID(ctx, hospitalID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return errs.Mark(rerr, ErrHospitalNotFound)
			}
			return rerr
		}

		id, rerr := tx.Inventory().Upsert(ctx, hospitalID, string(bloodType),
			req.Units, req.MinimumStock, req.CriticalStock)
		if rerr != nil {
			return rerr
		}
		counterID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("inventory restocked",
		"hospital_id", hospitalID.String(),
		"blood_type", string(bloodType),
		"units", req.Units,
		"actor", actor.String())

	return &RestockResult{CounterID: counterID, BloodType: string(bloodType)}, nil
}
