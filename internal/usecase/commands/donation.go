package commands

import (
	"context"
	"errors"
	"log/slog"

	"donorhub/internal/domain/donation"
	"donorhub/internal/domain/inventory"
	"donorhub/internal/domain/registration"
	"donorhub/internal/infra"
	"donorhub/internal/infra/lock"
	"donorhub/internal/pkg/clock"
	"donorhub/internal/pkg/config"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/usecase/notify"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDonationNotFound      = errs.New("donation not found")
	ErrUsageConflict         = errs.New("donation usage conflicts with another session")
	ErrInsufficientInventory = errs.New("insufficient inventory for blood type")
)

type MarkUsedResult struct {
	HospitalID   uuid.UUID
	HospitalName string
	Tier         ResolutionTier
}

type DonationCommands interface {
	MarkUsed(ctx context.Context, donationID uuid.UUID, actor uuid.UUID) (*MarkUsedResult, error)
}

type donationUseCaseImpl struct {
	uow         shared.UnitOfWork
	locker      lock.Locker
	dispatcher  notify.Dispatcher
	clock       clock.Clock
	unitsPerUse int32
}

func NewDonationUseCase(uow shared.UnitOfWork, locker lock.Locker, dispatcher notify.Dispatcher, clk clock.Clock, cfg config.InventoryConfig) DonationCommands {
	return &donationUseCaseImpl{
		uow:         uow,
		locker:      locker,
		dispatcher:  dispatcher,
		clock:       clk,
		unitsPerUse: cfg.UnitsPerUse,
	}
}

// MarkUsed consumes a stored donation: the donation row, the registration
// flag and the hospital's inventory counter all change in one transaction,
// or none of them do.
func (uc *donationUseCaseImpl) MarkUsed(ctx context.Context, donationID uuid.UUID, actor uuid.UUID) (*MarkUsedResult, error) {
	now := uc.clock.Now()

	dn, err := uc.uow.CommandReads().DonationByID(ctx, donationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDonationNotFound)
		}
		return nil, err
	}

	var (
		resolution *HospitalResolution
		donorID    *uuid.UUID
	)
	err = uc.locker.WithRegistrationLock(ctx, dn.RegistrationID, func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			snap, rerr := tx.Reads().DonationByID(ctx, donationID)
			if rerr != nil {
				return rerr
			}
			donorID = snap.DonorID

			donationEntity := snap.ToDomain()
			if derr := donationEntity.CanBeUsed(now); derr != nil {
				if errors.Is(derr, donation.ErrAlreadyUsed) {
					return errs.Mark(derr, ErrUsageConflict)
				}
				return errs.Mark(derr, ErrDomainValidation)
			}

			regSnap, rerr := tx.Reads().RegistrationByID(ctx, snap.RegistrationID)
			if rerr != nil {
				return rerr
			}
			reg, derr := regSnap.ToDomain()
			if derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
			if derr = reg.MarkBloodUsed(actor, now); derr != nil {
				if errors.Is(derr, registration.ErrBloodAlreadyUsed) {
					return errs.Mark(derr, ErrUsageConflict)
				}
				return errs.Mark(derr, ErrDomainValidation)
			}

			resolution, rerr = resolveHospital(ctx, tx.Reads(), regSnap)
			if rerr != nil {
				return rerr
			}
			if resolution.Inferred() {
				slog.Info("hospital inferred for donation usage",
					"donation_id", donationID.String(),
					"hospital_id", resolution.Hospital.ID.String(),
					"tier", string(resolution.Tier))
			}

			counter, rerr := uc.loadCounter(ctx, tx.Reads(), resolution.Hospital.ID, snap.BloodType)
			if rerr != nil {
				return rerr
			}
			if derr = counter.ValidateDecrement(uc.unitsPerUse); derr != nil {
				if errors.Is(derr, inventory.ErrInsufficientUnits) {
					return errs.Mark(derr, ErrInsufficientInventory)
				}
				return derr
			}

			if rerr = tx.Donations().MarkUsed(ctx, donationID, resolution.Hospital.ID, actor, now); rerr != nil {
				return rerr
			}
			if rerr = tx.Inventory().DecrementUnits(ctx, counter.ID(), uc.unitsPerUse, counter.Version()); rerr != nil {
				return rerr
			}
			return tx.Registrations().MarkBloodUsed(ctx, snap.RegistrationID, actor, now)
		})
	})
	if err != nil {
		return nil, mapDonationWriteErr(err)
	}

	uc.dispatcher.NotifyDonor(ctx, donorID, notify.Notification{
		Type:    notify.TypeDonationUsed,
		Title:   "Your donation was used",
		Message: "Your blood donation has been delivered to " + resolution.Hospital.Name + ".",
		Payload: map[string]any{
			"donation_id":   donationID.String(),
			"hospital_id":   resolution.Hospital.ID.String(),
			"hospital_name": resolution.Hospital.Name,
		},
	})

	return &MarkUsedResult{
		HospitalID:   resolution.Hospital.ID,
		HospitalName: resolution.Hospital.Name,
		Tier:         resolution.Tier,
	}, nil
}

// loadCounter synthesizes a zero counter when the hospital has no row for
// this blood type, so the decrement validation fails the same way an empty
// persisted counter would.
func (uc *donationUseCaseImpl) loadCounter(ctx context.Context, reads shared.CommandReads, hospitalID uuid.UUID, bloodType string) (*inventory.Counter, error) {
	snap, err := reads.CounterByHospitalAndType(ctx, hospitalID, bloodType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return inventory.SynthesizeEmpty(hospitalID, donation.BloodType(bloodType)), nil
		}
		return nil, err
	}
	return snap.ToDomain(), nil
}

func mapDonationWriteErr(err error) error {
	switch {
	case errors.Is(err, lock.ErrLockNotAcquired):
		return errs.Mark(err, ErrUsageConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrDonationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrUsageConflict)
	default:
		return err
	}
}
