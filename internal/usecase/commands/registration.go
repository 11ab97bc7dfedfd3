package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donorhub/internal/domain/donation"
	"donorhub/internal/domain/registration"
	"donorhub/internal/infra"
	"donorhub/internal/infra/lock"
	"donorhub/internal/pkg/clock"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/usecase/notify"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRegistrationNotFound = errs.New("registration not found")
	ErrEventNotFound        = errs.New("event not found")
	ErrStatusConflict       = errs.New("registration was modified by another session")
	ErrDonationExists       = errs.New("donation already recorded for registration")
	ErrDomainValidation     = errs.New("domain validation error")
)

type CreateRegistrationRequest struct {
	EventID      uuid.UUID
	DonorID      *uuid.UUID
	WalkInName   string
	WalkInPhone  string
	SlotStart    time.Time
	SlotEnd      time.Time
	SpecialNotes string
}

type CompleteRegistrationRequest struct {
	SerialNumber string
	VolumeML     int32
	BloodType    string
	ExpiryDate   *time.Time
}

type CompleteRegistrationResult struct {
	DonationID uuid.UUID
}

type RegistrationCommands interface {
	Create(ctx context.Context, req CreateRegistrationRequest, actor uuid.UUID) (uuid.UUID, error)
	Approve(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reason string, actor uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
	CheckIn(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, req CompleteRegistrationRequest, actor uuid.UUID) (*CompleteRegistrationResult, error)
}

type registrationUseCaseImpl struct {
	uow        shared.UnitOfWork
	locker     lock.Locker
	dispatcher notify.Dispatcher
	clock      clock.Clock
}

func NewRegistrationUseCase(uow shared.UnitOfWork, locker lock.Locker, dispatcher notify.Dispatcher, clk clock.Clock) RegistrationCommands {
	return &registrationUseCaseImpl{
		uow:        uow,
		locker:     locker,
		dispatcher: dispatcher,
		clock:      clk,
	}
}

func (uc *registrationUseCaseImpl) Create(ctx context.Context, req CreateRegistrationRequest, actor uuid.UUID) (uuid.UUID, error) {
	slot, err := registration.NewTimeSlot(req.SlotStart, req.SlotEnd)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var walkIn *registration.WalkIn
	if req.WalkInName != "" {
		w, werr := registration.NewWalkIn(req.WalkInName, req.WalkInPhone)
		if werr != nil {
			return uuid.Nil, errs.Mark(werr, ErrDomainValidation)
		}
		walkIn = &w
	}

	reg, err := registration.NewRegistration(req.EventID, req.DonorID, walkIn, slot,
		registration.NewNotes(req.SpecialNotes), uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().EventByID(ctx, req.EventID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return rerr
		}

		id, rerr := tx.Registrations().Create(ctx, reg)
		if rerr != nil {
			return rerr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return createdID, nil
}

func (uc *registrationUseCaseImpl) Approve(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	now := uc.clock.Now()

	snap, err := uc.applyTransition(ctx, id, now,
		func(reg *registration.Registration) error { return reg.Approve(actor, now) },
		shared.RegistrationTransition{
			ID:    id,
			From:  []registration.Status{registration.StatusRegistered, registration.StatusPending},
			To:    registration.StatusApproved,
			Actor: actor,
			Now:   now,
		})
	if err != nil {
		return err
	}

	uc.dispatcher.NotifyDonor(ctx, snap.DonorID, notify.Notification{
		Type:    notify.TypeStatusChange,
		Title:   "Registration approved",
		Message: fmt.Sprintf("Your donation slot %s has been approved.", slotLabel(snap)),
		Payload: statusChangePayload(snap, registration.StatusApproved),
	})
	return nil
}

func (uc *registrationUseCaseImpl) Reject(ctx context.Context, id uuid.UUID, reason string, actor uuid.UUID) error {
	now := uc.clock.Now()

	rejectReason, err := registration.NewReason(reason)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	var reasonPtr *string
	if !rejectReason.IsEmpty() {
		v := rejectReason.String()
		reasonPtr = &v
	}

	snap, err := uc.applyTransition(ctx, id, now,
		func(reg *registration.Registration) error { return reg.Reject(rejectReason, actor, now) },
		shared.RegistrationTransition{
			ID:     id,
			From:   []registration.Status{registration.StatusRegistered, registration.StatusPending, registration.StatusApproved},
			To:     registration.StatusRejected,
			Reason: reasonPtr,
			Actor:  actor,
			Now:    now,
		})
	if err != nil {
		return err
	}

	message := "Unfortunately your registration could not be accepted."
	payload := statusChangePayload(snap, registration.StatusRejected)
	if reasonPtr != nil {
		message = fmt.Sprintf("Unfortunately your registration could not be accepted: %s", *reasonPtr)
		payload["reason"] = *reasonPtr
	}
	uc.dispatcher.NotifyDonor(ctx, snap.DonorID, notify.Notification{
		Type:    notify.TypeStatusChange,
		Title:   "Registration rejected",
		Message: message,
		Payload: payload,
	})
	return nil
}

func (uc *registrationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	now := uc.clock.Now()

	snap, err := uc.applyTransition(ctx, id, now,
		func(reg *registration.Registration) error { return reg.Cancel(actor, now) },
		shared.RegistrationTransition{
			ID:    id,
			From:  []registration.Status{registration.StatusRegistered, registration.StatusPending, registration.StatusApproved},
			To:    registration.StatusCancelled,
			Actor: actor,
			Now:   now,
		})
	if err != nil {
		return err
	}

	uc.dispatcher.NotifyDonor(ctx, snap.DonorID, notify.Notification{
		Type:    notify.TypeStatusChange,
		Title:   "Registration cancelled",
		Message: fmt.Sprintf("Your registration for slot %s was cancelled.", slotLabel(snap)),
		Payload: statusChangePayload(snap, registration.StatusCancelled),
	})
	return nil
}

func (uc *registrationUseCaseImpl) CheckIn(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	now := uc.clock.Now()

	snap, err := uc.applyTransition(ctx, id, now,
		func(reg *registration.Registration) error { return reg.CheckIn(actor, now) },
		shared.RegistrationTransition{
			ID:          id,
			From:        []registration.Status{registration.StatusApproved},
			To:          registration.StatusCheckedIn,
			CheckedInAt: &now,
			Actor:       actor,
			Now:         now,
		})
	if err != nil {
		return err
	}

	uc.dispatcher.NotifyDonor(ctx, snap.DonorID, notify.Notification{
		Type:    notify.TypeStatusChange,
		Title:   "Checked in",
		Message: fmt.Sprintf("You are checked in for slot %s. A staff member will guide you shortly.", slotLabel(snap)),
		Payload: statusChangePayload(snap, registration.StatusCheckedIn),
	})
	return nil
}

// Complete records the collected blood and closes the registration in one
// transaction. The registration lock keeps two staff sessions from both
// passing the entity check before either writes.
func (uc *registrationUseCaseImpl) Complete(ctx context.Context, id uuid.UUID, req CompleteRegistrationRequest, actor uuid.UUID) (*CompleteRegistrationResult, error) {
	now := uc.clock.Now()

	var (
		donationID uuid.UUID
		snap       *shared.RegistrationSnapshot
		volume     int32
	)
	err := uc.locker.WithRegistrationLock(ctx, id, func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, rerr := tx.Reads().RegistrationByID(ctx, id)
			if rerr != nil {
				return rerr
			}
			snap = s

			reg, derr := s.ToDomain()
			if derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
			if derr = reg.Complete(actor, now); derr != nil {
				if errors.Is(derr, registration.ErrAlreadyCompleted) {
					return errs.Mark(derr, ErrDonationExists)
				}
				return errs.Mark(derr, ErrDomainValidation)
			}

			bloodType, derr := uc.resolveBloodType(ctx, tx.Reads(), req.BloodType, s.DonorID)
			if derr != nil {
				return derr
			}

			d, derr := donation.NewDonation(id, s.DonorID, bloodType, req.VolumeML,
				req.SerialNumber, req.ExpiryDate, actor, now)
			if derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
			volume = d.VolumeML()

			createdID, rerr := tx.Donations().Create(ctx, d)
			if rerr != nil {
				if infra.IsKind(rerr, infra.KindDuplicateKey) {
					return errs.Mark(rerr, ErrDonationExists)
				}
				return rerr
			}
			donationID = createdID

			return tx.Registrations().Transition(ctx, shared.RegistrationTransition{
				ID:    id,
				From:  []registration.Status{registration.StatusCheckedIn},
				To:    registration.StatusCompleted,
				Actor: actor,
				Now:   now,
			})
		})
	})
	if err != nil {
		return nil, mapRegistrationWriteErr(err)
	}

	uc.dispatcher.NotifyDonor(ctx, snap.DonorID, notify.Notification{
		Type:    notify.TypeStatusChange,
		Title:   "Thank you for donating",
		Message: "Your donation has been recorded. You may have saved a life today.",
		Payload: map[string]any{
			"registration_id": snap.ID.String(),
			"event_id":        snap.EventID.String(),
			"donation_id":     donationID.String(),
			"volume_ml":       volume,
			"old_status":      snap.Status,
			"new_status":      string(registration.StatusCompleted),
		},
	})

	return &CompleteRegistrationResult{DonationID: donationID}, nil
}

// resolveBloodType prefers the explicit value from the completion form and
// falls back to the donor's profile. Walk-ins without a stated type are
// stored as Unknown, which blocks usage until corrected.
func (uc *registrationUseCaseImpl) resolveBloodType(ctx context.Context, reads shared.CommandReads, explicit string, donorID *uuid.UUID) (donation.BloodType, error) {
	if explicit != "" {
		return donation.NormalizeBloodType(explicit), nil
	}
	if donorID == nil {
		return donation.BloodUnknown, nil
	}

	donor, err := reads.DonorByID(ctx, *donorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return donation.BloodUnknown, nil
		}
		return donation.BloodUnknown, err
	}
	return donation.NormalizeBloodType(donor.BloodType), nil
}

func (uc *registrationUseCaseImpl) applyTransition(
	ctx context.Context,
	id uuid.UUID,
	now time.Time,
	apply func(reg *registration.Registration) error,
	transition shared.RegistrationTransition,
) (*shared.RegistrationSnapshot, error) {
	var snap *shared.RegistrationSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, rerr := tx.Reads().RegistrationByID(ctx, id)
		if rerr != nil {
			return rerr
		}
		snap = s

		reg, derr := s.ToDomain()
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr = apply(reg); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		return tx.Registrations().Transition(ctx, transition)
	})
	if err != nil {
		return nil, mapRegistrationWriteErr(err)
	}

	return snap, nil
}

func mapRegistrationWriteErr(err error) error {
	switch {
	case errors.Is(err, lock.ErrLockNotAcquired):
		return errs.Mark(err, ErrStatusConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrRegistrationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrStatusConflict)
	default:
		return err
	}
}

func slotLabel(snap *shared.RegistrationSnapshot) string {
	return fmt.Sprintf("%s - %s", snap.SlotStart.Format("15:04"), snap.SlotEnd.Format("15:04"))
}

func statusChangePayload(snap *shared.RegistrationSnapshot, newStatus registration.Status) map[string]any {
	return map[string]any{
		"registration_id": snap.ID.String(),
		"event_id":        snap.EventID.String(),
		"old_status":      snap.Status,
		"new_status":      string(newStatus),
	}
}
