package registration

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid registration status")
	ErrNotAwaitingReview  = errors.New("registration is not awaiting staff review")
	ErrNotApproved        = errors.New("registration is not approved")
	ErrNotCheckedIn       = errors.New("registration is not checked in")
	ErrAlreadyCompleted   = errors.New("registration is already completed")
	ErrTerminalState      = errors.New("registration is in a terminal state")
	ErrDonorRequired      = errors.New("registration requires a donor or walk-in identity")
	ErrBloodAlreadyUsed   = errors.New("registration blood is already marked as used")
	ErrNotCompleted       = errors.New("registration is not completed")
)

// Registration is a donor's claim on an event time slot. It is never
// hard-deleted; staff actions only move it through the status machine.
type Registration struct {
	id            uuid.UUID
	eventID       uuid.UUID
	donorID       *uuid.UUID
	walkIn        *WalkIn
	slot          TimeSlot
	status        Status
	rejectReason  Reason
	specialNotes  Notes
	bloodUsed     bool
	checkedInAt   *time.Time
	lastUpdatedBy *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRegistration(eventID uuid.UUID, donorID *uuid.UUID, walkIn *WalkIn, slot TimeSlot, notes Notes, now time.Time) (*Registration, error) {
	if donorID == nil && walkIn == nil {
		return nil, ErrDonorRequired
	}

	status := StatusPending
	if donorID != nil && walkIn == nil {
		// Self-registered donors start in Registered until staff triage.
		status = StatusRegistered
	}

	return &Registration{
		id:           uuid.New(),
		eventID:      eventID,
		donorID:      donorID,
		walkIn:       walkIn,
		slot:         slot,
		status:       status,
		specialNotes: notes,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRegistration(
	id, eventID uuid.UUID,
	donorID *uuid.UUID,
	walkIn *WalkIn,
	slot TimeSlot,
	status Status,
	rejectReason Reason,
	specialNotes Notes,
	bloodUsed bool,
	checkedInAt *time.Time,
	lastUpdatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Registration {
	return &Registration{
		id:            id,
		eventID:       eventID,
		donorID:       donorID,
		walkIn:        walkIn,
		slot:          slot,
		status:        status,
		rejectReason:  rejectReason,
		specialNotes:  specialNotes,
		bloodUsed:     bloodUsed,
		checkedInAt:   checkedInAt,
		lastUpdatedBy: lastUpdatedBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Approve moves a registration awaiting staff review to Approved.
func (r *Registration) Approve(actor uuid.UUID, now time.Time) error {
	if !r.status.awaitingStaffDecision() {
		return r.decisionError()
	}
	r.transition(StatusApproved, actor, now)
	return nil
}

// Reject terminates a registration awaiting review or already approved.
// The reason is optional free text.
func (r *Registration) Reject(reason Reason, actor uuid.UUID, now time.Time) error {
	if !r.status.awaitingStaffDecision() && r.status != StatusApproved {
		return r.decisionError()
	}
	r.rejectReason = reason
	r.transition(StatusRejected, actor, now)
	return nil
}

// Cancel terminates a registration awaiting review or already approved.
func (r *Registration) Cancel(actor uuid.UUID, now time.Time) error {
	if !r.status.awaitingStaffDecision() && r.status != StatusApproved {
		return r.decisionError()
	}
	r.transition(StatusCancelled, actor, now)
	return nil
}

// CheckIn stamps the arrival time for an approved registration.
func (r *Registration) CheckIn(actor uuid.UUID, now time.Time) error {
	if r.status != StatusApproved {
		if r.status.IsTerminal() {
			return ErrTerminalState
		}
		return ErrNotApproved
	}
	t := now
	r.checkedInAt = &t
	r.transition(StatusCheckedIn, actor, now)
	return nil
}

// Complete closes the happy path. The caller is responsible for creating the
// donation record in the same transaction as the status write.
func (r *Registration) Complete(actor uuid.UUID, now time.Time) error {
	if r.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if r.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	r.transition(StatusCompleted, actor, now)
	return nil
}

// MarkBloodUsed records that this registration's donation has been consumed.
func (r *Registration) MarkBloodUsed(actor uuid.UUID, now time.Time) error {
	if r.status != StatusCompleted {
		return ErrNotCompleted
	}
	if r.bloodUsed {
		return ErrBloodAlreadyUsed
	}
	r.bloodUsed = true
	r.lastUpdatedBy = &actor
	r.updatedAt = now
	return nil
}

func (r *Registration) transition(to Status, actor uuid.UUID, now time.Time) {
	r.status = to
	r.lastUpdatedBy = &actor
	r.updatedAt = now
}

func (r *Registration) decisionError() error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	return ErrNotAwaitingReview
}

func (r *Registration) IsWalkIn() bool {
	return r.donorID == nil
}

func (r *Registration) ID() uuid.UUID            { return r.id }
func (r *Registration) EventID() uuid.UUID       { return r.eventID }
func (r *Registration) DonorID() *uuid.UUID      { return r.donorID }
func (r *Registration) WalkIn() *WalkIn          { return r.walkIn }
func (r *Registration) Slot() TimeSlot           { return r.slot }
func (r *Registration) Status() Status           { return r.status }
func (r *Registration) RejectReason() Reason     { return r.rejectReason }
func (r *Registration) SpecialNotes() Notes      { return r.specialNotes }
func (r *Registration) BloodUsed() bool          { return r.bloodUsed }
func (r *Registration) CheckedInAt() *time.Time  { return r.checkedInAt }
func (r *Registration) LastUpdatedBy() *uuid.UUID { return r.lastUpdatedBy }
func (r *Registration) CreatedAt() time.Time     { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time     { return r.updatedAt }
