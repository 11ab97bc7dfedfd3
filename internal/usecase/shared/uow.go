package shared

import (
	"context"
	"encoding/json"
	"time"

	"donorhub/internal/domain/donation"
	"donorhub/internal/domain/eligibility"
	"donorhub/internal/domain/inventory"
	"donorhub/internal/domain/registration"
	infradb "donorhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infradb.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Registrations() RegistrationRepository
	Donations() DonationRepository
	Inventory() InventoryRepository
	Eligibility() EligibilityRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() infradb.DBTX
}

type CommandReads interface {
	RegistrationByID(ctx context.Context, id uuid.UUID) (*RegistrationSnapshot, error)
	DonationByID(ctx context.Context, id uuid.UUID) (*DonationSnapshot, error)
	DonationByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*DonationSnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	HospitalByID(ctx context.Context, id uuid.UUID) (*HospitalSnapshot, error)
	HospitalByName(ctx context.Context, name string) (*HospitalSnapshot, error)
	FirstHospital(ctx context.Context) (*HospitalSnapshot, error)
	CounterByHospitalAndType(ctx context.Context, hospitalID uuid.UUID, bloodType string) (*CounterSnapshot, error)
	CountersByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*CounterSnapshot, error)
	EligibilityByID(ctx context.Context, id uuid.UUID) (*EligibilitySnapshot, error)
	DonorByID(ctx context.Context, id uuid.UUID) (*DonorSnapshot, error)
}

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RegistrationSnapshot struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	DonorID       *uuid.UUID
	WalkInName    *string
	WalkInPhone   *string
	HospitalID    *uuid.UUID
	SlotStart     time.Time
	SlotEnd       time.Time
	Status        string
	RejectReason  *string
	SpecialNotes  *string
	BloodUsed     bool
	CheckedInAt   *time.Time
	LastUpdatedBy *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToDomain reconstructs the aggregate so transitions are validated by the
// entity before the conditional write is even attempted.
func (s *RegistrationSnapshot) ToDomain() (*registration.Registration, error) {
	slot, err := registration.NewTimeSlot(s.SlotStart, s.SlotEnd)
	if err != nil {
		return nil, err
	}
	status, err := registration.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}

	var walkIn *registration.WalkIn
	if s.WalkInName != nil {
		phone := ""
		if s.WalkInPhone != nil {
			phone = *s.WalkInPhone
		}
		w, err := registration.NewWalkIn(*s.WalkInName, phone)
		if err != nil {
			return nil, err
		}
		walkIn = &w
	}

	reason := registration.Reason{}
	if s.RejectReason != nil {
		reason, err = registration.NewReason(*s.RejectReason)
		if err != nil {
			return nil, err
		}
	}

	notes := registration.Notes{}
	if s.SpecialNotes != nil {
		notes = registration.NewNotes(*s.SpecialNotes)
	}

	return registration.ReconstructRegistration(
		s.ID, s.EventID, s.DonorID, walkIn, slot, status,
		reason, notes, s.BloodUsed, s.CheckedInAt, s.LastUpdatedBy,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

type DonationSnapshot struct {
	ID             uuid.UUID
	RegistrationID uuid.UUID
	DonorID        *uuid.UUID
	BloodType      string
	VolumeML       int32
	SerialNumber   string
	ExpiryDate     *time.Time
	Status         string
	Used           bool
	UsedHospitalID *uuid.UUID
	UsedAt         *time.Time
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
}

func (s *DonationSnapshot) ToDomain() *donation.Donation {
	return donation.ReconstructDonation(
		s.ID, s.RegistrationID, s.DonorID,
		donation.BloodType(s.BloodType), s.VolumeML, s.SerialNumber,
		s.ExpiryDate, donation.UsageStatus(s.Status),
		s.Used, s.UsedHospitalID, s.UsedAt,
		s.CreatedBy, s.CreatedAt,
	)
}

type EventSnapshot struct {
	ID           uuid.UUID
	Name         string
	HospitalID   *uuid.UUID
	HospitalName *string
	StartsAt     time.Time
	EndsAt       time.Time
}

type HospitalSnapshot struct {
	ID   uuid.UUID
	Name string
}

type CounterSnapshot struct {
	ID         uuid.UUID
	HospitalID uuid.UUID
	BloodType  string
	Units      int32
	Minimum    int32
	Critical   int32
	Version    int64
}

func (s *CounterSnapshot) ToDomain() *inventory.Counter {
	return inventory.ReconstructCounter(
		s.ID, s.HospitalID, donation.BloodType(s.BloodType),
		s.Units, s.Minimum, s.Critical, s.Version,
	)
}

type EligibilitySnapshot struct {
	ID            uuid.UUID
	DonorID       uuid.UUID
	Questionnaire json.RawMessage
	Status        string
	Outcome       *string
	DecisionNotes string
	DecidedBy     *uuid.UUID
	DecidedAt     *time.Time
	CreatedAt     time.Time
}

func (s *EligibilitySnapshot) ToDomain() *eligibility.Request {
	var outcome *eligibility.Outcome
	if s.Outcome != nil {
		o := eligibility.Outcome(*s.Outcome)
		outcome = &o
	}
	return eligibility.ReconstructRequest(
		s.ID, s.DonorID, s.Questionnaire,
		eligibility.ReviewStatus(s.Status), outcome,
		s.DecisionNotes, s.DecidedBy, s.DecidedAt, s.CreatedAt,
	)
}

type DonorSnapshot struct {
	ID        uuid.UUID
	FullName  string
	BloodType string
}

// RegistrationTransition is a compare-and-swap write: the status update only
// lands when the stored status is still one of From.
type RegistrationTransition struct {
	ID          uuid.UUID
	From        []registration.Status
	To          registration.Status
	Reason      *string
	CheckedInAt *time.Time
	Actor       uuid.UUID
	Now         time.Time
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *registration.Registration) (uuid.UUID, error)
	Transition(ctx context.Context, p RegistrationTransition) error
	MarkBloodUsed(ctx context.Context, id, actor uuid.UUID, now time.Time) error
}

type DonationRepository interface {
	Create(ctx context.Context, d *donation.Donation) (uuid.UUID, error)
	MarkUsed(ctx context.Context, id, hospitalID, actor uuid.UUID, now time.Time) error
}

type InventoryRepository interface {
	// DecrementUnits is version-checked and refuses to go below zero at the
	// database level, independent of the pre-validation in the usecase.
	DecrementUnits(ctx context.Context, counterID uuid.UUID, units int32, version int64) error
	Upsert(ctx context.Context, hospitalID uuid.UUID, bloodType string, units, minimum, critical int32) (uuid.UUID, error)
}

type EligibilityRepository interface {
	Create(ctx context.Context, req *eligibility.Request) (uuid.UUID, error)
	Decide(ctx context.Context, id uuid.UUID, outcome eligibility.Outcome, notes string, actor uuid.UUID, now time.Time) error
}

type NewNotification struct {
	DonorID uuid.UUID
	Type    string
	Title   string
	Message string
	Payload []byte
}

type NotificationRepository interface {
	Create(ctx context.Context, n NewNotification) (uuid.UUID, error)
	MarkRead(ctx context.Context, id, donorID uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
