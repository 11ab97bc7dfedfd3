package donation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinVolumeML = 100
	MaxVolumeML = 650
)

var (
	ErrEmptySerialNumber = errors.New("serial number is required")
	ErrSerialTooLong     = errors.New("serial number too long")
	ErrInvalidVolume     = errors.New("donated volume out of range")
	ErrMissingExpiry     = errors.New("expiry date is required")
	ErrExpiryInPast      = errors.New("expiry date must be in the future")
	ErrAlreadyUsed       = errors.New("donation is already marked as used")
	ErrNotStored         = errors.New("donation is not in stored status")
	ErrDonationExpired   = errors.New("donation has expired")
)

// Donation is the immutable record of blood actually collected. Only the
// usage fields may change, exactly once, when the unit is consumed.
type Donation struct {
	id             uuid.UUID
	registrationID uuid.UUID
	donorID        *uuid.UUID
	bloodType      BloodType
	volumeML       int32
	serialNumber   string
	expiryDate     *time.Time
	status         UsageStatus
	used           bool
	usedHospitalID *uuid.UUID
	usedAt         *time.Time
	createdBy      uuid.UUID
	createdAt      time.Time
}

func NewDonation(
	registrationID uuid.UUID,
	donorID *uuid.UUID,
	bloodType BloodType,
	volumeML int32,
	serialNumber string,
	expiryDate *time.Time,
	createdBy uuid.UUID,
	now time.Time,
) (*Donation, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return nil, ErrEmptySerialNumber
	}
	if len(serialNumber) > 100 {
		return nil, ErrSerialTooLong
	}
	if volumeML < MinVolumeML || volumeML > MaxVolumeML {
		return nil, ErrInvalidVolume
	}
	if expiryDate == nil {
		return nil, ErrMissingExpiry
	}
	if !expiryDate.After(now) {
		return nil, ErrExpiryInPast
	}

	return &Donation{
		id:             uuid.New(),
		registrationID: registrationID,
		donorID:        donorID,
		bloodType:      bloodType,
		volumeML:       volumeML,
		serialNumber:   serialNumber,
		expiryDate:     expiryDate,
		status:         UsageStored,
		createdBy:      createdBy,
		createdAt:      now,
	}, nil
}

func ReconstructDonation(
	id, registrationID uuid.UUID,
	donorID *uuid.UUID,
	bloodType BloodType,
	volumeML int32,
	serialNumber string,
	expiryDate *time.Time,
	status UsageStatus,
	used bool,
	usedHospitalID *uuid.UUID,
	usedAt *time.Time,
	createdBy uuid.UUID,
	createdAt time.Time,
) *Donation {
	return &Donation{
		id:             id,
		registrationID: registrationID,
		donorID:        donorID,
		bloodType:      bloodType,
		volumeML:       volumeML,
		serialNumber:   serialNumber,
		expiryDate:     expiryDate,
		status:         status,
		used:           used,
		usedHospitalID: usedHospitalID,
		usedAt:         usedAt,
		createdBy:      createdBy,
		createdAt:      createdAt,
	}
}

// CanBeUsed checks every precondition of the mark-as-used workflow without
// mutating anything, so callers can refuse before issuing writes.
func (d *Donation) CanBeUsed(now time.Time) error {
	if d.used {
		return ErrAlreadyUsed
	}
	if d.status != UsageStored {
		return ErrNotStored
	}
	if d.expiryDate != nil && !d.expiryDate.After(now) {
		return ErrDonationExpired
	}
	if !d.bloodType.IsKnown() {
		return ErrUnknownBloodType
	}
	return nil
}

// MarkUsed links the stored unit to the hospital that consumed it.
func (d *Donation) MarkUsed(hospitalID uuid.UUID, now time.Time) error {
	if err := d.CanBeUsed(now); err != nil {
		return err
	}
	d.used = true
	d.status = UsageConsumed
	d.usedHospitalID = &hospitalID
	t := now
	d.usedAt = &t
	return nil
}

func (d *Donation) ID() uuid.UUID              { return d.id }
func (d *Donation) RegistrationID() uuid.UUID  { return d.registrationID }
func (d *Donation) DonorID() *uuid.UUID        { return d.donorID }
func (d *Donation) BloodType() BloodType       { return d.bloodType }
func (d *Donation) VolumeML() int32            { return d.volumeML }
func (d *Donation) SerialNumber() string       { return d.serialNumber }
func (d *Donation) ExpiryDate() *time.Time     { return d.expiryDate }
func (d *Donation) Status() UsageStatus        { return d.status }
func (d *Donation) Used() bool                 { return d.used }
func (d *Donation) UsedHospitalID() *uuid.UUID { return d.usedHospitalID }
func (d *Donation) UsedAt() *time.Time         { return d.usedAt }
func (d *Donation) CreatedBy() uuid.UUID       { return d.createdBy }
func (d *Donation) CreatedAt() time.Time       { return d.createdAt }
