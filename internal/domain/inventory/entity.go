package inventory

import (
	"errors"

	"donorhub/internal/domain/donation"

	"github.com/google/uuid"
)

var (
	ErrInsufficientUnits = errors.New("decrement would drive inventory below zero")
	ErrInvalidDecrement  = errors.New("decrement must be a positive unit count")
	ErrNegativeStock     = errors.New("stock levels must not be negative")
	ErrThresholdOrder    = errors.New("critical threshold must not exceed minimum threshold")
)

// Counter is the per-hospital, per-blood-type available unit count.
// The version field detects concurrent conflicting writes.
type Counter struct {
	id         uuid.UUID
	hospitalID uuid.UUID
	bloodType  donation.BloodType
	units      int32
	minimum    int32
	critical   int32
	version    int64
	persisted  bool
}

func NewCounter(hospitalID uuid.UUID, bloodType donation.BloodType, units, minimum, critical int32) *Counter {
	return &Counter{
		id:         uuid.New(),
		hospitalID: hospitalID,
		bloodType:  bloodType,
		units:      units,
		minimum:    minimum,
		critical:   critical,
		persisted:  true,
	}
}

// SynthesizeEmpty builds an in-memory zero counter for a hospital that has no
// row for this blood type yet. It is persisted only when a write succeeds,
// which a decrement at zero never does.
func SynthesizeEmpty(hospitalID uuid.UUID, bloodType donation.BloodType) *Counter {
	return &Counter{
		id:         uuid.New(),
		hospitalID: hospitalID,
		bloodType:  bloodType,
		persisted:  false,
	}
}

func ReconstructCounter(id, hospitalID uuid.UUID, bloodType donation.BloodType, units, minimum, critical int32, version int64) *Counter {
	return &Counter{
		id:         id,
		hospitalID: hospitalID,
		bloodType:  bloodType,
		units:      units,
		minimum:    minimum,
		critical:   critical,
		version:    version,
		persisted:  true,
	}
}

// ValidateStockLevels guards a restock before it reaches the storage layer.
func ValidateStockLevels(units, minimum, critical int32) error {
	if units < 0 || minimum < 0 || critical < 0 {
		return ErrNegativeStock
	}
	if critical > minimum {
		return ErrThresholdOrder
	}
	return nil
}

// ValidateDecrement rejects a decrement that would go negative, before any
// write is issued.
func (c *Counter) ValidateDecrement(units int32) error {
	if units <= 0 {
		return ErrInvalidDecrement
	}
	if c.units < units {
		return ErrInsufficientUnits
	}
	return nil
}

func (c *Counter) Decrement(units int32) error {
	if err := c.ValidateDecrement(units); err != nil {
		return err
	}
	c.units -= units
	return nil
}

func (c *Counter) IsBelowMinimum() bool {
	return c.units < c.minimum
}

func (c *Counter) IsCritical() bool {
	return c.units <= c.critical
}

func (c *Counter) ID() uuid.UUID                 { return c.id }
func (c *Counter) HospitalID() uuid.UUID         { return c.hospitalID }
func (c *Counter) BloodType() donation.BloodType { return c.bloodType }
func (c *Counter) Units() int32                  { return c.units }
func (c *Counter) Minimum() int32                { return c.minimum }
func (c *Counter) Critical() int32               { return c.critical }
func (c *Counter) Version() int64                { return c.version }
func (c *Counter) IsPersisted() bool             { return c.persisted }
