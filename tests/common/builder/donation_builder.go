//go:build unit || e2e

package builder

import (
	"time"

	domdonation "donorhub/internal/domain/donation"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DonationBuilder struct {
	ID             uuid.UUID
	RegistrationID uuid.UUID
	DonorID        *uuid.UUID
	BloodType      domdonation.BloodType
	VolumeML       int32
	SerialNumber   string
	ExpiryDate     *time.Time
	Status         domdonation.UsageStatus
	Used           bool
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
}

func NewDonationBuilder() *DonationBuilder {
	now := time.Now()
	donorID := uuid.New()
	expiry := now.Add(42 * 24 * time.Hour)
	return &DonationBuilder{
		ID:             uuid.New(),
		RegistrationID: uuid.New(),
		DonorID:        &donorID,
		BloodType:      domdonation.BloodAPos,
		VolumeML:       450,
		SerialNumber:   "SN-0001",
		ExpiryDate:     &expiry,
		Status:         domdonation.UsageStored,
		CreatedBy:      uuid.New(),
		CreatedAt:      now,
	}
}

func (b *DonationBuilder) With(mutate func(*DonationBuilder)) *DonationBuilder {
	mutate(b)
	return b
}

func (b *DonationBuilder) BuildDomain() (*domdonation.Donation, error) {
	return domdonation.NewDonation(
		b.RegistrationID, b.DonorID, b.BloodType, b.VolumeML,
		b.SerialNumber, b.ExpiryDate, b.CreatedBy, b.CreatedAt,
	)
}

// BuildDomainAt reconstructs a donation in an arbitrary usage state.
func (b *DonationBuilder) BuildDomainAt() *domdonation.Donation {
	var usedHospitalID *uuid.UUID
	var usedAt *time.Time
	if b.Used {
		h := uuid.New()
		usedHospitalID = &h
		t := b.CreatedAt
		usedAt = &t
	}
	return domdonation.ReconstructDonation(
		b.ID, b.RegistrationID, b.DonorID, b.BloodType, b.VolumeML,
		b.SerialNumber, b.ExpiryDate, b.Status, b.Used,
		usedHospitalID, usedAt, b.CreatedBy, b.CreatedAt,
	)
}

func (b *DonationBuilder) BuildView() *queries.DonationView {
	return &queries.DonationView{
		ID:             b.ID,
		RegistrationID: b.RegistrationID,
		DonorID:        b.DonorID,
		BloodType:      string(b.BloodType),
		VolumeML:       b.VolumeML,
		SerialNumber:   b.SerialNumber,
		ExpiryDate:     b.ExpiryDate,
		Status:         string(b.Status),
		Used:           b.Used,
		CreatedAt:      b.CreatedAt,
	}
}
