package repository

import (
	"context"
	"time"

	"donorhub/internal/domain/donation"
	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DonationRepository struct {
	db db.DBTX
}

func NewDonationRepository(dbtx db.DBTX) *DonationRepository {
	return &DonationRepository{db: dbtx}
}

const createDonationQuery = `
INSERT INTO donations (
    registration_id, donor_id, blood_type, volume_ml,
    serial_number, expiry_date, status, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

// Create relies on the unique index on registration_id to reject a second
// donation for the same registration with KindDuplicateKey.
func (r *DonationRepository) Create(ctx context.Context, d *donation.Donation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createDonationQuery,
		pgconv.UUIDToPgtype(d.RegistrationID()),
		pgconv.UUIDPtrToPgtype(d.DonorID()),
		string(d.BloodType()),
		d.VolumeML(),
		d.SerialNumber(),
		pgconv.TimePtrToPgtype(d.ExpiryDate()),
		string(d.Status()),
		pgconv.UUIDToPgtype(d.CreatedBy()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create donation", err)
	}

	return id, nil
}

const markDonationUsedQuery = `
UPDATE donations
SET used             = TRUE,
    status           = 'consumed',
    used_hospital_id = $1,
    used_by          = $2,
    used_at          = $3
WHERE id = $4
  AND used = FALSE
  AND status = 'stored'`

func (r *DonationRepository) MarkUsed(ctx context.Context, id, hospitalID, actor uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx, markDonationUsedQuery,
		pgconv.UUIDToPgtype(hospitalID),
		pgconv.UUIDToPgtype(actor),
		pgconv.TimeToPgtype(now),
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark donation used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation already used or not usable", nil, infra.KindConflict)
	}

	return nil
}
