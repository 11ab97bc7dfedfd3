package readstore

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DonationReadStore struct {
	db db.DBTX
}

func NewDonationReadStore(dbtx db.DBTX) *DonationReadStore {
	return &DonationReadStore{db: dbtx}
}

const donationViewColumns = `
SELECT dn.id, dn.registration_id, dn.donor_id, d.full_name AS donor_name,
       dn.blood_type, dn.volume_ml, dn.serial_number, dn.expiry_date,
       dn.status, dn.used, dn.used_hospital_id, h.name AS used_hospital_name,
       dn.used_at, dn.created_at
FROM donations dn
LEFT JOIN donors d ON d.id = dn.donor_id
LEFT JOIN hospitals h ON h.id = dn.used_hospital_id`

const findDonationByIDQuery = donationViewColumns + `
WHERE dn.id = $1`

const findDonationByRegistrationIDQuery = donationViewColumns + `
WHERE dn.registration_id = $1`

func (s *DonationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DonationView, error) {
	return s.findOne(ctx, findDonationByIDQuery, id, "failed to find donation by ID")
}

func (s *DonationReadStore) FindByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*queries.DonationView, error) {
	return s.findOne(ctx, findDonationByRegistrationIDQuery, registrationID, "failed to find donation by registration ID")
}

func (s *DonationReadStore) findOne(ctx context.Context, query string, arg uuid.UUID, failMsg string) (*queries.DonationView, error) {
	var (
		view             queries.DonationView
		donorID          pgtype.UUID
		donorName        pgtype.Text
		expiryDate       pgtype.Timestamptz
		usedHospitalID   pgtype.UUID
		usedHospitalName pgtype.Text
		usedAt           pgtype.Timestamptz
		createdAt        pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(arg)).Scan(
		&view.ID, &view.RegistrationID, &donorID, &donorName,
		&view.BloodType, &view.VolumeML, &view.SerialNumber, &expiryDate,
		&view.Status, &view.Used, &usedHospitalID, &usedHospitalName,
		&usedAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("donation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}

	view.DonorID = pgconv.UUIDPtrFromPgtype(donorID)
	view.DonorName = pgconv.StringPtrFromPgtype(donorName)
	view.ExpiryDate = pgconv.TimePtrFromPgtype(expiryDate)
	view.UsedHospitalID = pgconv.UUIDPtrFromPgtype(usedHospitalID)
	view.UsedHospitalName = pgconv.StringPtrFromPgtype(usedHospitalName)
	view.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
