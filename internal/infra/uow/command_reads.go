package uow

import (
	"context"

	"donorhub/internal/infra"
	infradb "donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// commandReads serves the write side with lean snapshots. It runs against the
// pool or against an open transaction depending on where it was obtained.
type commandReads struct {
	dbtx infradb.DBTX
}

const registrationSnapshotQuery = `
SELECT id, event_id, donor_id, walk_in_name, walk_in_phone, hospital_id,
       slot_start, slot_end, status, reject_reason, special_notes,
       blood_used, checked_in_at, last_updated_by, created_at, updated_at
FROM registrations
WHERE id = $1`

func (r *commandReads) RegistrationByID(ctx context.Context, id uuid.UUID) (*shared.RegistrationSnapshot, error) {
	var (
		snap          shared.RegistrationSnapshot
		donorID       pgtype.UUID
		walkInName    pgtype.Text
		walkInPhone   pgtype.Text
		hospitalID    pgtype.UUID
		slotStart     pgtype.Timestamptz
		slotEnd       pgtype.Timestamptz
		rejectReason  pgtype.Text
		specialNotes  pgtype.Text
		checkedInAt   pgtype.Timestamptz
		lastUpdatedBy pgtype.UUID
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, registrationSnapshotQuery, pgconv.UUIDToPgtype(id)).Scan(
		&snap.ID, &snap.EventID, &donorID, &walkInName, &walkInPhone, &hospitalID,
		&slotStart, &slotEnd, &snap.Status, &rejectReason, &specialNotes,
		&snap.BloodUsed, &checkedInAt, &lastUpdatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load registration snapshot", err)
	}

	snap.DonorID = pgconv.UUIDPtrFromPgtype(donorID)
	snap.WalkInName = pgconv.StringPtrFromPgtype(walkInName)
	snap.WalkInPhone = pgconv.StringPtrFromPgtype(walkInPhone)
	snap.HospitalID = pgconv.UUIDPtrFromPgtype(hospitalID)
	snap.SlotStart = pgconv.TimeFromPgtype(slotStart)
	snap.SlotEnd = pgconv.TimeFromPgtype(slotEnd)
	snap.RejectReason = pgconv.StringPtrFromPgtype(rejectReason)
	snap.SpecialNotes = pgconv.StringPtrFromPgtype(specialNotes)
	snap.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
	snap.LastUpdatedBy = pgconv.UUIDPtrFromPgtype(lastUpdatedBy)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &snap, nil
}

const donationSnapshotQuery = `
SELECT id, registration_id, donor_id, blood_type, volume_ml, serial_number,
       expiry_date, status, used, used_hospital_id, used_at, created_by, created_at
FROM donations
WHERE `

func (r *commandReads) DonationByID(ctx context.Context, id uuid.UUID) (*shared.DonationSnapshot, error) {
	return r.donationSnapshot(ctx, donationSnapshotQuery+"id = $1", id)
}

func (r *commandReads) DonationByRegistrationID(ctx context.Context, registrationID uuid.UUID) (*shared.DonationSnapshot, error) {
	return r.donationSnapshot(ctx, donationSnapshotQuery+"registration_id = $1", registrationID)
}

func (r *commandReads) donationSnapshot(ctx context.Context, query string, arg uuid.UUID) (*shared.DonationSnapshot, error) {
	var (
		snap           shared.DonationSnapshot
		donorID        pgtype.UUID
		expiryDate     pgtype.Timestamptz
		usedHospitalID pgtype.UUID
		usedAt         pgtype.Timestamptz
		createdAt      pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(arg)).Scan(
		&snap.ID, &snap.RegistrationID, &donorID, &snap.BloodType, &snap.VolumeML,
		&snap.SerialNumber, &expiryDate, &snap.Status, &snap.Used,
		&usedHospitalID, &usedAt, &snap.CreatedBy, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("donation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load donation snapshot", err)
	}

	snap.DonorID = pgconv.UUIDPtrFromPgtype(donorID)
	snap.ExpiryDate = pgconv.TimePtrFromPgtype(expiryDate)
	snap.UsedHospitalID = pgconv.UUIDPtrFromPgtype(usedHospitalID)
	snap.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &snap, nil
}

const eventSnapshotQuery = `
SELECT id, name, hospital_id, hospital_name, starts_at, ends_at
FROM events
WHERE id = $1`

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	var (
		snap         shared.EventSnapshot
		hospitalID   pgtype.UUID
		hospitalName pgtype.Text
		startsAt     pgtype.Timestamptz
		endsAt       pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, eventSnapshotQuery, pgconv.UUIDToPgtype(id)).Scan(
		&snap.ID, &snap.Name, &hospitalID, &hospitalName, &startsAt, &endsAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load event snapshot", err)
	}

	snap.HospitalID = pgconv.UUIDPtrFromPgtype(hospitalID)
	snap.HospitalName = pgconv.StringPtrFromPgtype(hospitalName)
	snap.StartsAt = pgconv.TimeFromPgtype(startsAt)
	snap.EndsAt = pgconv.TimeFromPgtype(endsAt)

	return &snap, nil
}

func (r *commandReads) HospitalByID(ctx context.Context, id uuid.UUID) (*shared.HospitalSnapshot, error) {
	var snap shared.HospitalSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, name FROM hospitals WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	).Scan(&snap.ID, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hospital not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load hospital snapshot", err)
	}
	return &snap, nil
}

// HospitalByName matches case-insensitively on the trimmed name, which is how
// free-text hospital references on events are reconciled.
func (r *commandReads) HospitalByName(ctx context.Context, name string) (*shared.HospitalSnapshot, error) {
	var snap shared.HospitalSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, name FROM hospitals WHERE LOWER(name) = LOWER(TRIM($1))`,
		name,
	).Scan(&snap.ID, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hospital not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load hospital snapshot by name", err)
	}
	return &snap, nil
}

func (r *commandReads) FirstHospital(ctx context.Context) (*shared.HospitalSnapshot, error) {
	var snap shared.HospitalSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, name FROM hospitals ORDER BY created_at, id LIMIT 1`,
	).Scan(&snap.ID, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no hospitals registered", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load first hospital", err)
	}
	return &snap, nil
}

const counterSnapshotColumns = `
SELECT id, hospital_id, blood_type, units, minimum_stock, critical_stock, version
FROM inventory_counters`

func (r *commandReads) CounterByHospitalAndType(ctx context.Context, hospitalID uuid.UUID, bloodType string) (*shared.CounterSnapshot, error) {
	var snap shared.CounterSnapshot
	err := r.dbtx.QueryRow(ctx,
		counterSnapshotColumns+` WHERE hospital_id = $1 AND blood_type = $2`,
		pgconv.UUIDToPgtype(hospitalID), bloodType,
	).Scan(&snap.ID, &snap.HospitalID, &snap.BloodType, &snap.Units,
		&snap.Minimum, &snap.Critical, &snap.Version)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory counter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load inventory counter snapshot", err)
	}
	return &snap, nil
}

func (r *commandReads) CountersByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*shared.CounterSnapshot, error) {
	rows, err := r.dbtx.Query(ctx,
		counterSnapshotColumns+` WHERE hospital_id = $1 ORDER BY blood_type`,
		pgconv.UUIDToPgtype(hospitalID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load inventory counter snapshots", err)
	}
	defer rows.Close()

	var result []*shared.CounterSnapshot
	for rows.Next() {
		var snap shared.CounterSnapshot
		if err := rows.Scan(&snap.ID, &snap.HospitalID, &snap.BloodType, &snap.Units,
			&snap.Minimum, &snap.Critical, &snap.Version); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory counter snapshot", err)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory counter snapshots", err)
	}

	return result, nil
}

const eligibilitySnapshotQuery = `
SELECT id, donor_id, questionnaire, status, outcome, decision_notes,
       decided_by, decided_at, created_at
FROM eligibility_requests
WHERE id = $1`

func (r *commandReads) EligibilityByID(ctx context.Context, id uuid.UUID) (*shared.EligibilitySnapshot, error) {
	var (
		snap          shared.EligibilitySnapshot
		outcome       pgtype.Text
		decisionNotes pgtype.Text
		decidedBy     pgtype.UUID
		decidedAt     pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, eligibilitySnapshotQuery, pgconv.UUIDToPgtype(id)).Scan(
		&snap.ID, &snap.DonorID, &snap.Questionnaire, &snap.Status,
		&outcome, &decisionNotes, &decidedBy, &decidedAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("eligibility request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load eligibility snapshot", err)
	}

	snap.Outcome = pgconv.StringPtrFromPgtype(outcome)
	if notes := pgconv.StringPtrFromPgtype(decisionNotes); notes != nil {
		snap.DecisionNotes = *notes
	}
	snap.DecidedBy = pgconv.UUIDPtrFromPgtype(decidedBy)
	snap.DecidedAt = pgconv.TimePtrFromPgtype(decidedAt)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &snap, nil
}

func (r *commandReads) DonorByID(ctx context.Context, id uuid.UUID) (*shared.DonorSnapshot, error) {
	var snap shared.DonorSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, full_name, blood_type FROM donors WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	).Scan(&snap.ID, &snap.FullName, &snap.BloodType)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("donor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load donor snapshot", err)
	}
	return &snap, nil
}
