package readstore

import (
	"context"
	"time"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RegistrationReadStore struct {
	db db.DBTX
}

func NewRegistrationReadStore(dbtx db.DBTX) *RegistrationReadStore {
	return &RegistrationReadStore{db: dbtx}
}

const findRegistrationByIDQuery = `
SELECT r.id, r.event_id, e.name AS event_name,
       r.donor_id, d.full_name AS donor_name, r.walk_in_name,
       r.slot_start, r.slot_end, r.status, r.reject_reason, r.special_notes,
       r.blood_used, r.checked_in_at, r.created_at, r.updated_at
FROM registrations r
JOIN events e ON e.id = r.event_id
LEFT JOIN donors d ON d.id = r.donor_id
WHERE r.id = $1`

func (s *RegistrationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RegistrationView, error) {
	var (
		view         queries.RegistrationView
		donorID      pgtype.UUID
		donorName    pgtype.Text
		walkInName   pgtype.Text
		rejectReason pgtype.Text
		specialNotes pgtype.Text
		slotStart    pgtype.Timestamptz
		slotEnd      pgtype.Timestamptz
		checkedInAt  pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findRegistrationByIDQuery, pgconv.UUIDToPgtype(id)).Scan(
		&view.ID, &view.EventID, &view.EventName,
		&donorID, &donorName, &walkInName,
		&slotStart, &slotEnd, &view.Status, &rejectReason, &specialNotes,
		&view.BloodUsed, &checkedInAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration by ID", err)
	}

	view.DonorID = pgconv.UUIDPtrFromPgtype(donorID)
	view.DonorName = pgconv.StringPtrFromPgtype(donorName)
	view.WalkInName = pgconv.StringPtrFromPgtype(walkInName)
	view.SlotStart = pgconv.TimeFromPgtype(slotStart)
	view.SlotEnd = pgconv.TimeFromPgtype(slotEnd)
	view.RejectReason = pgconv.StringPtrFromPgtype(rejectReason)
	view.SpecialNotes = pgconv.StringPtrFromPgtype(specialNotes)
	view.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

const findRegistrationsByEventFirstPageQuery = `
SELECT r.id, r.donor_id, d.full_name AS donor_name, r.walk_in_name,
       d.blood_type, r.slot_start, r.slot_end, r.status, r.blood_used, r.created_at
FROM registrations r
LEFT JOIN donors d ON d.id = r.donor_id
WHERE r.event_id = $1
  AND ($2::text IS NULL OR r.status = $2)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $3`

const findRegistrationsByEventKeysetQuery = `
SELECT r.id, r.donor_id, d.full_name AS donor_name, r.walk_in_name,
       d.blood_type, r.slot_start, r.slot_end, r.status, r.blood_used, r.created_at
FROM registrations r
LEFT JOIN donors d ON d.id = r.donor_id
WHERE r.event_id = $1
  AND ($2::text IS NULL OR r.status = $2)
  AND (r.created_at, r.id) < ($3, $4)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $5`

func (s *RegistrationReadStore) FindByEventFirstPage(ctx context.Context, eventID uuid.UUID, status *string, limit int32) ([]*queries.RegistrationListItem, error) {
	rows, err := s.db.Query(ctx, findRegistrationsByEventFirstPageQuery,
		pgconv.UUIDToPgtype(eventID),
		pgconv.StringPtrToPgtype(status),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find registrations first page", err)
	}
	return scanRegistrationListItems(rows)
}

func (s *RegistrationReadStore) FindByEventKeyset(ctx context.Context, eventID uuid.UUID, status *string, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.RegistrationListItem, error) {
	rows, err := s.db.Query(ctx, findRegistrationsByEventKeysetQuery,
		pgconv.UUIDToPgtype(eventID),
		pgconv.StringPtrToPgtype(status),
		pgconv.TimeToPgtype(afterCreatedAt),
		pgconv.UUIDToPgtype(afterID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find registrations keyset page", err)
	}
	return scanRegistrationListItems(rows)
}

func scanRegistrationListItems(rows pgx.Rows) ([]*queries.RegistrationListItem, error) {
	defer rows.Close()

	var result []*queries.RegistrationListItem
	for rows.Next() {
		var (
			item       queries.RegistrationListItem
			donorID    pgtype.UUID
			donorName  pgtype.Text
			walkInName pgtype.Text
			bloodType  pgtype.Text
			slotStart  pgtype.Timestamptz
			slotEnd    pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &donorID, &donorName, &walkInName,
			&bloodType, &slotStart, &slotEnd, &item.Status, &item.BloodUsed, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan registration row", err)
		}

		item.DonorID = pgconv.UUIDPtrFromPgtype(donorID)
		item.DonorName = pgconv.StringPtrFromPgtype(donorName)
		item.WalkInName = pgconv.StringPtrFromPgtype(walkInName)
		item.BloodType = pgconv.StringPtrFromPgtype(bloodType)
		item.SlotStart = pgconv.TimeFromPgtype(slotStart)
		item.SlotEnd = pgconv.TimeFromPgtype(slotEnd)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate registration rows", err)
	}

	return result, nil
}
