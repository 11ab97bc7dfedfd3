package readstore

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

const findEventByIDQuery = `
SELECT e.id, e.name, e.hospital_id, h.name AS hospital_name,
       e.location, e.starts_at, e.ends_at, e.created_at
FROM events e
LEFT JOIN hospitals h ON h.id = e.hospital_id
WHERE e.id = $1`

const findAllEventsQuery = `
SELECT e.id, e.name, e.hospital_id, h.name AS hospital_name,
       e.location, e.starts_at, e.ends_at, e.created_at
FROM events e
LEFT JOIN hospitals h ON h.id = e.hospital_id
ORDER BY e.starts_at DESC`

func (s *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row := s.db.QueryRow(ctx, findEventByIDQuery, pgconv.UUIDToPgtype(id))
	view, err := scanEventView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return view, nil
}

func (s *EventReadStore) FindAll(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := s.db.Query(ctx, findAllEventsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find events", err)
	}
	defer rows.Close()

	var result []*queries.EventView
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}

	return result, nil
}

func scanEventView(row pgx.Row) (*queries.EventView, error) {
	var (
		view         queries.EventView
		hospitalID   pgtype.UUID
		hospitalName pgtype.Text
		location     pgtype.Text
		startsAt     pgtype.Timestamptz
		endsAt       pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Name, &hospitalID, &hospitalName,
		&location, &startsAt, &endsAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.HospitalID = pgconv.UUIDPtrFromPgtype(hospitalID)
	view.HospitalName = pgconv.StringPtrFromPgtype(hospitalName)
	view.Location = pgconv.StringPtrFromPgtype(location)
	view.StartsAt = pgconv.TimeFromPgtype(startsAt)
	view.EndsAt = pgconv.TimeFromPgtype(endsAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
