package repository

import (
	"context"
	"time"

	"donorhub/internal/domain/registration"
	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegistrationRepository struct {
	db db.DBTX
}

func NewRegistrationRepository(dbtx db.DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: dbtx}
}

const createRegistrationQuery = `
INSERT INTO registrations (
    event_id, donor_id, walk_in_name, walk_in_phone,
    slot_start, slot_end, status, special_notes, last_updated_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) (uuid.UUID, error) {
	var walkInName, walkInPhone *string
	if w := reg.WalkIn(); w != nil {
		name := w.Name()
		walkInName = &name
		if p := w.Phone(); p != "" {
			walkInPhone = &p
		}
	}

	var notes *string
	if n := reg.SpecialNotes().String(); n != "" {
		notes = &n
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createRegistrationQuery,
		pgconv.UUIDToPgtype(reg.EventID()),
		pgconv.UUIDPtrToPgtype(reg.DonorID()),
		pgconv.StringPtrToPgtype(walkInName),
		pgconv.StringPtrToPgtype(walkInPhone),
		pgconv.TimeToPgtype(reg.Slot().Start()),
		pgconv.TimeToPgtype(reg.Slot().End()),
		string(reg.Status()),
		pgconv.StringPtrToPgtype(notes),
		pgconv.UUIDPtrToPgtype(reg.LastUpdatedBy()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create registration", err)
	}

	return id, nil
}

const transitionRegistrationQuery = `
UPDATE registrations
SET status         = $1,
    reject_reason  = COALESCE($2, reject_reason),
    checked_in_at  = COALESCE($3, checked_in_at),
    last_updated_by = $4,
    updated_at     = $5
WHERE id = $6
  AND status = ANY($7)`

// Transition only succeeds when the stored status is still one of p.From.
// Zero rows affected means another session moved the registration first.
func (r *RegistrationRepository) Transition(ctx context.Context, p shared.RegistrationTransition) error {
	from := make([]string, len(p.From))
	for i, s := range p.From {
		from[i] = string(s)
	}

	tag, err := r.db.Exec(ctx, transitionRegistrationQuery,
		string(p.To),
		pgconv.StringPtrToPgtype(p.Reason),
		pgconv.TimePtrToPgtype(p.CheckedInAt),
		pgconv.UUIDToPgtype(p.Actor),
		pgconv.TimeToPgtype(p.Now),
		pgconv.UUIDToPgtype(p.ID),
		from,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to transition registration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration status changed concurrently", nil, infra.KindConflict)
	}

	return nil
}

const markBloodUsedQuery = `
UPDATE registrations
SET blood_used     = TRUE,
    last_updated_by = $1,
    updated_at     = $2
WHERE id = $3
  AND status = 'completed'
  AND blood_used = FALSE`

func (r *RegistrationRepository) MarkBloodUsed(ctx context.Context, id, actor uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx, markBloodUsedQuery,
		pgconv.UUIDToPgtype(actor),
		pgconv.TimeToPgtype(now),
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark registration blood used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration blood already marked used", nil, infra.KindConflict)
	}

	return nil
}
