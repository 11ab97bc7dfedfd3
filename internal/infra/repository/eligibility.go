package repository

import (
	"context"
	"time"

	"donorhub/internal/domain/eligibility"
	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EligibilityRepository struct {
	db db.DBTX
}

func NewEligibilityRepository(dbtx db.DBTX) *EligibilityRepository {
	return &EligibilityRepository{db: dbtx}
}

const createEligibilityQuery = `
INSERT INTO eligibility_requests (donor_id, questionnaire, status)
VALUES ($1, $2, $3)
RETURNING id`

func (r *EligibilityRepository) Create(ctx context.Context, req *eligibility.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createEligibilityQuery,
		pgconv.UUIDToPgtype(req.DonorID()),
		[]byte(req.Questionnaire()),
		string(req.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create eligibility request", err)
	}

	return id, nil
}

const decideEligibilityQuery = `
UPDATE eligibility_requests
SET status         = 'decided',
    outcome        = $1,
    decision_notes = $2,
    decided_by     = $3,
    decided_at     = $4
WHERE id = $5
  AND status = 'pending'`

// Decide is once-only: a request already decided affects zero rows.
func (r *EligibilityRepository) Decide(ctx context.Context, id uuid.UUID, outcome eligibility.Outcome, notes string, actor uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx, decideEligibilityQuery,
		string(outcome),
		notes,
		pgconv.UUIDToPgtype(actor),
		pgconv.TimeToPgtype(now),
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decide eligibility request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("eligibility request already decided", nil, infra.KindConflict)
	}

	return nil
}
