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

type EligibilityReadStore struct {
	db db.DBTX
}

func NewEligibilityReadStore(dbtx db.DBTX) *EligibilityReadStore {
	return &EligibilityReadStore{db: dbtx}
}

const findEligibilityByIDQuery = `
SELECT er.id, er.donor_id, d.full_name AS donor_name, er.questionnaire,
       er.status, er.outcome, er.decision_notes, er.decided_by, er.decided_at, er.created_at
FROM eligibility_requests er
JOIN donors d ON d.id = er.donor_id
WHERE er.id = $1`

func (s *EligibilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EligibilityView, error) {
	row := s.db.QueryRow(ctx, findEligibilityByIDQuery, pgconv.UUIDToPgtype(id))
	view, err := scanEligibilityView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("eligibility request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find eligibility request by ID", err)
	}
	return view, nil
}

const findPendingEligibilityFirstPageQuery = `
SELECT er.id, er.donor_id, d.full_name AS donor_name, er.questionnaire,
       er.status, er.outcome, er.decision_notes, er.decided_by, er.decided_at, er.created_at
FROM eligibility_requests er
JOIN donors d ON d.id = er.donor_id
WHERE er.status = 'pending'
ORDER BY er.created_at DESC, er.id DESC
LIMIT $1`

const findPendingEligibilityKeysetQuery = `
SELECT er.id, er.donor_id, d.full_name AS donor_name, er.questionnaire,
       er.status, er.outcome, er.decision_notes, er.decided_by, er.decided_at, er.created_at
FROM eligibility_requests er
JOIN donors d ON d.id = er.donor_id
WHERE er.status = 'pending'
  AND (er.created_at, er.id) < ($1, $2)
ORDER BY er.created_at DESC, er.id DESC
LIMIT $3`

func (s *EligibilityReadStore) FindPendingFirstPage(ctx context.Context, limit int32) ([]*queries.EligibilityView, error) {
	rows, err := s.db.Query(ctx, findPendingEligibilityFirstPageQuery, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending eligibility requests", err)
	}
	return scanEligibilityViews(rows)
}

func (s *EligibilityReadStore) FindPendingKeyset(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.EligibilityView, error) {
	rows, err := s.db.Query(ctx, findPendingEligibilityKeysetQuery,
		pgconv.TimeToPgtype(afterCreatedAt),
		pgconv.UUIDToPgtype(afterID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending eligibility keyset page", err)
	}
	return scanEligibilityViews(rows)
}

func scanEligibilityView(row pgx.Row) (*queries.EligibilityView, error) {
	var (
		view          queries.EligibilityView
		outcome       pgtype.Text
		decisionNotes pgtype.Text
		decidedBy     pgtype.UUID
		decidedAt     pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.DonorID, &view.DonorName, &view.Questionnaire,
		&view.Status, &outcome, &decisionNotes, &decidedBy, &decidedAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.Outcome = pgconv.StringPtrFromPgtype(outcome)
	view.DecisionNotes = pgconv.StringPtrFromPgtype(decisionNotes)
	view.DecidedBy = pgconv.UUIDPtrFromPgtype(decidedBy)
	view.DecidedAt = pgconv.TimePtrFromPgtype(decidedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}

func scanEligibilityViews(rows pgx.Rows) ([]*queries.EligibilityView, error) {
	defer rows.Close()

	var result []*queries.EligibilityView
	for rows.Next() {
		view, err := scanEligibilityView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan eligibility row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate eligibility rows", err)
	}

	return result, nil
}
