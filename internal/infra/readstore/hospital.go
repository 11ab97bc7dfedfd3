package readstore

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type HospitalReadStore struct {
	db db.DBTX
}

func NewHospitalReadStore(dbtx db.DBTX) *HospitalReadStore {
	return &HospitalReadStore{db: dbtx}
}

const findAllHospitalsQuery = `
SELECT id, name, city, created_at
FROM hospitals
ORDER BY name`

func (s *HospitalReadStore) FindAll(ctx context.Context) ([]*queries.HospitalView, error) {
	rows, err := s.db.Query(ctx, findAllHospitalsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hospitals", err)
	}
	defer rows.Close()

	var result []*queries.HospitalView
	for rows.Next() {
		var (
			view      queries.HospitalView
			city      pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &city, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hospital row", err)
		}

		view.City = pgconv.StringPtrFromPgtype(city)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hospital rows", err)
	}

	return result, nil
}
