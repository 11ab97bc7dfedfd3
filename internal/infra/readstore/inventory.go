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

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

const findCountersByHospitalQuery = `
SELECT c.id, c.hospital_id, h.name AS hospital_name, c.blood_type,
       c.units, c.minimum_stock, c.critical_stock, c.updated_at
FROM inventory_counters c
JOIN hospitals h ON h.id = c.hospital_id
WHERE c.hospital_id = $1
ORDER BY c.blood_type`

const findAllCountersQuery = `
SELECT c.id, c.hospital_id, h.name AS hospital_name, c.blood_type,
       c.units, c.minimum_stock, c.critical_stock, c.updated_at
FROM inventory_counters c
JOIN hospitals h ON h.id = c.hospital_id
ORDER BY h.name, c.blood_type`

func (s *InventoryReadStore) FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*queries.InventoryCounterView, error) {
	rows, err := s.db.Query(ctx, findCountersByHospitalQuery, pgconv.UUIDToPgtype(hospitalID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find inventory counters by hospital", err)
	}
	return scanCounterViews(rows)
}

func (s *InventoryReadStore) FindAll(ctx context.Context) ([]*queries.InventoryCounterView, error) {
	rows, err := s.db.Query(ctx, findAllCountersQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find inventory counters", err)
	}
	return scanCounterViews(rows)
}

func scanCounterViews(rows pgx.Rows) ([]*queries.InventoryCounterView, error) {
	defer rows.Close()

	var result []*queries.InventoryCounterView
	for rows.Next() {
		var (
			view      queries.InventoryCounterView
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.HospitalID, &view.HospitalName, &view.BloodType,
			&view.Units, &view.MinimumStock, &view.CriticalStock, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory counter row", err)
		}

		view.BelowMinimum = view.Units < view.MinimumStock
		view.Critical = view.Units <= view.CriticalStock
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory counter rows", err)
	}

	return result, nil
}
