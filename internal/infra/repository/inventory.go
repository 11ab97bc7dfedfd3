package repository

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

const decrementUnitsQuery = `
UPDATE inventory_counters
SET units      = units - $1,
    version    = version + 1,
    updated_at = NOW()
WHERE id = $2
  AND units >= $1
  AND version = $3`

// DecrementUnits is the last line of defense against a counter going
// negative: the usecase pre-validates, but only this conditional update
// decides under concurrency.
func (r *InventoryRepository) DecrementUnits(ctx context.Context, counterID uuid.UUID, units int32, version int64) error {
	tag, err := r.db.Exec(ctx, decrementUnitsQuery,
		units,
		pgconv.UUIDToPgtype(counterID),
		version,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement inventory units", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory counter changed concurrently or insufficient units", nil, infra.KindConflict)
	}

	return nil
}

const upsertCounterQuery = `
INSERT INTO inventory_counters (hospital_id, blood_type, units, minimum_stock, critical_stock)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (hospital_id, blood_type)
DO UPDATE SET units          = EXCLUDED.units,
              minimum_stock  = EXCLUDED.minimum_stock,
              critical_stock = EXCLUDED.critical_stock,
              version        = inventory_counters.version + 1,
              updated_at     = NOW()
RETURNING id`

func (r *InventoryRepository) Upsert(ctx context.Context, hospitalID uuid.UUID, bloodType string, units, minimum, critical int32) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, upsertCounterQuery,
		pgconv.UUIDToPgtype(hospitalID),
		bloodType,
		units,
		minimum,
		critical,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert inventory counter", err)
	}

	return id, nil
}
