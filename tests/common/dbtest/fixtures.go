//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, display_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestHospital(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	hospitalID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO hospitals (id, name, city) VALUES ($1, $2, 'Test City') ON CONFLICT (name) DO NOTHING", hospitalID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM hospitals WHERE name = $1", name).Scan(&hospitalID)
	}

	return hospitalID
}

func CreateTestDonor(t *testing.T, db DBLike, fullName, bloodType string) uuid.UUID {
	t.Helper()

	donorID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO donors (id, full_name, blood_type) VALUES ($1, $2, $3)", donorID, fullName, bloodType)
	require.NoError(t, err)

	return donorID
}

func CreateTestEvent(t *testing.T, db DBLike, hospitalID uuid.UUID, name string, startsAt, endsAt time.Time) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO events (id, name, hospital_id, starts_at, ends_at) VALUES ($1, $2, $3, $4, $5)",
		eventID, name, hospitalID, startsAt, endsAt)
	require.NoError(t, err)

	return eventID
}

func SeedInventory(t *testing.T, db DBLike, hospitalID uuid.UUID, bloodType string, units int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO inventory_counters (hospital_id, blood_type, units, minimum_stock, critical_stock) VALUES ($1, $2, $3, 5, 2) ON CONFLICT (hospital_id, blood_type) DO UPDATE SET units = EXCLUDED.units",
		hospitalID, bloodType, units)
	require.NoError(t, err)
}

func InventoryUnits(t *testing.T, db DBLike, hospitalID uuid.UUID, bloodType string) int32 {
	t.Helper()

	var units int32
	err := db.QueryRow(context.Background(),
		"SELECT units FROM inventory_counters WHERE hospital_id = $1 AND blood_type = $2",
		hospitalID, bloodType).Scan(&units)
	require.NoError(t, err)
	return units
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hospitals (id, name, city) VALUES
		    (gen_random_uuid(), 'Central Hospital', 'Hanoi'),
		    (gen_random_uuid(), 'District Clinic', 'Da Nang')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
