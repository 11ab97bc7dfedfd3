package repository

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const updateLastLoginQuery = `
UPDATE users
SET last_login = NOW()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginQuery, pgconv.UUIDToPgtype(userID)); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
