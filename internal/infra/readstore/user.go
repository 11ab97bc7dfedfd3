package readstore

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/infra/db"
	"donorhub/internal/pkg/pgconv"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDQuery = `
SELECT id, email, display_name, role, is_active
FROM users
WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, findUserByIDQuery, pgconv.UUIDToPgtype(id)).Scan(
		&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

const findUserByEmailQuery = `
SELECT id, email, display_name, role, is_active, password_hash
FROM users
WHERE email = $1`

// FindByEmail also returns the password hash for login verification.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := s.db.QueryRow(ctx, findUserByEmailQuery, email).Scan(
		&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}
