//go:build unit || e2e

package builder

import (
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
	IsActive    bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		Email:       "staff@example.com",
		DisplayName: "Test Staff",
		Role:        "staff",
		IsActive:    true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          b.ID,
		Email:       b.Email,
		DisplayName: b.DisplayName,
		Role:        b.Role,
		IsActive:    b.IsActive,
	}
}
