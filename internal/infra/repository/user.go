package repository

import (
	"context"

	"github.com/Fox-16s/reservat-io/internal/domain/user"
	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/infra/query"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (uuid.UUID, error)
	CreateProfile(ctx context.Context, db query.DBTX, arg query.CreateProfileParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create must run inside a transaction: a user without a profile has no name
// to show on the reservations they create.
func (r *UserRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, query.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	err = r.queries.CreateProfile(ctx, tx, query.CreateProfileParams{
		ID:   id,
		Name: u.Name().Value(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create profile", err)
	}

	return id, nil
}
