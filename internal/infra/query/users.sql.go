package query

import (
	"context"

	"github.com/google/uuid"
)

const createUser = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING id`

type CreateUserParams struct {
	Email        string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createUser, arg.Email, arg.PasswordHash).Scan(&id)
	return id, err
}

const createProfile = `
INSERT INTO profiles (id, name)
VALUES ($1, $2)`

type CreateProfileParams struct {
	ID   uuid.UUID
	Name string
}

func (q *Queries) CreateProfile(ctx context.Context, db DBTX, arg CreateProfileParams) error {
	_, err := db.Exec(ctx, createProfile, arg.ID, arg.Name)
	return err
}

const selectUserWithProfile = `
SELECT u.id, u.email, u.password_hash, u.is_active,
       COALESCE(p.name, ''), p.avatar_url, u.created_at
FROM users u
LEFT JOIN profiles p ON p.id = u.id`

const findUserByEmail = selectUserWithProfile + `
WHERE u.email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (UserWithProfileRow, error) {
	return scanUserWithProfile(db.QueryRow(ctx, findUserByEmail, email))
}

const findUserByID = selectUserWithProfile + `
WHERE u.id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserWithProfileRow, error) {
	return scanUserWithProfile(db.QueryRow(ctx, findUserByID, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserWithProfile(row rowScanner) (UserWithProfileRow, error) {
	var i UserWithProfileRow
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.IsActive,
		&i.Name,
		&i.AvatarUrl,
		&i.CreatedAt,
	)
	return i, err
}
