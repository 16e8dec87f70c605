package repository

import (
	"context"

	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (first_name, last_name, email, username, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		params.FirstName,
		params.LastName,
		params.Email,
		params.Username,
		params.PasswordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
