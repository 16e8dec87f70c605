package readstore

import (
	"context"

	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"
	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, first_name, last_name, email, username
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		userID                            pgtype.UUID
		firstName, lastName, email, uname string
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&userID, &firstName, &lastName, &email, &uname)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        uuid.UUID(userID.Bytes),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Username:  uname,
	}, nil
}
