package repository

import (
	"context"

	"stayspots/internal/domain/spot"
	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotRepository struct{}

func NewSpotRepository() *SpotRepository {
	return &SpotRepository{}
}

const createSpotSQL = `
INSERT INTO spots (id, owner_id, street, city, state, country, lat, lng, name, description, price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

func (r *SpotRepository) Create(ctx context.Context, tx db.DBTX, s *spot.Spot) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSpotSQL,
		pgconv.UUIDToPgtype(s.ID()),
		pgconv.UUIDToPgtype(s.OwnerID()),
		s.Address().Street(),
		s.Address().City(),
		s.Address().State(),
		s.Address().Country(),
		s.Coordinates().Lat(),
		s.Coordinates().Lng(),
		s.Name().String(),
		s.Description(),
		pgconv.NumericFromCents(s.Price().Cents()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create spot", err)
	}
	return id, nil
}

const updateSpotSQL = `
UPDATE spots
SET street = $2, city = $3, state = $4, country = $5,
    lat = $6, lng = $7, name = $8, description = $9, price = $10,
    updated_at = now()
WHERE id = $1`

func (r *SpotRepository) Update(ctx context.Context, tx db.DBTX, s *spot.Spot) error {
	tag, err := tx.Exec(ctx, updateSpotSQL,
		pgconv.UUIDToPgtype(s.ID()),
		s.Address().Street(),
		s.Address().City(),
		s.Address().State(),
		s.Address().Country(),
		s.Coordinates().Lat(),
		s.Coordinates().Lng(),
		s.Name().String(),
		s.Description(),
		pgconv.NumericFromCents(s.Price().Cents()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Bookings, reviews and images reference spots with ON DELETE CASCADE, so
// a single delete removes the whole subtree.
const deleteSpotSQL = `DELETE FROM spots WHERE id = $1`

func (r *SpotRepository) Delete(ctx context.Context, tx db.DBTX, spotID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteSpotSQL, pgconv.UUIDToPgtype(spotID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}
