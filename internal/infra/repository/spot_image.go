package repository

import (
	"context"

	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotImageRepository struct{}

func NewSpotImageRepository() *SpotImageRepository {
	return &SpotImageRepository{}
}

const createSpotImageSQL = `
INSERT INTO spot_images (spot_id, url, preview)
VALUES ($1, $2, $3)
RETURNING id`

func (r *SpotImageRepository) Create(ctx context.Context, tx db.DBTX, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSpotImageSQL, pgconv.UUIDToPgtype(spotID), url, preview).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create spot image", err)
	}
	return id, nil
}

const clearSpotPreviewSQL = `
UPDATE spot_images SET preview = false WHERE spot_id = $1 AND preview`

func (r *SpotImageRepository) ClearPreview(ctx context.Context, tx db.DBTX, spotID uuid.UUID) error {
	if _, err := tx.Exec(ctx, clearSpotPreviewSQL, pgconv.UUIDToPgtype(spotID)); err != nil {
		return infra.WrapRepoErr("failed to clear spot preview image", err)
	}
	return nil
}

const deleteSpotImageSQL = `DELETE FROM spot_images WHERE id = $1`

func (r *SpotImageRepository) Delete(ctx context.Context, tx db.DBTX, imageID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteSpotImageSQL, pgconv.UUIDToPgtype(imageID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete spot image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot image not found", nil, infra.KindNotFound)
	}
	return nil
}
