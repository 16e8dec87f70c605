package repository

import (
	"context"

	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewImageRepository struct{}

func NewReviewImageRepository() *ReviewImageRepository {
	return &ReviewImageRepository{}
}

const createReviewImageSQL = `
INSERT INTO review_images (review_id, url)
VALUES ($1, $2)
RETURNING id`

func (r *ReviewImageRepository) Create(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, url string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewImageSQL, pgconv.UUIDToPgtype(reviewID), url).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review image", err)
	}
	return id, nil
}

const deleteReviewImageSQL = `DELETE FROM review_images WHERE id = $1`

func (r *ReviewImageRepository) Delete(ctx context.Context, tx db.DBTX, imageID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReviewImageSQL, pgconv.UUIDToPgtype(imageID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete review image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review image not found", nil, infra.KindNotFound)
	}
	return nil
}
