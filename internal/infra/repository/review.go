package repository

import (
	"context"

	"stayspots/internal/domain/review"
	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, user_id, spot_id, stars, body)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		pgconv.UUIDToPgtype(rev.ID()),
		pgconv.UUIDToPgtype(rev.UserID()),
		pgconv.UUIDToPgtype(rev.SpotID()),
		int32(rev.Stars().Value()),
		rev.Body().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

const updateReviewSQL = `
UPDATE reviews
SET stars = $2, body = $3, updated_at = now()
WHERE id = $1`

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	tag, err := tx.Exec(ctx, updateReviewSQL,
		pgconv.UUIDToPgtype(rev.ID()),
		int32(rev.Stars().Value()),
		rev.Body().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteReviewSQL = `DELETE FROM reviews WHERE id = $1`

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReviewSQL, pgconv.UUIDToPgtype(reviewID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
