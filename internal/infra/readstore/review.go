package readstore

import (
	"context"
	"time"

	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"
	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewColumns = `
r.id, r.user_id, r.spot_id, r.stars, r.body,
u.first_name, u.last_name,
r.created_at, r.updated_at`

const findReviewByIDSQL = `
SELECT` + reviewViewColumns + `
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.id = $1`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	view, err := scanReviewView(r.db.QueryRow(ctx, findReviewByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}

	if err := r.attachImages(ctx, []*queries.ReviewView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

const findReviewsBySpotFirstPageSQL = `
SELECT` + reviewViewColumns + `
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.spot_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (r *ReviewReadStore) FindBySpotFirstPage(ctx context.Context, spotID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, findReviewsBySpotFirstPageSQL, pgconv.UUIDToPgtype(spotID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews first page", err)
	}
	return r.collectWithImages(ctx, rows)
}

const findReviewsBySpotKeysetSQL = `
SELECT` + reviewViewColumns + `
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.spot_id = $1
  AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (r *ReviewReadStore) FindBySpotKeyset(ctx context.Context, spotID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, findReviewsBySpotKeysetSQL,
		pgconv.UUIDToPgtype(spotID), pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews keyset", err)
	}
	return r.collectWithImages(ctx, rows)
}

const findReviewsByUserSQL = `
SELECT r.id, r.spot_id, s.name, s.city,
       (SELECT i.url FROM spot_images i WHERE i.spot_id = s.id AND i.preview LIMIT 1) AS preview_image,
       r.stars, r.body, r.created_at, r.updated_at
FROM reviews r
JOIN spots s ON s.id = r.spot_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC`

func (r *ReviewReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserReviewItem, error) {
	rows, err := r.db.Query(ctx, findReviewsByUserSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by user", err)
	}
	defer rows.Close()

	var result []*queries.UserReviewItem
	for rows.Next() {
		var (
			id, spotID           pgtype.UUID
			spotName, spotCity   string
			previewImage         pgtype.Text
			stars                int32
			body                 string
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &spotID, &spotName, &spotCity, &previewImage,
			&stars, &body, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		result = append(result, &queries.UserReviewItem{
			ID:           uuid.UUID(id.Bytes),
			SpotID:       uuid.UUID(spotID.Bytes),
			SpotName:     spotName,
			SpotCity:     spotCity,
			PreviewImage: pgconv.StringPtrFromPgtype(previewImage),
			Stars:        stars,
			Body:         body,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
			UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reviews", err)
	}
	return result, nil
}

func (r *ReviewReadStore) collectWithImages(ctx context.Context, rows pgx.Rows) ([]*queries.ReviewView, error) {
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reviews", err)
	}

	if err := r.attachImages(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

const findReviewImagesSQL = `
SELECT review_id, id, url
FROM review_images
WHERE review_id = ANY($1)
ORDER BY created_at, id`

// attachImages loads images for a page of reviews in one query instead
// of one per row.
func (r *ReviewReadStore) attachImages(ctx context.Context, views []*queries.ReviewView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.ReviewView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.db.Query(ctx, findReviewImagesSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to find review images", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reviewID, imageID pgtype.UUID
			url               string
		)
		if err := rows.Scan(&reviewID, &imageID, &url); err != nil {
			return infra.WrapRepoErr("failed to scan review image", err)
		}
		if view, ok := byID[uuid.UUID(reviewID.Bytes)]; ok {
			view.Images = append(view.Images, queries.ReviewImageView{
				ID:  uuid.UUID(imageID.Bytes),
				URL: url,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read review images", err)
	}
	return nil
}

func scanReviewView(row interface{ Scan(dest ...any) error }) (*queries.ReviewView, error) {
	var (
		id, userID, spotID   pgtype.UUID
		stars                int32
		body                 string
		firstName, lastName  string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &userID, &spotID, &stars, &body,
		&firstName, &lastName, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &queries.ReviewView{
		ID:     uuid.UUID(id.Bytes),
		UserID: uuid.UUID(userID.Bytes),
		SpotID: uuid.UUID(spotID.Bytes),
		Stars:  stars,
		Body:   body,
		Reviewer: queries.GuestView{
			ID:        uuid.UUID(userID.Bytes),
			FirstName: firstName,
			LastName:  lastName,
		},
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
