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

type SpotReadStore struct {
	db db.DBTX
}

func NewSpotReadStore(dbtx db.DBTX) *SpotReadStore {
	return &SpotReadStore{db: dbtx}
}

// avgRating and previewImage are recomputed on every read rather than
// denormalised; NULL avg means "no reviews yet", never zero stars.
const spotViewColumns = `
s.id, s.owner_id, s.street, s.city, s.state, s.country,
s.lat, s.lng, s.name, s.description, s.price,
avg(r.stars)::numeric AS avg_rating,
(SELECT i.url FROM spot_images i WHERE i.spot_id = s.id AND i.preview LIMIT 1) AS preview_image,
s.created_at, s.updated_at`

const spotViewGroupBy = `GROUP BY s.id`

const findSpotByIDSQL = `
SELECT` + spotViewColumns + `
FROM spots s
LEFT JOIN reviews r ON r.spot_id = s.id
WHERE s.id = $1
` + spotViewGroupBy

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	view, err := scanSpotView(r.db.QueryRow(ctx, findSpotByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot by ID", err)
	}
	return view, nil
}

const findSpotsFirstPageSQL = `
SELECT` + spotViewColumns + `
FROM spots s
LEFT JOIN reviews r ON r.spot_id = s.id
` + spotViewGroupBy + `
ORDER BY s.created_at DESC, s.id DESC
LIMIT $1`

func (r *SpotReadStore) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.SpotView, error) {
	rows, err := r.db.Query(ctx, findSpotsFirstPageSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find spots first page", err)
	}
	return collectSpotViews(rows)
}

const findSpotsKeysetSQL = `
SELECT` + spotViewColumns + `
FROM spots s
LEFT JOIN reviews r ON r.spot_id = s.id
WHERE (s.created_at, s.id) < ($1, $2)
` + spotViewGroupBy + `
ORDER BY s.created_at DESC, s.id DESC
LIMIT $3`

func (r *SpotReadStore) FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SpotView, error) {
	rows, err := r.db.Query(ctx, findSpotsKeysetSQL,
		pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find spots keyset", err)
	}
	return collectSpotViews(rows)
}

const findSpotImagesSQL = `
SELECT id, url, preview
FROM spot_images
WHERE spot_id = $1
ORDER BY created_at, id`

func (r *SpotReadStore) FindImages(ctx context.Context, spotID uuid.UUID) ([]*queries.SpotImageView, error) {
	rows, err := r.db.Query(ctx, findSpotImagesSQL, pgconv.UUIDToPgtype(spotID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find spot images", err)
	}
	defer rows.Close()

	var result []*queries.SpotImageView
	for rows.Next() {
		var (
			id      pgtype.UUID
			url     string
			preview bool
		)
		if err := rows.Scan(&id, &url, &preview); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot image", err)
		}
		result = append(result, &queries.SpotImageView{
			ID:      uuid.UUID(id.Bytes),
			URL:     url,
			Preview: preview,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spot images", err)
	}
	return result, nil
}

func collectSpotViews(rows pgx.Rows) ([]*queries.SpotView, error) {
	defer rows.Close()

	var result []*queries.SpotView
	for rows.Next() {
		view, err := scanSpotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spots", err)
	}
	return result, nil
}

func scanSpotView(row interface{ Scan(dest ...any) error }) (*queries.SpotView, error) {
	var (
		id, ownerID                  pgtype.UUID
		street, city, state, country string
		lat, lng                     float64
		name, description            string
		price, avgRating             pgtype.Numeric
		previewImage                 pgtype.Text
		createdAt, updatedAt         pgtype.Timestamptz
	)
	err := row.Scan(&id, &ownerID, &street, &city, &state, &country,
		&lat, &lng, &name, &description, &price,
		&avgRating, &previewImage, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	priceValue, err := pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, err
	}
	avgPtr, err := pgconv.Float64PtrFromNumeric(avgRating)
	if err != nil {
		return nil, err
	}

	return &queries.SpotView{
		ID:           uuid.UUID(id.Bytes),
		OwnerID:      uuid.UUID(ownerID.Bytes),
		Address:      street,
		City:         city,
		State:        state,
		Country:      country,
		Lat:          lat,
		Lng:          lng,
		Name:         name,
		Description:  description,
		Price:        priceValue,
		AvgRating:    avgPtr,
		PreviewImage: pgconv.StringPtrFromPgtype(previewImage),
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
