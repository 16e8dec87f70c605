package repository

import (
	"context"

	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the minimal lookups command handlers need for
// validation. It is bound to a DBTX so that, inside a unit of work, the
// reads observe the same transaction the subsequent write commits in.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const spotByIDSQL = `SELECT id, owner_id FROM spots WHERE id = $1`

func (r *CommandReads) SpotByID(ctx context.Context, id uuid.UUID) (*shared.SpotSnapshot, error) {
	var spotID, ownerID pgtype.UUID
	err := r.db.QueryRow(ctx, spotByIDSQL, pgconv.UUIDToPgtype(id)).Scan(&spotID, &ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot", err)
	}
	return &shared.SpotSnapshot{
		ID:      uuid.UUID(spotID.Bytes),
		OwnerID: uuid.UUID(ownerID.Bytes),
	}, nil
}

const bookingByIDSQL = `
SELECT b.id, b.spot_id, b.user_id, s.owner_id,
       b.start_date, b.end_date, b.created_at, b.updated_at
FROM bookings b
JOIN spots s ON s.id = b.spot_id
WHERE b.id = $1`

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		bookingID, spotID, userID, ownerID pgtype.UUID
		startDate, endDate                 pgtype.Date
		createdAt, updatedAt               pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, bookingByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &spotID, &userID, &ownerID,
		&startDate, &endDate, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &shared.BookingSnapshot{
		ID:          uuid.UUID(bookingID.Bytes),
		SpotID:      uuid.UUID(spotID.Bytes),
		UserID:      uuid.UUID(userID.Bytes),
		SpotOwnerID: uuid.UUID(ownerID.Bytes),
		StartDate:   pgconv.DateFromPgtype(startDate),
		EndDate:     pgconv.DateFromPgtype(endDate),
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:   pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

const reviewByIDSQL = `SELECT id, user_id, spot_id FROM reviews WHERE id = $1`

func (r *CommandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	return r.scanReviewSnapshot(r.db.QueryRow(ctx, reviewByIDSQL, pgconv.UUIDToPgtype(id)))
}

const reviewBySpotAndUserSQL = `SELECT id, user_id, spot_id FROM reviews WHERE spot_id = $1 AND user_id = $2`

func (r *CommandReads) ReviewBySpotAndUser(ctx context.Context, spotID, userID uuid.UUID) (*shared.ReviewSnapshot, error) {
	return r.scanReviewSnapshot(r.db.QueryRow(ctx, reviewBySpotAndUserSQL,
		pgconv.UUIDToPgtype(spotID), pgconv.UUIDToPgtype(userID)))
}

func (r *CommandReads) scanReviewSnapshot(row interface{ Scan(dest ...any) error }) (*shared.ReviewSnapshot, error) {
	var reviewID, userID, spotID pgtype.UUID
	err := row.Scan(&reviewID, &userID, &spotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return &shared.ReviewSnapshot{
		ID:     uuid.UUID(reviewID.Bytes),
		UserID: uuid.UUID(userID.Bytes),
		SpotID: uuid.UUID(spotID.Bytes),
	}, nil
}

const spotImageByIDSQL = `
SELECT i.id, i.spot_id, s.owner_id
FROM spot_images i
JOIN spots s ON s.id = i.spot_id
WHERE i.id = $1`

func (r *CommandReads) SpotImageByID(ctx context.Context, id uuid.UUID) (*shared.SpotImageSnapshot, error) {
	var imageID, spotID, ownerID pgtype.UUID
	err := r.db.QueryRow(ctx, spotImageByIDSQL, pgconv.UUIDToPgtype(id)).Scan(&imageID, &spotID, &ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot image not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot image", err)
	}
	return &shared.SpotImageSnapshot{
		ID:          uuid.UUID(imageID.Bytes),
		SpotID:      uuid.UUID(spotID.Bytes),
		SpotOwnerID: uuid.UUID(ownerID.Bytes),
	}, nil
}

const reviewImageByIDSQL = `
SELECT i.id, i.review_id, r.user_id
FROM review_images i
JOIN reviews r ON r.id = i.review_id
WHERE i.id = $1`

func (r *CommandReads) ReviewImageByID(ctx context.Context, id uuid.UUID) (*shared.ReviewImageSnapshot, error) {
	var imageID, reviewID, authorID pgtype.UUID
	err := r.db.QueryRow(ctx, reviewImageByIDSQL, pgconv.UUIDToPgtype(id)).Scan(&imageID, &reviewID, &authorID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review image not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review image", err)
	}
	return &shared.ReviewImageSnapshot{
		ID:       uuid.UUID(imageID.Bytes),
		ReviewID: uuid.UUID(reviewID.Bytes),
		AuthorID: uuid.UUID(authorID.Bytes),
	}, nil
}

const countReviewImagesSQL = `SELECT count(*) FROM review_images WHERE review_id = $1`

func (r *CommandReads) CountReviewImages(ctx context.Context, reviewID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, countReviewImagesSQL, pgconv.UUIDToPgtype(reviewID)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count review images", err)
	}
	return count, nil
}

const userByCredentialSQL = `
SELECT id, first_name, last_name, email, username, password_hash
FROM users
WHERE email = $1 OR username = $1`

func (r *CommandReads) UserByCredential(ctx context.Context, credential string) (*shared.UserCredentials, error) {
	return r.scanUserCredentials(r.db.QueryRow(ctx, userByCredentialSQL, credential))
}

const userByEmailSQL = `
SELECT id, first_name, last_name, email, username, password_hash
FROM users
WHERE email = $1`

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	return r.scanUserCredentials(r.db.QueryRow(ctx, userByEmailSQL, email))
}

const userByUsernameSQL = `
SELECT id, first_name, last_name, email, username, password_hash
FROM users
WHERE username = $1`

func (r *CommandReads) UserByUsername(ctx context.Context, username string) (*shared.UserCredentials, error) {
	return r.scanUserCredentials(r.db.QueryRow(ctx, userByUsernameSQL, username))
}

func (r *CommandReads) scanUserCredentials(row interface{ Scan(dest ...any) error }) (*shared.UserCredentials, error) {
	var (
		id                            pgtype.UUID
		firstName, lastName           string
		email, username, passwordHash string
	)
	err := row.Scan(&id, &firstName, &lastName, &email, &username, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &shared.UserCredentials{
		ID:           uuid.UUID(id.Bytes),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}
