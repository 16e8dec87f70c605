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

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingByIDSQL = `
SELECT id, spot_id, user_id, start_date, end_date, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		bookingID, spotID, userID pgtype.UUID
		startDate, endDate        pgtype.Date
		createdAt, updatedAt      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &spotID, &userID, &startDate, &endDate, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:        uuid.UUID(bookingID.Bytes),
		SpotID:    uuid.UUID(spotID.Bytes),
		UserID:    uuid.UUID(userID.Bytes),
		StartDate: pgconv.DateFromPgtype(startDate),
		EndDate:   pgconv.DateFromPgtype(endDate),
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

// Rows come back unredacted; the query layer strips guest identity for
// requesters who do not own the spot.
const findBookingsBySpotSQL = `
SELECT b.id, b.spot_id, b.user_id, b.start_date, b.end_date,
       b.created_at, b.updated_at,
       u.first_name, u.last_name
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.spot_id = $1
ORDER BY b.start_date, b.id`

func (r *BookingReadStore) FindBySpot(ctx context.Context, spotID uuid.UUID) ([]*queries.SpotBookingRecord, error) {
	rows, err := r.db.Query(ctx, findBookingsBySpotSQL, pgconv.UUIDToPgtype(spotID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by spot", err)
	}
	defer rows.Close()

	var result []*queries.SpotBookingRecord
	for rows.Next() {
		var (
			bookingID, bSpotID, userID pgtype.UUID
			startDate, endDate         pgtype.Date
			createdAt, updatedAt       pgtype.Timestamptz
			firstName, lastName        string
		)
		if err := rows.Scan(&bookingID, &bSpotID, &userID, &startDate, &endDate,
			&createdAt, &updatedAt, &firstName, &lastName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, &queries.SpotBookingRecord{
			Booking: queries.BookingView{
				ID:        uuid.UUID(bookingID.Bytes),
				SpotID:    uuid.UUID(bSpotID.Bytes),
				UserID:    uuid.UUID(userID.Bytes),
				StartDate: pgconv.DateFromPgtype(startDate),
				EndDate:   pgconv.DateFromPgtype(endDate),
				CreatedAt: pgconv.TimeFromPgtype(createdAt),
				UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
			},
			Guest: queries.GuestView{
				ID:        uuid.UUID(userID.Bytes),
				FirstName: firstName,
				LastName:  lastName,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return result, nil
}

const findBookingsByUserSQL = `
SELECT b.id, b.spot_id, s.name, s.city, b.start_date, b.end_date,
       b.created_at, b.updated_at
FROM bookings b
JOIN spots s ON s.id = b.spot_id
WHERE b.user_id = $1
ORDER BY b.start_date, b.id`

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserBookingItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	defer rows.Close()

	var result []*queries.UserBookingItem
	for rows.Next() {
		var (
			bookingID, spotID    pgtype.UUID
			spotName, spotCity   string
			startDate, endDate   pgtype.Date
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&bookingID, &spotID, &spotName, &spotCity,
			&startDate, &endDate, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, &queries.UserBookingItem{
			ID:        uuid.UUID(bookingID.Bytes),
			SpotID:    uuid.UUID(spotID.Bytes),
			SpotName:  spotName,
			SpotCity:  spotCity,
			StartDate: pgconv.DateFromPgtype(startDate),
			EndDate:   pgconv.DateFromPgtype(endDate),
			CreatedAt: pgconv.TimeFromPgtype(createdAt),
			UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return result, nil
}
