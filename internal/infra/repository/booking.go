package repository

import (
	"context"

	"stayspots/internal/domain/booking"
	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, spot_id, user_id, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.SpotID()),
		pgconv.UUIDToPgtype(b.UserID()),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const updateBookingDatesSQL = `
UPDATE bookings
SET start_date = $2, end_date = $3, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateDates(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, dates booking.DateRange) error {
	tag, err := tx.Exec(ctx, updateBookingDatesSQL,
		pgconv.UUIDToPgtype(bookingID),
		pgconv.DateToPgtype(dates.Start()),
		pgconv.DateToPgtype(dates.End()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking dates", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteBookingSQL, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// Half-open interval test: two stays conflict iff each starts before the
// other ends, so a checkout date may equal another check-in date.
const hasOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE spot_id = $1
      AND id != $2
      AND start_date < $4
      AND $3 < end_date
)`

func (r *BookingRepository) HasOverlap(ctx context.Context, tx db.DBTX, spotID uuid.UUID, dates booking.DateRange, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, hasOverlapSQL,
		pgconv.UUIDToPgtype(spotID),
		pgconv.UUIDToPgtype(excludeID),
		pgconv.DateToPgtype(dates.Start()),
		pgconv.DateToPgtype(dates.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}
