package queries

import (
	"context"

	"stayspots/internal/domain/authz"

	"github.com/google/uuid"
)

// SpotBookingRecord is the unredacted row the read store returns; the
// query layer decides which fields the requester may see.
type SpotBookingRecord struct {
	Booking BookingView
	Guest   GuestView
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindBySpot(ctx context.Context, spotID uuid.UUID) ([]*SpotBookingRecord, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*UserBookingItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListForSpot applies the visibility rule: everyone sees which dates
	// are taken, only the spot owner sees who took them.
	ListForSpot(ctx context.Context, spotID uuid.UUID, principal authz.Principal) ([]*SpotBookingItem, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*UserBookingItem, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	spots    SpotReadStore
}

func NewBookingQueries(bookings BookingReadStore, spots SpotReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, spots: spots}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.bookings.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListForSpot(ctx context.Context, spotID uuid.UUID, principal authz.Principal) ([]*SpotBookingItem, error) {
	spotView, err := q.spots.FindByID(ctx, spotID)
	if err != nil {
		return nil, err
	}

	isOwner := authz.CanAct(principal, authz.Resource{
		AuthorID:    spotView.OwnerID,
		SpotOwnerID: spotView.OwnerID,
	}, authz.ActionViewPrivate)

	records, err := q.bookings.FindBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	items := make([]*SpotBookingItem, len(records))
	for i, rec := range records {
		item := &SpotBookingItem{
			ID:        rec.Booking.ID,
			SpotID:    rec.Booking.SpotID,
			StartDate: rec.Booking.StartDate,
			EndDate:   rec.Booking.EndDate,
		}
		if isOwner {
			userID := rec.Booking.UserID
			guest := rec.Guest
			createdAt := rec.Booking.CreatedAt
			updatedAt := rec.Booking.UpdatedAt
			item.UserID = &userID
			item.Guest = &guest
			item.CreatedAt = &createdAt
			item.UpdatedAt = &updatedAt
		}
		items[i] = item
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*UserBookingItem, error) {
	return q.bookings.FindByUser(ctx, userID)
}
