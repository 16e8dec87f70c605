package queries

import (
	"time"

	"github.com/google/uuid"
)

// SpotView is the aggregated listing shape: avgRating is nil (never
// zero) when the spot has no reviews, previewImage is nil when no image
// is flagged preview. Both are recomputed on every read.
type SpotView struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Address      string
	City         string
	State        string
	Country      string
	Lat          float64
	Lng          float64
	Name         string
	Description  string
	Price        float64
	AvgRating    *float64
	PreviewImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SpotImageView struct {
	ID      uuid.UUID
	URL     string
	Preview bool
}

// GuestView is the booking author's identity, visible to the spot owner
// only.
type GuestView struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// SpotBookingItem is one row of a spot's booking calendar. Guest
// identity and timestamps are populated only when the requester owns the
// spot; everyone else still sees that the dates are taken.
type SpotBookingItem struct {
	ID        uuid.UUID
	SpotID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	UserID    *uuid.UUID
	Guest     *GuestView
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// UserBookingItem is one of the caller's own bookings with a spot
// summary attached.
type UserBookingItem struct {
	ID        uuid.UUID
	SpotID    uuid.UUID
	SpotName  string
	SpotCity  string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingView struct {
	ID        uuid.UUID
	SpotID    uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReviewImageView struct {
	ID  uuid.UUID
	URL string
}

type ReviewView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SpotID    uuid.UUID
	Stars     int32
	Body      string
	Reviewer  GuestView
	Images    []ReviewImageView
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserReviewItem is one of the caller's own reviews with the reviewed
// spot summarised alongside.
type UserReviewItem struct {
	ID           uuid.UUID
	SpotID       uuid.UUID
	SpotName     string
	SpotCity     string
	PreviewImage *string
	Stars        int32
	Body         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserView struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Username  string
}
