package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrBookingInPast    = errors.New("past bookings cannot be modified")
	ErrBookingStarted   = errors.New("bookings that have started cannot be deleted")
	ErrNotAuthor        = errors.New("booking may only be modified by its author")
)

type Booking struct {
	id        uuid.UUID
	spotID    uuid.UUID
	userID    uuid.UUID
	dates     DateRange
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(spotID, userID uuid.UUID, dates DateRange) *Booking {
	return &Booking{
		id:     uuid.New(),
		spotID: spotID,
		userID: userID,
		dates:  dates,
	}
}

func ReconstructBooking(id, spotID, userID uuid.UUID, dates DateRange, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		spotID:    spotID,
		userID:    userID,
		dates:     dates,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule moves the booking to a new interval. The author is the only
// actor allowed to change dates, and a stay whose end date has passed is
// frozen.
func (b *Booking) Reschedule(actorID uuid.UUID, newDates DateRange, today time.Time) error {
	if b.userID != actorID {
		return ErrNotAuthor
	}
	if b.dates.EndedBefore(today) {
		return ErrBookingInPast
	}
	b.dates = newDates
	return nil
}

// CancellableBy reports whether the actor may delete this booking: the
// guest who made it, or the owner of the spot it reserves. Either way a
// stay that has already begun cannot be cancelled.
func (b *Booking) CancellableBy(actorID, spotOwnerID uuid.UUID, today time.Time) error {
	if b.userID != actorID && spotOwnerID != actorID {
		return ErrNotAuthor
	}
	if b.dates.StartedBy(today) {
		return ErrBookingStarted
	}
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SpotID() uuid.UUID    { return b.spotID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
