//go:build unit || e2e

package builder

import (
	"time"

	dombooking "stayspots/internal/domain/booking"
	reqdto "stayspots/internal/handler/dto/request"
	"stayspots/internal/usecase/queries"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	SpotID      uuid.UUID
	SpotOwnerID uuid.UUID
	SpotName    string
	SpotCity    string
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7)
	return &BookingBuilder{
		ID:          uuid.New(),
		SpotID:      uuid.New(),
		SpotOwnerID: uuid.New(),
		SpotName:    "Harbor Loft",
		SpotCity:    "Portland",
		UserID:      uuid.New(),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 3),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDates() (dombooking.DateRange, error) {
	return dombooking.NewDateRange(b.StartDate, b.EndDate)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	dates, err := b.BuildDates()
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(b.ID, b.SpotID, b.UserID, dates, b.CreatedAt, b.UpdatedAt), nil
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingDatesRequest {
	return reqdto.BookingDatesRequest{
		StartDate: b.StartDate.Format("2006-01-02"),
		EndDate:   b.EndDate.Format("2006-01-02"),
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		SpotID:      b.SpotID,
		UserID:      b.UserID,
		SpotOwnerID: b.SpotOwnerID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildUserItem() *queries.UserBookingItem {
	return &queries.UserBookingItem{
		ID:        b.ID,
		SpotID:    b.SpotID,
		SpotName:  b.SpotName,
		SpotCity:  b.SpotCity,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithSpotID(spotID uuid.UUID) *BookingBuilder {
	b.SpotID = spotID
	return b
}

func (b *BookingBuilder) WithSpotOwnerID(ownerID uuid.UUID) *BookingBuilder {
	b.SpotOwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

// AsPast shifts the stay so its exclusive end date is already behind
// today.
func (b *BookingBuilder) AsPast(today time.Time) *BookingBuilder {
	b.StartDate = today.AddDate(0, 0, -10)
	b.EndDate = today.AddDate(0, 0, -7)
	return b
}

// AsStarted shifts the stay so check-in is today and checkout is still
// ahead.
func (b *BookingBuilder) AsStarted(today time.Time) *BookingBuilder {
	b.StartDate = today
	b.EndDate = today.AddDate(0, 0, 3)
	return b
}
