package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type SpotSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

type BookingSnapshot struct {
	ID          uuid.UUID
	SpotID      uuid.UUID
	UserID      uuid.UUID
	SpotOwnerID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReviewSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	SpotID uuid.UUID
}

type SpotImageSnapshot struct {
	ID          uuid.UUID
	SpotID      uuid.UUID
	SpotOwnerID uuid.UUID
}

type ReviewImageSnapshot struct {
	ID       uuid.UUID
	ReviewID uuid.UUID
	AuthorID uuid.UUID
}

type UserCredentials struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Username     string
	PasswordHash string
}
