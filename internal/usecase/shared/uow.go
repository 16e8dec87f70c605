package shared

import (
	"context"

	"stayspots/internal/domain/booking"
	"stayspots/internal/domain/review"
	"stayspots/internal/domain/spot"
	"stayspots/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Spots() SpotRepository
	SpotImages() SpotImageRepository
	ReviewImages() ReviewImageRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal lookups command handlers need for
// validation. Bound to the transaction when obtained via Tx.Reads(), so
// conflict checks and the subsequent write share one atomic scope.
type CommandReads interface {
	SpotByID(ctx context.Context, id uuid.UUID) (*SpotSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewBySpotAndUser(ctx context.Context, spotID, userID uuid.UUID) (*ReviewSnapshot, error)
	SpotImageByID(ctx context.Context, id uuid.UUID) (*SpotImageSnapshot, error)
	ReviewImageByID(ctx context.Context, id uuid.UUID) (*ReviewImageSnapshot, error)
	CountReviewImages(ctx context.Context, reviewID uuid.UUID) (int, error)
	UserByCredential(ctx context.Context, credential string) (*UserCredentials, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
	UserByUsername(ctx context.Context, username string) (*UserCredentials, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateDates(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, dates booking.DateRange) error
	Delete(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error
	// HasOverlap runs the strict half-open interval test against the
	// spot's active bookings, excluding excludeID (uuid.Nil to exclude
	// nothing).
	HasOverlap(ctx context.Context, tx db.DBTX, spotID uuid.UUID, dates booking.DateRange, excludeID uuid.UUID) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type SpotRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *spot.Spot) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *spot.Spot) error
	Delete(ctx context.Context, tx db.DBTX, spotID uuid.UUID) error
}

type SpotImageRepository interface {
	Create(ctx context.Context, tx db.DBTX, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error)
	// ClearPreview demotes the current preview image, keeping the
	// at-most-one-preview invariant before a new preview is inserted.
	ClearPreview(ctx context.Context, tx db.DBTX, spotID uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, imageID uuid.UUID) error
}

type ReviewImageRepository interface {
	Create(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, url string) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, imageID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateUserParams) (uuid.UUID, error)
}

type CreateUserParams struct {
	FirstName    string
	LastName     string
	Email        string
	Username     string
	PasswordHash string
}
