//go:build unit

// Package fake provides hand-written test doubles for the unit of work
// and its repositories. Each method delegates to an optional function
// field; unset fields fall back to a permissive default so tests only
// stub what they assert on.
package fake

import (
	"context"

	"stayspots/internal/domain/booking"
	"stayspots/internal/domain/review"
	"stayspots/internal/domain/spot"
	"stayspots/internal/infra"
	"stayspots/internal/infra/db"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotFoundErr mimics what command reads return for a missing row.
func NotFoundErr() error {
	return infra.WrapRepoErr("record not found", nil, infra.KindNotFound)
}

// ConflictErr mimics a unique or exclusion constraint violation.
func ConflictErr() error {
	return infra.WrapRepoErr("constraint violation", nil, infra.KindConflict)
}

type UnitOfWork struct {
	Tx *Tx
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Tx: &Tx{
			BookingRepo:     &BookingRepository{},
			ReviewRepo:      &ReviewRepository{},
			SpotRepo:        &SpotRepository{},
			SpotImageRepo:   &SpotImageRepository{},
			ReviewImageRepo: &ReviewImageRepository{},
			UserRepo:        &UserRepository{},
			CommandReads:    &CommandReads{},
		},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return u.Tx.CommandReads
}

type Tx struct {
	BookingRepo     *BookingRepository
	ReviewRepo      *ReviewRepository
	SpotRepo        *SpotRepository
	SpotImageRepo   *SpotImageRepository
	ReviewImageRepo *ReviewImageRepository
	UserRepo        *UserRepository
	CommandReads    *CommandReads
}

func (t *Tx) Bookings() shared.BookingRepository         { return t.BookingRepo }
func (t *Tx) Reviews() shared.ReviewRepository           { return t.ReviewRepo }
func (t *Tx) Spots() shared.SpotRepository               { return t.SpotRepo }
func (t *Tx) SpotImages() shared.SpotImageRepository     { return t.SpotImageRepo }
func (t *Tx) ReviewImages() shared.ReviewImageRepository { return t.ReviewImageRepo }
func (t *Tx) Users() shared.UserRepository               { return t.UserRepo }
func (t *Tx) Reads() shared.CommandReads                 { return t.CommandReads }
func (t *Tx) DB() db.DBTX                                { return nil }

type CommandReads struct {
	SpotByIDFn            func(ctx context.Context, id uuid.UUID) (*shared.SpotSnapshot, error)
	BookingByIDFn         func(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error)
	ReviewByIDFn          func(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error)
	ReviewBySpotAndUserFn func(ctx context.Context, spotID, userID uuid.UUID) (*shared.ReviewSnapshot, error)
	SpotImageByIDFn       func(ctx context.Context, id uuid.UUID) (*shared.SpotImageSnapshot, error)
	ReviewImageByIDFn     func(ctx context.Context, id uuid.UUID) (*shared.ReviewImageSnapshot, error)
	CountReviewImagesFn   func(ctx context.Context, reviewID uuid.UUID) (int, error)
	UserByCredentialFn    func(ctx context.Context, credential string) (*shared.UserCredentials, error)
	UserByEmailFn         func(ctx context.Context, email string) (*shared.UserCredentials, error)
	UserByUsernameFn      func(ctx context.Context, username string) (*shared.UserCredentials, error)
}

func (r *CommandReads) SpotByID(ctx context.Context, id uuid.UUID) (*shared.SpotSnapshot, error) {
	if r.SpotByIDFn == nil {
		return nil, NotFoundErr()
	}
	return r.SpotByIDFn(ctx, id)
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.BookingByIDFn == nil {
		return nil, NotFoundErr()
	}
	return r.BookingByIDFn(ctx, id)
}

func (r *CommandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	if r.ReviewByIDFn == nil {
		return nil, NotFoundErr()
	}
	return r.ReviewByIDFn(ctx, id)
}

func (r *CommandReads) ReviewBySpotAndUser(ctx context.Context, spotID, userID uuid.UUID) (*shared.ReviewSnapshot, error) {
	if r.ReviewBySpotAndUserFn == nil {
		return nil, NotFoundErr()
	}
	return r.ReviewBySpotAndUserFn(ctx, spotID, userID)
}

func (r *CommandReads) SpotImageByID(ctx context.Context, id uuid.UUID) (*shared.SpotImageSnapshot, error) {
	if r.SpotImageByIDFn == nil {
		return nil, NotFoundErr()
	}
	return r.SpotImageByIDFn(ctx, id)
}

func (r *CommandReads) ReviewImageByID(ctx context.Context, id uuid.UUID) (*shared.ReviewImageSnapshot, error) {
	if r.ReviewImageByIDFn == nil {
		return nil, NotFoundErr()
	}
	return r.ReviewImageByIDFn(ctx, id)
}

func (r *CommandReads) CountReviewImages(ctx context.Context, reviewID uuid.UUID) (int, error) {
	if r.CountReviewImagesFn == nil {
		return 0, nil
	}
	return r.CountReviewImagesFn(ctx, reviewID)
}

func (r *CommandReads) UserByCredential(ctx context.Context, credential string) (*shared.UserCredentials, error) {
	if r.UserByCredentialFn == nil {
		return nil, NotFoundErr()
	}
	return r.UserByCredentialFn(ctx, credential)
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	if r.UserByEmailFn == nil {
		return nil, NotFoundErr()
	}
	return r.UserByEmailFn(ctx, email)
}

func (r *CommandReads) UserByUsername(ctx context.Context, username string) (*shared.UserCredentials, error) {
	if r.UserByUsernameFn == nil {
		return nil, NotFoundErr()
	}
	return r.UserByUsernameFn(ctx, username)
}

type BookingRepository struct {
	CreateFn      func(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateDatesFn func(ctx context.Context, bookingID uuid.UUID, dates booking.DateRange) error
	DeleteFn      func(ctx context.Context, bookingID uuid.UUID) error
	HasOverlapFn  func(ctx context.Context, spotID uuid.UUID, dates booking.DateRange, excludeID uuid.UUID) (bool, error)
}

func (r *BookingRepository) Create(ctx context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.CreateFn == nil {
		return b.ID(), nil
	}
	return r.CreateFn(ctx, b)
}

func (r *BookingRepository) UpdateDates(ctx context.Context, _ db.DBTX, bookingID uuid.UUID, dates booking.DateRange) error {
	if r.UpdateDatesFn == nil {
		return nil
	}
	return r.UpdateDatesFn(ctx, bookingID, dates)
}

func (r *BookingRepository) Delete(ctx context.Context, _ db.DBTX, bookingID uuid.UUID) error {
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, bookingID)
}

func (r *BookingRepository) HasOverlap(ctx context.Context, _ db.DBTX, spotID uuid.UUID, dates booking.DateRange, excludeID uuid.UUID) (bool, error) {
	if r.HasOverlapFn == nil {
		return false, nil
	}
	return r.HasOverlapFn(ctx, spotID, dates, excludeID)
}

type ReviewRepository struct {
	CreateFn func(ctx context.Context, rev *review.Review) (uuid.UUID, error)
	UpdateFn func(ctx context.Context, rev *review.Review) error
	DeleteFn func(ctx context.Context, reviewID uuid.UUID) error
}

func (r *ReviewRepository) Create(ctx context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if r.CreateFn == nil {
		return rev.ID(), nil
	}
	return r.CreateFn(ctx, rev)
}

func (r *ReviewRepository) Update(ctx context.Context, _ db.DBTX, rev *review.Review) error {
	if r.UpdateFn == nil {
		return nil
	}
	return r.UpdateFn(ctx, rev)
}

func (r *ReviewRepository) Delete(ctx context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, reviewID)
}

type SpotRepository struct {
	CreateFn func(ctx context.Context, s *spot.Spot) (uuid.UUID, error)
	UpdateFn func(ctx context.Context, s *spot.Spot) error
	DeleteFn func(ctx context.Context, spotID uuid.UUID) error
}

func (r *SpotRepository) Create(ctx context.Context, _ db.DBTX, s *spot.Spot) (uuid.UUID, error) {
	if r.CreateFn == nil {
		return s.ID(), nil
	}
	return r.CreateFn(ctx, s)
}

func (r *SpotRepository) Update(ctx context.Context, _ db.DBTX, s *spot.Spot) error {
	if r.UpdateFn == nil {
		return nil
	}
	return r.UpdateFn(ctx, s)
}

func (r *SpotRepository) Delete(ctx context.Context, _ db.DBTX, spotID uuid.UUID) error {
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, spotID)
}

type SpotImageRepository struct {
	CreateFn       func(ctx context.Context, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error)
	ClearPreviewFn func(ctx context.Context, spotID uuid.UUID) error
	DeleteFn       func(ctx context.Context, imageID uuid.UUID) error
}

func (r *SpotImageRepository) Create(ctx context.Context, _ db.DBTX, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error) {
	if r.CreateFn == nil {
		return uuid.New(), nil
	}
	return r.CreateFn(ctx, spotID, url, preview)
}

func (r *SpotImageRepository) ClearPreview(ctx context.Context, _ db.DBTX, spotID uuid.UUID) error {
	if r.ClearPreviewFn == nil {
		return nil
	}
	return r.ClearPreviewFn(ctx, spotID)
}

func (r *SpotImageRepository) Delete(ctx context.Context, _ db.DBTX, imageID uuid.UUID) error {
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, imageID)
}

type ReviewImageRepository struct {
	CreateFn func(ctx context.Context, reviewID uuid.UUID, url string) (uuid.UUID, error)
	DeleteFn func(ctx context.Context, imageID uuid.UUID) error
}

func (r *ReviewImageRepository) Create(ctx context.Context, _ db.DBTX, reviewID uuid.UUID, url string) (uuid.UUID, error) {
	if r.CreateFn == nil {
		return uuid.New(), nil
	}
	return r.CreateFn(ctx, reviewID, url)
}

func (r *ReviewImageRepository) Delete(ctx context.Context, _ db.DBTX, imageID uuid.UUID) error {
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, imageID)
}

type UserRepository struct {
	CreateFn func(ctx context.Context, params shared.CreateUserParams) (uuid.UUID, error)
}

func (r *UserRepository) Create(ctx context.Context, _ db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	if r.CreateFn == nil {
		return uuid.New(), nil
	}
	return r.CreateFn(ctx, params)
}
