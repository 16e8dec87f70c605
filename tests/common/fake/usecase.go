//go:build unit

package fake

import (
	"context"
	"time"

	"stayspots/internal/domain/authz"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
)

// Handler tests pair each fake with the real handler; unset function
// fields return a not-found error so a missed stub fails loudly.

type BookingCommands struct {
	CreateFn     func(ctx context.Context, principal authz.Principal, spotID uuid.UUID, startDate, endDate time.Time) (*commands.CreateBookingResult, error)
	RescheduleFn func(ctx context.Context, principal authz.Principal, bookingID uuid.UUID, startDate, endDate time.Time) error
	CancelFn     func(ctx context.Context, principal authz.Principal, bookingID uuid.UUID) error
}

func (f *BookingCommands) Create(ctx context.Context, principal authz.Principal, spotID uuid.UUID, startDate, endDate time.Time) (*commands.CreateBookingResult, error) {
	return f.CreateFn(ctx, principal, spotID, startDate, endDate)
}

func (f *BookingCommands) Reschedule(ctx context.Context, principal authz.Principal, bookingID uuid.UUID, startDate, endDate time.Time) error {
	return f.RescheduleFn(ctx, principal, bookingID, startDate, endDate)
}

func (f *BookingCommands) Cancel(ctx context.Context, principal authz.Principal, bookingID uuid.UUID) error {
	return f.CancelFn(ctx, principal, bookingID)
}

type BookingQueries struct {
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	ListForSpotFn func(ctx context.Context, spotID uuid.UUID, principal authz.Principal) ([]*queries.SpotBookingItem, error)
	ListForUserFn func(ctx context.Context, userID uuid.UUID) ([]*queries.UserBookingItem, error)
}

func (f *BookingQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *BookingQueries) ListForSpot(ctx context.Context, spotID uuid.UUID, principal authz.Principal) ([]*queries.SpotBookingItem, error) {
	return f.ListForSpotFn(ctx, spotID, principal)
}

func (f *BookingQueries) ListForUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserBookingItem, error) {
	return f.ListForUserFn(ctx, userID)
}

type ReviewCommands struct {
	CreateFn      func(ctx context.Context, principal authz.Principal, params commands.CreateReviewParams) (*commands.CreateReviewResult, error)
	UpdateFn      func(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, params commands.UpdateReviewParams) error
	DeleteFn      func(ctx context.Context, principal authz.Principal, reviewID uuid.UUID) error
	AddImageFn    func(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, url string) (uuid.UUID, error)
	DeleteImageFn func(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error
}

func (f *ReviewCommands) Create(ctx context.Context, principal authz.Principal, params commands.CreateReviewParams) (*commands.CreateReviewResult, error) {
	return f.CreateFn(ctx, principal, params)
}

func (f *ReviewCommands) Update(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, params commands.UpdateReviewParams) error {
	return f.UpdateFn(ctx, principal, reviewID, params)
}

func (f *ReviewCommands) Delete(ctx context.Context, principal authz.Principal, reviewID uuid.UUID) error {
	return f.DeleteFn(ctx, principal, reviewID)
}

func (f *ReviewCommands) AddImage(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, url string) (uuid.UUID, error) {
	return f.AddImageFn(ctx, principal, reviewID, url)
}

func (f *ReviewCommands) DeleteImage(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error {
	return f.DeleteImageFn(ctx, principal, imageID)
}

type ReviewQueries struct {
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error)
	ListBySpotFn func(ctx context.Context, spotID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.ReviewView, *queries.Cursor, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*queries.UserReviewItem, error)
}

func (f *ReviewQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *ReviewQueries) ListBySpot(ctx context.Context, spotID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.ReviewView, *queries.Cursor, error) {
	return f.ListBySpotFn(ctx, spotID, cursor, limit)
}

func (f *ReviewQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserReviewItem, error) {
	return f.ListByUserFn(ctx, userID)
}

type SpotCommands struct {
	CreateFn      func(ctx context.Context, principal authz.Principal, params commands.SpotParams) (*commands.CreateSpotResult, error)
	UpdateFn      func(ctx context.Context, principal authz.Principal, spotID uuid.UUID, params commands.SpotParams) error
	DeleteFn      func(ctx context.Context, principal authz.Principal, spotID uuid.UUID) error
	AddImageFn    func(ctx context.Context, principal authz.Principal, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error)
	DeleteImageFn func(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error
}

func (f *SpotCommands) Create(ctx context.Context, principal authz.Principal, params commands.SpotParams) (*commands.CreateSpotResult, error) {
	return f.CreateFn(ctx, principal, params)
}

func (f *SpotCommands) Update(ctx context.Context, principal authz.Principal, spotID uuid.UUID, params commands.SpotParams) error {
	return f.UpdateFn(ctx, principal, spotID, params)
}

func (f *SpotCommands) Delete(ctx context.Context, principal authz.Principal, spotID uuid.UUID) error {
	return f.DeleteFn(ctx, principal, spotID)
}

func (f *SpotCommands) AddImage(ctx context.Context, principal authz.Principal, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error) {
	return f.AddImageFn(ctx, principal, spotID, url, preview)
}

func (f *SpotCommands) DeleteImage(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error {
	return f.DeleteImageFn(ctx, principal, imageID)
}

type SpotQueries struct {
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*queries.SpotView, error)
	GetImagesFn func(ctx context.Context, spotID uuid.UUID) ([]*queries.SpotImageView, error)
	ListFn      func(ctx context.Context, cursor *queries.Cursor, limit int) ([]*queries.SpotView, *queries.Cursor, error)
}

func (f *SpotQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *SpotQueries) GetImages(ctx context.Context, spotID uuid.UUID) ([]*queries.SpotImageView, error) {
	return f.GetImagesFn(ctx, spotID)
}

func (f *SpotQueries) List(ctx context.Context, cursor *queries.Cursor, limit int) ([]*queries.SpotView, *queries.Cursor, error) {
	return f.ListFn(ctx, cursor, limit)
}

type AuthCommands struct {
	SignUpFn func(ctx context.Context, params commands.SignUpParams) (*commands.AuthResult, error)
	LoginFn  func(ctx context.Context, params commands.LoginParams) (*commands.AuthResult, error)
}

func (f *AuthCommands) SignUp(ctx context.Context, params commands.SignUpParams) (*commands.AuthResult, error) {
	return f.SignUpFn(ctx, params)
}

func (f *AuthCommands) Login(ctx context.Context, params commands.LoginParams) (*commands.AuthResult, error) {
	return f.LoginFn(ctx, params)
}

type UserQueries struct {
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*queries.UserView, error)
}

func (f *UserQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	return f.GetByIDFn(ctx, id)
}
