package commands

import (
	"context"
	"errors"
	"time"

	"stayspots/internal/domain/authz"
	domainbooking "stayspots/internal/domain/booking"
	"stayspots/internal/infra"
	"stayspots/internal/pkg/clock"
	"stayspots/internal/pkg/errs"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpotNotFound     = errs.New("spot not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingConflict  = errs.New("spot is already booked for the specified dates")
	ErrBookingForbidden = errs.New("not authorized to modify this booking")
	ErrBookingInPast    = errs.New("past bookings cannot be modified")
	ErrBookingStarted   = errs.New("bookings that have started cannot be deleted")
	ErrInvalidDateRange = errs.New("end date must be after start date")
)

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, principal authz.Principal, spotID uuid.UUID, startDate, endDate time.Time) (*CreateBookingResult, error)
	Reschedule(ctx context.Context, principal authz.Principal, bookingID uuid.UUID, startDate, endDate time.Time) error
	Cancel(ctx context.Context, principal authz.Principal, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

// Create inserts a booking after the overlap check, both inside one
// transaction. A concurrent insert that slips between check and write
// trips the bookings exclusion constraint, which the repository surfaces
// as KindConflict; either path reports the same ErrBookingConflict.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, principal authz.Principal, spotID uuid.UUID, startDate, endDate time.Time) (*CreateBookingResult, error) {
	dates, err := domainbooking.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SpotByID(ctx, spotID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		overlap, derr := tx.Bookings().HasOverlap(ctx, tx.DB(), spotID, dates, uuid.Nil)
		if derr != nil {
			return derr
		}
		if overlap {
			return ErrBookingConflict
		}

		b := domainbooking.NewBooking(spotID, principal.ID, dates)
		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Reschedule(ctx context.Context, principal authz.Principal, bookingID uuid.UUID, startDate, endDate time.Time) error {
	newDates, err := domainbooking.NewDateRange(startDate, endDate)
	if err != nil {
		return errs.Mark(err, ErrInvalidDateRange)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		current, derr := uc.rehydrate(snap)
		if derr != nil {
			return derr
		}

		if derr = current.Reschedule(principal.ID, newDates, clock.Today(uc.clock)); derr != nil {
			return uc.mapDomainErr(derr)
		}

		overlap, derr := tx.Bookings().HasOverlap(ctx, tx.DB(), snap.SpotID, newDates, bookingID)
		if derr != nil {
			return derr
		}
		if overlap {
			return ErrBookingConflict
		}

		if derr = tx.Bookings().UpdateDates(ctx, tx.DB(), bookingID, newDates); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return derr
		}
		return nil
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, principal authz.Principal, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{
			AuthorID:       snap.UserID,
			SpotOwnerID:    snap.SpotOwnerID,
			OwnerMayDelete: true,
		}, authz.ActionDelete) {
			return ErrBookingForbidden
		}

		current, derr := uc.rehydrate(snap)
		if derr != nil {
			return derr
		}
		if derr = current.CancellableBy(principal.ID, snap.SpotOwnerID, clock.Today(uc.clock)); derr != nil {
			return uc.mapDomainErr(derr)
		}

		return tx.Bookings().Delete(ctx, tx.DB(), bookingID)
	})
}

func (uc *bookingUseCaseImpl) rehydrate(snap *shared.BookingSnapshot) (*domainbooking.Booking, error) {
	dates, err := domainbooking.NewDateRange(snap.StartDate, snap.EndDate)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid dates")
	}
	return domainbooking.ReconstructBooking(snap.ID, snap.SpotID, snap.UserID, dates, snap.CreatedAt, snap.UpdatedAt), nil
}

func (uc *bookingUseCaseImpl) mapDomainErr(err error) error {
	switch {
	case errors.Is(err, domainbooking.ErrNotAuthor):
		return errs.Mark(err, ErrBookingForbidden)
	case errors.Is(err, domainbooking.ErrBookingInPast):
		return errs.Mark(err, ErrBookingInPast)
	case errors.Is(err, domainbooking.ErrBookingStarted):
		return errs.Mark(err, ErrBookingStarted)
	default:
		return err
	}
}
