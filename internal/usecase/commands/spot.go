package commands

import (
	"context"
	"time"

	"stayspots/internal/domain/authz"
	domspot "stayspots/internal/domain/spot"
	"stayspots/internal/infra"
	"stayspots/internal/pkg/errs"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpotForbidden     = errs.New("not authorized to modify this spot")
	ErrSpotImageNotFound = errs.New("spot image not found")
)

type SpotParams struct {
	Street      string
	City        string
	State       string
	Country     string
	Lat         float64
	Lng         float64
	Name        string
	Description string
	PriceCents  int64
}

type CreateSpotResult struct {
	SpotID uuid.UUID
}

type SpotCommands interface {
	Create(ctx context.Context, principal authz.Principal, params SpotParams) (*CreateSpotResult, error)
	Update(ctx context.Context, principal authz.Principal, spotID uuid.UUID, params SpotParams) error
	Delete(ctx context.Context, principal authz.Principal, spotID uuid.UUID) error
	AddImage(ctx context.Context, principal authz.Principal, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error)
	DeleteImage(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error
}

type spotUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSpotCommands(uow shared.UnitOfWork) SpotCommands {
	return &spotUseCaseImpl{uow: uow}
}

func buildSpot(id, ownerID uuid.UUID, params SpotParams) (*domspot.Spot, error) {
	address, err := domspot.NewAddress(params.Street, params.City, params.State, params.Country)
	if err != nil {
		return nil, err
	}
	coords, err := domspot.NewCoordinates(params.Lat, params.Lng)
	if err != nil {
		return nil, err
	}
	name, err := domspot.NewName(params.Name)
	if err != nil {
		return nil, err
	}
	price, err := domspot.NewPriceFromCents(params.PriceCents)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return domspot.NewSpot(ownerID, address, coords, name, params.Description, price)
	}
	if params.Description == "" {
		return nil, domspot.ErrEmptyDescription
	}
	// Timestamps are owned by the store; Update never touches created_at.
	return domspot.ReconstructSpot(id, ownerID, address, coords, name, params.Description, price, time.Time{}, time.Time{}), nil
}

func (uc *spotUseCaseImpl) Create(ctx context.Context, principal authz.Principal, params SpotParams) (*CreateSpotResult, error) {
	s, err := buildSpot(uuid.Nil, principal.ID, params)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Spots().Create(ctx, tx.DB(), s)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSpotResult{SpotID: createdID}, nil
}

func (uc *spotUseCaseImpl) Update(ctx context.Context, principal authz.Principal, spotID uuid.UUID, params SpotParams) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SpotByID(ctx, spotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.OwnerID}, authz.ActionEdit) {
			return ErrSpotForbidden
		}

		s, derr := buildSpot(spotID, snap.OwnerID, params)
		if derr != nil {
			return derr
		}
		return tx.Spots().Update(ctx, tx.DB(), s)
	})
}

func (uc *spotUseCaseImpl) Delete(ctx context.Context, principal authz.Principal, spotID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SpotByID(ctx, spotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.OwnerID}, authz.ActionDelete) {
			return ErrSpotForbidden
		}

		// Bookings, reviews and images are removed with the spot via FK
		// cascade.
		return tx.Spots().Delete(ctx, tx.DB(), spotID)
	})
}

func (uc *spotUseCaseImpl) AddImage(ctx context.Context, principal authz.Principal, spotID uuid.UUID, url string, preview bool) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SpotByID(ctx, spotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.OwnerID}, authz.ActionEdit) {
			return ErrSpotForbidden
		}

		if preview {
			if derr := tx.SpotImages().ClearPreview(ctx, tx.DB(), spotID); derr != nil {
				return derr
			}
		}

		id, derr := tx.SpotImages().Create(ctx, tx.DB(), spotID, url, preview)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *spotUseCaseImpl) DeleteImage(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SpotImageByID(ctx, imageID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotImageNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.SpotOwnerID}, authz.ActionDelete) {
			return ErrSpotForbidden
		}

		return tx.SpotImages().Delete(ctx, tx.DB(), imageID)
	})
}
