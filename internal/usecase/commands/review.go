package commands

import (
	"context"

	"stayspots/internal/domain/authz"
	domreview "stayspots/internal/domain/review"
	"stayspots/internal/infra"
	"stayspots/internal/pkg/clock"
	"stayspots/internal/pkg/errs"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound      = errs.New("review not found")
	ErrDuplicateReview     = errs.New("user already has a review for this spot")
	ErrReviewForbidden     = errs.New("not authorized to modify this review")
	ErrReviewImageNotFound = errs.New("review image not found")
	ErrTooManyReviewImages = errs.New("maximum number of images reached for this review")
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type CreateReviewParams struct {
	SpotID uuid.UUID
	Stars  int
	Body   string
}

type UpdateReviewParams struct {
	Stars int
	Body  string
}

type ReviewCommands interface {
	Create(ctx context.Context, principal authz.Principal, params CreateReviewParams) (*CreateReviewResult, error)
	Update(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, params UpdateReviewParams) error
	Delete(ctx context.Context, principal authz.Principal, reviewID uuid.UUID) error
	AddImage(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, url string) (uuid.UUID, error)
	DeleteImage(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Create(ctx context.Context, principal authz.Principal, params CreateReviewParams) (*CreateReviewResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SpotByID(ctx, params.SpotID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		// Pre-check keeps the common duplicate case a clean error; the
		// unique (user_id, spot_id) index backstops races.
		existing, derr := tx.Reads().ReviewBySpotAndUser(ctx, params.SpotID, principal.ID)
		if derr != nil && !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}
		if existing != nil {
			return ErrDuplicateReview
		}

		rev, derr := domreview.NewReview(uuid.Nil, principal.ID, params.SpotID, params.Stars, params.Body, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDuplicateReview
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) Update(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, params UpdateReviewParams) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.UserID}, authz.ActionEdit) {
			return ErrReviewForbidden
		}

		rev, derr := domreview.NewReview(snap.ID, snap.UserID, snap.SpotID, params.Stars, params.Body, uc.clock.Now())
		if derr != nil {
			return derr
		}
		return tx.Reviews().Update(ctx, tx.DB(), rev)
	})
}

func (uc *reviewUseCaseImpl) Delete(ctx context.Context, principal authz.Principal, reviewID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.UserID}, authz.ActionDelete) {
			return ErrReviewForbidden
		}

		// Review images go with the review via FK cascade.
		return tx.Reviews().Delete(ctx, tx.DB(), reviewID)
	})
}

func (uc *reviewUseCaseImpl) AddImage(ctx context.Context, principal authz.Principal, reviewID uuid.UUID, url string) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return derr
		}

		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.UserID}, authz.ActionEdit) {
			return ErrReviewForbidden
		}

		count, derr := tx.Reads().CountReviewImages(ctx, reviewID)
		if derr != nil {
			return derr
		}
		if count >= domreview.MaxImagesPerReview {
			return ErrTooManyReviewImages
		}

		id, derr := tx.ReviewImages().Create(ctx, tx.DB(), reviewID, url)
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

func (uc *reviewUseCaseImpl) DeleteImage(ctx context.Context, principal authz.Principal, imageID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewImageByID(ctx, imageID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewImageNotFound
			}
			return derr
		}

		// Image removal follows the parent review's authorship.
		if !authz.CanAct(principal, authz.Resource{AuthorID: snap.AuthorID}, authz.ActionDelete) {
			return ErrReviewForbidden
		}

		return tx.ReviewImages().Delete(ctx, tx.DB(), imageID)
	})
}
