package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindBySpotFirstPage(ctx context.Context, spotID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindBySpotKeyset(ctx context.Context, spotID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*UserReviewItem, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserReviewItem, error)
}

type reviewQueriesImpl struct {
	reviews ReviewReadStore
}

func NewReviewQueries(reviews ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	return q.reviews.FindByID(ctx, id)
}

func (q *reviewQueriesImpl) ListBySpot(ctx context.Context, spotID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		views []*ReviewView
		err   error
	)
	if cursor == nil || cursor.After == "" {
		views, err = q.reviews.FindBySpotFirstPage(ctx, spotID, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(cursor.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		views, err = q.reviews.FindBySpotKeyset(ctx, spotID, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(views) == limit {
		last := views[len(views)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return views, next, nil
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserReviewItem, error) {
	return q.reviews.FindByUser(ctx, userID)
}
