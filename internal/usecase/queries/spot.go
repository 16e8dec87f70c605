package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SpotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	FindAllFirstPage(ctx context.Context, limit int32) ([]*SpotView, error)
	FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SpotView, error)
	FindImages(ctx context.Context, spotID uuid.UUID) ([]*SpotImageView, error)
}

type SpotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	GetImages(ctx context.Context, spotID uuid.UUID) ([]*SpotImageView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*SpotView, *Cursor, error)
}

type spotQueriesImpl struct {
	spots SpotReadStore
}

func NewSpotQueries(spots SpotReadStore) SpotQueries {
	return &spotQueriesImpl{spots: spots}
}

func (q *spotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error) {
	return q.spots.FindByID(ctx, id)
}

func (q *spotQueriesImpl) GetImages(ctx context.Context, spotID uuid.UUID) ([]*SpotImageView, error) {
	return q.spots.FindImages(ctx, spotID)
}

func (q *spotQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*SpotView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		views []*SpotView
		err   error
	)
	if cursor == nil || cursor.After == "" {
		views, err = q.spots.FindAllFirstPage(ctx, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(cursor.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		views, err = q.spots.FindAllKeyset(ctx, lastCreatedAt, lastID, int32(limit))
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
