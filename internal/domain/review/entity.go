package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	spotID    uuid.UUID
	stars     Stars
	body      Body
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, userID, spotID uuid.UUID, starsValue int, bodyText string, now time.Time) (*Review, error) {
	stars, err := NewStars(starsValue)
	if err != nil {
		return nil, err
	}

	body, err := NewBody(bodyText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		spotID:    spotID,
		stars:     stars,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// IsAuthoredBy gates edits and deletes: only the reviewer controls a
// review, the spot owner has no override.
func (r *Review) IsAuthoredBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) SpotID() uuid.UUID    { return r.spotID }
func (r *Review) Stars() Stars         { return r.stars }
func (r *Review) Body() Body           { return r.body }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
