//go:build unit || e2e

package builder

import (
	"time"

	domreview "stayspots/internal/domain/review"
	reqdto "stayspots/internal/handler/dto/request"
	"stayspots/internal/usecase/queries"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	UserFirstName string
	UserLastName  string
	SpotID        uuid.UUID
	SpotName      string
	SpotCity      string
	Stars         int
	Body          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now().UTC()
	return &ReviewBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		UserFirstName: "Avery",
		UserLastName:  "Lane",
		SpotID:        uuid.New(),
		SpotName:      "Harbor Loft",
		SpotCity:      "Portland",
		Stars:         5,
		Body:          "Wonderful stay, would book again!",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ID, r.UserID, r.SpotID, r.Stars, r.Body, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Stars: r.Stars,
		Body:  r.Body,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Stars: r.Stars,
		Body:  r.Body,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:     r.ID,
		UserID: r.UserID,
		SpotID: r.SpotID,
		Stars:  int32(r.Stars),
		Body:   r.Body,
		Reviewer: queries.GuestView{
			ID:        r.UserID,
			FirstName: r.UserFirstName,
			LastName:  r.UserLastName,
		},
		Images:    []queries.ReviewImageView{},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildUserItem() *queries.UserReviewItem {
	return &queries.UserReviewItem{
		ID:        r.ID,
		SpotID:    r.SpotID,
		SpotName:  r.SpotName,
		SpotCity:  r.SpotCity,
		Stars:     int32(r.Stars),
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:     r.ID,
		UserID: r.UserID,
		SpotID: r.SpotID,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithSpotID(spotID uuid.UUID) *ReviewBuilder {
	r.SpotID = spotID
	return r
}

func (r *ReviewBuilder) WithStars(stars int) *ReviewBuilder {
	r.Stars = stars
	return r
}

func (r *ReviewBuilder) WithBody(body string) *ReviewBuilder {
	r.Body = body
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Stars = 1
	r.Body = "Nothing like the photos."
	return r
}
