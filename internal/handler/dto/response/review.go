package response

import (
	"time"

	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewImageResponse struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

type ReviewResponse struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"userId"`
	SpotID    uuid.UUID             `json:"spotId"`
	Stars     int32                 `json:"stars"`
	Body      string                `json:"review"`
	Reviewer  GuestResponse         `json:"reviewer"`
	Images    []ReviewImageResponse `json:"images"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type UserReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	SpotID       uuid.UUID `json:"spotId"`
	SpotName     string    `json:"spotName"`
	SpotCity     string    `json:"spotCity"`
	PreviewImage *string   `json:"previewImage"`
	Stars        int32     `json:"stars"`
	Body         string    `json:"review"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	images := make([]ReviewImageResponse, len(v.Images))
	for i, img := range v.Images {
		images[i] = ReviewImageResponse{ID: img.ID, URL: img.URL}
	}
	return &ReviewResponse{
		ID:     v.ID,
		UserID: v.UserID,
		SpotID: v.SpotID,
		Stars:  v.Stars,
		Body:   v.Body,
		Reviewer: GuestResponse{
			ID:        v.Reviewer.ID,
			FirstName: v.Reviewer.FirstName,
			LastName:  v.Reviewer.LastName,
		},
		Images:    images,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReviewList(views []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, len(views))
	for i, v := range views {
		result[i] = FromReviewView(v)
	}
	return result
}

func FromUserReviewItems(items []*queries.UserReviewItem) []*UserReviewResponse {
	result := make([]*UserReviewResponse, len(items))
	for i, item := range items {
		result[i] = &UserReviewResponse{
			ID:           item.ID,
			SpotID:       item.SpotID,
			SpotName:     item.SpotName,
			SpotCity:     item.SpotCity,
			PreviewImage: item.PreviewImage,
			Stars:        item.Stars,
			Body:         item.Body,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		}
	}
	return result
}
