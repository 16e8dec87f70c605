package response

import (
	"time"

	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	AvgRating    *float64  `json:"avgRating"`
	PreviewImage *string   `json:"previewImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SpotImageResponse struct {
	ID      uuid.UUID `json:"id"`
	URL     string    `json:"url"`
	Preview bool      `json:"preview"`
}

func FromSpotView(v *queries.SpotView) *SpotResponse {
	var resp SpotResponse
	// Field-for-field copy; view and response share their shape.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSpotList(views []*queries.SpotView) []*SpotResponse {
	result := make([]*SpotResponse, len(views))
	for i, v := range views {
		result[i] = FromSpotView(v)
	}
	return result
}

func FromSpotImages(views []*queries.SpotImageView) []*SpotImageResponse {
	result := make([]*SpotImageResponse, len(views))
	for i, v := range views {
		result[i] = &SpotImageResponse{ID: v.ID, URL: v.URL, Preview: v.Preview}
	}
	return result
}
