package response

import (
	"time"

	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	UserID    uuid.UUID `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// SpotBookingResponse carries guest identity and timestamps only when
// the requester owns the spot; other viewers just see the occupied
// dates.
type SpotBookingResponse struct {
	ID        uuid.UUID      `json:"id"`
	SpotID    uuid.UUID      `json:"spotId"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	UserID    *uuid.UUID     `json:"userId,omitempty"`
	Guest     *GuestResponse `json:"guest,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
}

type UserBookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	SpotName  string    `json:"spotName"`
	SpotCity  string    `json:"spotCity"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID,
		SpotID:    v.SpotID,
		UserID:    v.UserID,
		StartDate: v.StartDate.Format(dateLayout),
		EndDate:   v.EndDate.Format(dateLayout),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromSpotBookingItems(items []*queries.SpotBookingItem) []*SpotBookingResponse {
	result := make([]*SpotBookingResponse, len(items))
	for i, item := range items {
		resp := &SpotBookingResponse{
			ID:        item.ID,
			SpotID:    item.SpotID,
			StartDate: item.StartDate.Format(dateLayout),
			EndDate:   item.EndDate.Format(dateLayout),
			UserID:    item.UserID,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
		if item.Guest != nil {
			resp.Guest = &GuestResponse{
				ID:        item.Guest.ID,
				FirstName: item.Guest.FirstName,
				LastName:  item.Guest.LastName,
			}
		}
		result[i] = resp
	}
	return result
}

func FromUserBookingItems(items []*queries.UserBookingItem) []*UserBookingResponse {
	result := make([]*UserBookingResponse, len(items))
	for i, item := range items {
		result[i] = &UserBookingResponse{
			ID:        item.ID,
			SpotID:    item.SpotID,
			SpotName:  item.SpotName,
			SpotCity:  item.SpotCity,
			StartDate: item.StartDate.Format(dateLayout),
			EndDate:   item.EndDate.Format(dateLayout),
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
	}
	return result
}
