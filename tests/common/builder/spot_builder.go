//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stayspots/internal/handler/dto/request"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"
	"stayspots/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Address     string
	City        string
	State       string
	Country     string
	Lat         float64
	Lng         float64
	Name        string
	Description string
	Price       float64
	AvgRating   *float64
	Preview     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSpotBuilder() *SpotBuilder {
	now := time.Now().UTC()
	return &SpotBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Address:     "123 Waterfront Ave",
		City:        "Portland",
		State:       "Oregon",
		Country:     "United States",
		Lat:         45.523,
		Lng:         -122.676,
		Name:        "Harbor Loft",
		Description: "Bright loft a block from the river.",
		Price:       180.50,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SpotBuilder) BuildParams() commands.SpotParams {
	return commands.SpotParams{
		Street:      s.Address,
		City:        s.City,
		State:       s.State,
		Country:     s.Country,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Name:        s.Name,
		Description: s.Description,
		PriceCents:  int64(s.Price * 100),
	}
}

func (s *SpotBuilder) BuildRequestDTO() reqdto.SpotRequest {
	return reqdto.SpotRequest{
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Country:     s.Country,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
	}
}

func (s *SpotBuilder) BuildView() *queries.SpotView {
	return &queries.SpotView{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Country:      s.Country,
		Lat:          s.Lat,
		Lng:          s.Lng,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		AvgRating:    s.AvgRating,
		PreviewImage: s.Preview,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (s *SpotBuilder) BuildSnapshot() *shared.SpotSnapshot {
	return &shared.SpotSnapshot{
		ID:      s.ID,
		OwnerID: s.OwnerID,
	}
}

// Fluent builder methods
func (s *SpotBuilder) WithID(id uuid.UUID) *SpotBuilder {
	s.ID = id
	return s
}

func (s *SpotBuilder) WithOwnerID(ownerID uuid.UUID) *SpotBuilder {
	s.OwnerID = ownerID
	return s
}

func (s *SpotBuilder) WithName(name string) *SpotBuilder {
	s.Name = name
	return s
}

func (s *SpotBuilder) WithAvgRating(rating float64) *SpotBuilder {
	s.AvgRating = &rating
	return s
}

func (s *SpotBuilder) WithPreviewImage(url string) *SpotBuilder {
	s.Preview = &url
	return s
}
