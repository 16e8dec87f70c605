package request

import (
	"math"

	"stayspots/internal/usecase/commands"
)

type SpotRequest struct {
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	Lat         float64 `json:"lat" binding:"required"`
	Lng         float64 `json:"lng" binding:"required"`
	Name        string  `json:"name" binding:"required,max=50"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

func (r SpotRequest) ToParams() commands.SpotParams {
	return commands.SpotParams{
		Street:      r.Address,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  int64(math.Round(r.Price * 100)),
	}
}

type AddSpotImageRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Preview bool   `json:"preview"`
}
