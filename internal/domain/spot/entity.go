package spot

import (
	"time"

	"github.com/google/uuid"
)

type Spot struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	address     Address
	coordinates Coordinates
	name        Name
	description string
	price       Price
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSpot(ownerID uuid.UUID, address Address, coords Coordinates, name Name, description string, price Price) (*Spot, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Spot{
		id:          uuid.New(),
		ownerID:     ownerID,
		address:     address,
		coordinates: coords,
		name:        name,
		description: description,
		price:       price,
	}, nil
}

func ReconstructSpot(id, ownerID uuid.UUID, address Address, coords Coordinates, name Name, description string, price Price, createdAt, updatedAt time.Time) *Spot {
	return &Spot{
		id:          id,
		ownerID:     ownerID,
		address:     address,
		coordinates: coords,
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Spot) IsOwnedBy(userID uuid.UUID) bool {
	return s.ownerID == userID
}

func (s *Spot) ID() uuid.UUID            { return s.id }
func (s *Spot) OwnerID() uuid.UUID       { return s.ownerID }
func (s *Spot) Address() Address         { return s.address }
func (s *Spot) Coordinates() Coordinates { return s.coordinates }
func (s *Spot) Name() Name               { return s.name }
func (s *Spot) Description() string      { return s.description }
func (s *Spot) Price() Price             { return s.price }
func (s *Spot) CreatedAt() time.Time     { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time     { return s.updatedAt }
