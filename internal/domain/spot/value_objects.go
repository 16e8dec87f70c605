package spot

import (
	"errors"
	"strings"
)

const MaxNameLength = 50

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvalidName      = errors.New("name must be non-empty and at most 50 characters")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrIncompleteAddr   = errors.New("address, city, state and country are required")
	ErrEmptyDescription = errors.New("description is required")
)

type Coordinates struct {
	lat float64
	lng float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidLongitude
	}
	return Coordinates{lat: lat, lng: lng}, nil
}

func (c Coordinates) Lat() float64 { return c.lat }
func (c Coordinates) Lng() float64 { return c.lng }

type Address struct {
	street  string
	city    string
	state   string
	country string
}

func NewAddress(street, city, state, country string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	country = strings.TrimSpace(country)
	if street == "" || city == "" || state == "" || country == "" {
		return Address{}, ErrIncompleteAddr
	}
	return Address{street: street, city: city, state: state, country: country}, nil
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) Country() string { return a.country }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Price is a per-night rate stored as integer cents.
type Price struct {
	cents int64
}

func NewPriceFromCents(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

func (p Price) Amount() float64 { return float64(p.cents) / 100.0 }
