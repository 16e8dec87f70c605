//go:build unit

package spot_test

import (
	"strings"
	"testing"

	"stayspots/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	cases := []struct {
		name  string
		lat   float64
		lng   float64
		errIs error
	}{
		{"valid coordinates", 45.523, -122.676, nil},
		{"latitude at north pole", 90, 0, nil},
		{"latitude at south pole", -90, 0, nil},
		{"longitude at antimeridian", 0, 180, nil},
		{"longitude at negative antimeridian", 0, -180, nil},
		{"latitude too high", 90.1, 0, spot.ErrInvalidLatitude},
		{"latitude too low", -90.1, 0, spot.ErrInvalidLatitude},
		{"longitude too high", 0, 180.1, spot.ErrInvalidLongitude},
		{"longitude too low", 0, -180.1, spot.ErrInvalidLongitude},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			coords, err := spot.NewCoordinates(c.lat, c.lng)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.lat, coords.Lat())
			assert.Equal(t, c.lng, coords.Lng())
		})
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		a, err := spot.NewAddress(" 123 Waterfront Ave ", "Portland", "Oregon", "United States")
		require.NoError(t, err)
		assert.Equal(t, "123 Waterfront Ave", a.Street())
		assert.Equal(t, "Portland", a.City())
	})

	t.Run("each field is required", func(t *testing.T) {
		fields := [][4]string{
			{"", "Portland", "Oregon", "United States"},
			{"123 Waterfront Ave", "", "Oregon", "United States"},
			{"123 Waterfront Ave", "Portland", "", "United States"},
			{"123 Waterfront Ave", "Portland", "Oregon", ""},
			{"   ", "Portland", "Oregon", "United States"},
		}
		for _, f := range fields {
			_, err := spot.NewAddress(f[0], f[1], f[2], f[3])
			require.ErrorIs(t, err, spot.ErrIncompleteAddr)
		}
	})
}

func TestNewName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		n, err := spot.NewName("Harbor Loft")
		require.NoError(t, err)
		assert.Equal(t, "Harbor Loft", n.String())
	})

	t.Run("maximum length name", func(t *testing.T) {
		_, err := spot.NewName(strings.Repeat("a", spot.MaxNameLength))
		require.NoError(t, err)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := spot.NewName(strings.Repeat("a", spot.MaxNameLength+1))
		require.ErrorIs(t, err, spot.ErrInvalidName)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := spot.NewName("  ")
		require.ErrorIs(t, err, spot.ErrInvalidName)
	})
}

func TestNewPriceFromCents(t *testing.T) {
	t.Run("valid price", func(t *testing.T) {
		p, err := spot.NewPriceFromCents(18050)
		require.NoError(t, err)
		assert.Equal(t, int64(18050), p.Cents())
		assert.InDelta(t, 180.50, p.Amount(), 0.0001)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := spot.NewPriceFromCents(0)
		require.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := spot.NewPriceFromCents(-1)
		require.ErrorIs(t, err, spot.ErrNegativePrice)
	})
}
