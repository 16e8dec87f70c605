//go:build unit

package clock_test

import (
	"testing"
	"time"

	"stayspots/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	t.Run("truncates time of day to midnight UTC", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 6, 1, 14, 45, 30, 999, time.UTC))

		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), clock.Today(clk))
	})

	t.Run("resolves the date in UTC, not the wall-clock zone", func(t *testing.T) {
		// 23:30 on June 1st in UTC-7 is already June 2nd in UTC.
		pacific := time.FixedZone("UTC-7", -7*60*60)
		clk := clock.NewMockClock(time.Date(2026, 6, 1, 23, 30, 0, 0, pacific))

		assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), clock.Today(clk))
	})

	t.Run("advancing the clock past midnight moves the date", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 6, 1, 23, 0, 0, 0, time.UTC))
		before := clock.Today(clk)

		clk.Add(2 * time.Hour)

		assert.Equal(t, before.AddDate(0, 0, 1), clock.Today(clk))
	})
}
