package request

import (
	"time"
)

// Booking dates travel as YYYY-MM-DD strings; intervals are half-open
// [startDate, endDate).
const dateLayout = "2006-01-02"

type BookingDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (r BookingDatesRequest) Parse() (start, end time.Time, err error) {
	start, err = time.ParseInLocation(dateLayout, r.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.ParseInLocation(dateLayout, r.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
