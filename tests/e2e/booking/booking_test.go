//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"stayspots/internal/handler/dto/request"
	"stayspots/internal/handler/dto/response"
	"stayspots/tests/common/authtest"
	"stayspots/tests/common/dbtest"
	"stayspots/tests/common/httptest"
	"stayspots/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	spotBookingsURL = "/api/spots/%s/bookings"
	bookingsURL     = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}

// futureDate returns a date a month out so bookings are never rejected
// as being in the past.
func futureDate(days int) time.Time {
	return time.Now().UTC().AddDate(0, 1, days)
}

func datesBody(start, end time.Time) request.BookingDatesRequest {
	return request.BookingDatesRequest{
		StartDate: dateStr(start),
		EndDate:   dateStr(end),
	}
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: guest books a free window", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		start, end := futureDate(0), futureDate(3)
		url := fmt.Sprintf(spotBookingsURL, spotID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, datesBody(start, end), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		expected := &response.BookingResponse{
			SpotID:    spotID,
			UserID:    guestID,
			StartDate: dateStr(start),
			EndDate:   dateStr(end),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: checkout date may equal another booking's check-in", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		firstGuestID := dbtest.CreateTestUser(t, s.DB, "first@example.com", "firstguest")
		_, secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", "secondguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		checkIn := futureDate(3)
		dbtest.CreateTestBooking(t, s.DB, spotID, firstGuestID, futureDate(0), checkIn)

		url := fmt.Sprintf(spotBookingsURL, spotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			datesBody(checkIn, futureDate(6)), secondToken)
		require.Equal(t, http.StatusCreated, w.Code,
			"Back-to-back stays should not conflict: %s", w.Body.String())
	})

	s.Run("Error case: overlapping window conflicts", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		firstGuestID := dbtest.CreateTestUser(t, s.DB, "first@example.com", "firstguest")
		_, secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", "secondguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		dbtest.CreateTestBooking(t, s.DB, spotID, firstGuestID, futureDate(0), futureDate(4))

		url := fmt.Sprintf(spotBookingsURL, spotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			datesBody(futureDate(2), futureDate(6)), secondToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown spot returns 404", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "nightguest")

		url := fmt.Sprintf(spotBookingsURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			datesBody(futureDate(0), futureDate(3)), token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test: unauthorized when not logged in", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "spotowner")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		url := fmt.Sprintf(spotBookingsURL, spotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			datesBody(futureDate(0), futureDate(3)), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingSuite) TestReschedule() {
	s.Run("Normal case: author moves a future stay", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(3))

		newStart, newEnd := futureDate(10), futureDate(14)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingsURL+"/"+bookingID.String(), datesBody(newStart, newEnd), guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.Equal(t, dateStr(newStart), actual.StartDate)
		require.Equal(t, dateStr(newEnd), actual.EndDate)
	})

	s.Run("Normal case: shrinking a stay in place does not self-conflict", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(5))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingsURL+"/"+bookingID.String(), datesBody(futureDate(1), futureDate(4)), guestToken)
		require.Equal(t, http.StatusOK, w.Code,
			"A booking must not conflict with itself: %s", w.Body.String())
	})

	s.Run("Error case: rescheduling into an occupied window conflicts", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		otherGuestID := dbtest.CreateTestUser(t, s.DB, "other@example.com", "otherguest")
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		dbtest.CreateTestBooking(t, s.DB, spotID, otherGuestID, futureDate(10), futureDate(14))
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(3))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingsURL+"/"+bookingID.String(), datesBody(futureDate(12), futureDate(16)), guestToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: only the author may reschedule", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(3))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingsURL+"/"+bookingID.String(), datesBody(futureDate(10), futureDate(13)), ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code,
			"Even the spot owner cannot move someone else's stay")
	})
}

func (s *BookingSuite) TestCancel() {
	s.Run("Normal case: cancelling frees the window for others", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "nightguest")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "otherguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		start, end := futureDate(0), futureDate(3)
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, start, end)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+bookingID.String(), nil, guestToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		url := fmt.Sprintf(spotBookingsURL, spotID)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, datesBody(start, end), otherToken)
		require.Equal(t, http.StatusCreated, w2.Code,
			"Cancelled window should be bookable again: %s", w2.Body.String())
	})

	s.Run("Normal case: spot owner may cancel a guest's stay", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(3))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+bookingID.String(), nil, ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Error case: a stranger cannot cancel", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "spotowner")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", "nightguest")
		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "strangeruser")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		bookingID := dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(3))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+bookingID.String(), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *BookingSuite) TestListForSpot() {
	s.Run("Normal case: owner sees guest identity, others see dates only", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", "nightguest")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		dbtest.CreateTestBooking(t, s.DB, spotID, guestID, futureDate(0), futureDate(3))

		url := fmt.Sprintf(spotBookingsURL, spotID)

		type listBody struct {
			Bookings []response.SpotBookingResponse `json:"bookings"`
		}

		// Owner view carries the guest.
		var ownerView listBody
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ownerView))
		require.Len(t, ownerView.Bookings, 1)
		require.NotNil(t, ownerView.Bookings[0].UserID)
		require.Equal(t, guestID, *ownerView.Bookings[0].UserID)
		require.NotNil(t, ownerView.Bookings[0].Guest)
		require.Equal(t, "Avery", ownerView.Bookings[0].Guest.FirstName)

		// Anonymous view redacts it.
		var anonView listBody
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w2.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &anonView))
		require.Len(t, anonView.Bookings, 1)
		require.Nil(t, anonView.Bookings[0].UserID)
		require.Nil(t, anonView.Bookings[0].Guest)
		require.NotEmpty(t, anonView.Bookings[0].StartDate)
	})
}
