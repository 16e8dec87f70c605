//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"stayspots/internal/domain/authz"
	"stayspots/internal/handler/api"
	resdto "stayspots/internal/handler/dto/response"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"
	"stayspots/tests/common/builder"
	"stayspots/tests/common/fake"
	"stayspots/tests/common/httptest"
	"stayspots/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	fakeCommands *fake.BookingCommands
	fakeQueries  *fake.BookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.fakeCommands = &fake.BookingCommands{}
	s.fakeQueries = &fake.BookingQueries{}
	s.userID = uuid.New()
	handler := api.NewBookingHandler(s.fakeCommands, s.fakeQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	// Occupancy is public; an optional token upgrades what the list
	// shows.
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.POST("/spots/:id/bookings", authMiddleware, handler.Create)
	s.router.GET("/spots/:id/bookings", optionalAuth, handler.ListForSpot)
	s.router.GET("/bookings", authMiddleware, handler.ListOwn)
	s.router.PUT("/bookings/:id", authMiddleware, handler.Reschedule)
	s.router.DELETE("/bookings/:id", authMiddleware, handler.Cancel)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/bookings"

	b := builder.NewBookingBuilder().WithSpotID(spotID)
	reqBody := b.BuildRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with booking", func() {
		s.fakeCommands.CreateFn = func(_ context.Context, principal authz.Principal, id uuid.UUID, start, end time.Time) (*commands.CreateBookingResult, error) {
			s.Equal(s.userID, principal.ID)
			s.Equal(spotID, id)
			s.Equal(reqBody.StartDate, start.Format("2006-01-02"))
			s.Equal(reqBody.EndDate, end.Format("2006-01-02"))
			return &commands.CreateBookingResult{BookingID: returnView.ID}, nil
		}
		s.fakeQueries.GetByIDFn = func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			s.Equal(returnView.ID, id)
			return returnView, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(reqBody.StartDate, response.StartDate)
		s.Equal(reqBody.EndDate, response.EndDate)
	})

	s.Run("error: 400 Bad Request on malformed dates", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing startDate", mutate: testutil.Field("startDate", nil)},
			{name: "missing endDate", mutate: testutil.Field("endDate", nil)},
			{name: "non-date startDate", mutate: testutil.Field("startDate", "first of June")},
			{name: "wrong format", mutate: testutil.Field("startDate", "01/06/2026")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown spot", commands.ErrSpotNotFound, http.StatusNotFound, "Spot not found"},
			{"dates taken", commands.ErrBookingConflict, http.StatusConflict, "already booked"},
			{"inverted range", commands.ErrInvalidDateRange, http.StatusBadRequest, "End date must be after start date"},
			{"storage failure", context.DeadlineExceeded, http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.fakeCommands.CreateFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID, _, _ time.Time) (*commands.CreateBookingResult, error) {
					return nil, tc.commandsError
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestReschedule() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String()
	reqBody := b.BuildRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 200 OK with updated booking", func() {
		s.fakeCommands.RescheduleFn = func(_ context.Context, principal authz.Principal, id uuid.UUID, _, _ time.Time) error {
			s.Equal(s.userID, principal.ID)
			s.Equal(b.ID, id)
			return nil
		}
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
			return returnView, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"not the author", commands.ErrBookingForbidden, http.StatusForbidden, "Forbidden"},
			{"stay already over", commands.ErrBookingInPast, http.StatusBadRequest, "Past bookings"},
			{"dates taken", commands.ErrBookingConflict, http.StatusConflict, "already booked"},
			{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.fakeCommands.RescheduleFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID, _, _ time.Time) error {
					return tc.commandsError
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.fakeCommands.CancelFn = func(_ context.Context, principal authz.Principal, id uuid.UUID) error {
			s.Equal(s.userID, principal.ID)
			s.Equal(bookingID, id)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request once the stay has started", func() {
		s.fakeCommands.CancelFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID) error {
			return commands.ErrBookingStarted
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "have started")
	})

	s.Run("error: 403 Forbidden for strangers", func() {
		s.fakeCommands.CancelFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID) error {
			return commands.ErrBookingForbidden
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *BookingHandlerTestSuite) TestListForSpot() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/bookings"

	redacted := func(b *builder.BookingBuilder) *queries.SpotBookingItem {
		return &queries.SpotBookingItem{
			ID:        b.ID,
			SpotID:    b.SpotID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		}
	}

	s.Run("success: anonymous requester gets dates without guest fields", func() {
		b := builder.NewBookingBuilder().WithSpotID(spotID)
		s.fakeQueries.ListForSpotFn = func(_ context.Context, id uuid.UUID, principal authz.Principal) ([]*queries.SpotBookingItem, error) {
			s.Equal(spotID, id)
			s.True(principal.IsZero())
			return []*queries.SpotBookingItem{redacted(b)}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body struct {
			Bookings []map[string]any `json:"bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		s.NotContains(body.Bookings[0], "userId")
		s.NotContains(body.Bookings[0], "guest")
		s.Contains(body.Bookings[0], "startDate")
	})

	s.Run("success: authenticated requester's principal flows through", func() {
		s.fakeQueries.ListForSpotFn = func(_ context.Context, _ uuid.UUID, principal authz.Principal) ([]*queries.SpotBookingItem, error) {
			s.Equal(s.userID, principal.ID)
			return nil, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.fakeQueries.ListForSpotFn = func(_ context.Context, _ uuid.UUID, _ authz.Principal) ([]*queries.SpotBookingItem, error) {
			return nil, fake.NotFoundErr()
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})

	s.Run("error: 500 Internal Server Error when the store fails", func() {
		s.fakeQueries.ListForSpotFn = func(_ context.Context, _ uuid.UUID, _ authz.Principal) ([]*queries.SpotBookingItem, error) {
			return nil, errors.New("connection reset by peer")
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list bookings")
	})
}

func (s *BookingHandlerTestSuite) TestListOwn() {
	s.Run("success: returns the caller's bookings", func() {
		items := []*queries.UserBookingItem{builder.NewBookingBuilder().BuildUserItem()}
		s.fakeQueries.ListForUserFn = func(_ context.Context, userID uuid.UUID) ([]*queries.UserBookingItem, error) {
			s.Equal(s.userID, userID)
			return items, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body struct {
			Bookings []resdto.UserBookingResponse `json:"bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		s.Equal(items[0].SpotName, body.Bookings[0].SpotName)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
