//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

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

type SpotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	fakeCommands *fake.SpotCommands
	fakeQueries  *fake.SpotQueries
	userID       uuid.UUID
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.fakeCommands = &fake.SpotCommands{}
	s.fakeQueries = &fake.SpotQueries{}
	s.userID = uuid.New()
	handler := api.NewSpotHandler(s.fakeCommands, s.fakeQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/spots", handler.List)
	s.router.POST("/spots", authMiddleware, handler.Create)
	s.router.GET("/spots/:id", handler.Get)
	s.router.PUT("/spots/:id", authMiddleware, handler.Update)
	s.router.DELETE("/spots/:id", authMiddleware, handler.Delete)
	s.router.GET("/spots/:id/images", handler.ListImages)
	s.router.POST("/spots/:id/images", authMiddleware, handler.AddImage)
	s.router.DELETE("/spot-images/:imageId", authMiddleware, handler.DeleteImage)
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

func (s *SpotHandlerTestSuite) TestList() {
	s.Run("success: returns spots with aggregates and next cursor", func() {
		withRating := builder.NewSpotBuilder().WithAvgRating(4.5).WithPreviewImage("https://img.example.com/p.jpg")
		bare := builder.NewSpotBuilder()
		s.fakeQueries.ListFn = func(_ context.Context, cursor *queries.Cursor, limit int) ([]*queries.SpotView, *queries.Cursor, error) {
			s.Nil(cursor)
			s.Equal(20, limit)
			return []*queries.SpotView{withRating.BuildView(), bare.BuildView()}, &queries.Cursor{After: "next-page"}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots", nil, "")

		var body struct {
			Spots      []resdto.SpotResponse `json:"spots"`
			NextCursor string                `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Spots, 2)
		s.Equal("next-page", body.NextCursor)

		s.Require().NotNil(body.Spots[0].AvgRating)
		s.InDelta(4.5, *body.Spots[0].AvgRating, 0.0001)
		s.Nil(body.Spots[1].AvgRating, "spot without reviews must report null, not zero")
		s.Nil(body.Spots[1].PreviewImage)
	})

	s.Run("success: limit and cursor flow through", func() {
		s.fakeQueries.ListFn = func(_ context.Context, cursor *queries.Cursor, limit int) ([]*queries.SpotView, *queries.Cursor, error) {
			s.Require().NotNil(cursor)
			s.Equal("abc", cursor.After)
			s.Equal(5, limit)
			return nil, nil, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots?limit=5&after=abc", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *SpotHandlerTestSuite) TestGet() {
	view := builder.NewSpotBuilder().BuildView()
	url := "/spots/" + view.ID.String()

	s.Run("success: returns 200 OK with SpotResponse", func() {
		s.fakeQueries.GetByIDFn = func(_ context.Context, id uuid.UUID) (*queries.SpotView, error) {
			s.Equal(view.ID, id)
			return view, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Name, response.Name)
		s.InDelta(view.Price, response.Price, 0.0001)
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID) (*queries.SpotView, error) {
			return nil, fake.NotFoundErr()
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})

	s.Run("error: 500 Internal Server Error when the store fails", func() {
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID) (*queries.SpotView, error) {
			return nil, errors.New("connection reset by peer")
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load spot")
	})
}

func (s *SpotHandlerTestSuite) TestCreate() {
	b := builder.NewSpotBuilder()
	reqBody := b.BuildRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with spot", func() {
		s.fakeCommands.CreateFn = func(_ context.Context, principal authz.Principal, params commands.SpotParams) (*commands.CreateSpotResult, error) {
			s.Equal(s.userID, principal.ID)
			s.Equal(b.Name, params.Name)
			s.Equal(int64(18050), params.PriceCents)
			return &commands.CreateSpotResult{SpotID: returnView.ID}, nil
		}
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID) (*queries.SpotView, error) {
			return returnView, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots", reqBody, "bearer-token")

		var response resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing address", mutate: testutil.Field("address", nil)},
			{name: "missing city", mutate: testutil.Field("city", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 51))},
			{name: "missing description", mutate: testutil.Field("description", nil)},
			{name: "missing price", mutate: testutil.Field("price", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots", requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *SpotHandlerTestSuite) TestUpdate() {
	b := builder.NewSpotBuilder()
	url := "/spots/" + b.ID.String()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 200 OK with updated spot", func() {
		s.fakeCommands.UpdateFn = func(_ context.Context, principal authz.Principal, id uuid.UUID, _ commands.SpotParams) error {
			s.Equal(s.userID, principal.ID)
			s.Equal(b.ID, id)
			return nil
		}
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID) (*queries.SpotView, error) {
			return b.BuildView(), nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden when not the owner", func() {
		s.fakeCommands.UpdateFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID, _ commands.SpotParams) error {
			return commands.ErrSpotForbidden
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.fakeCommands.UpdateFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID, _ commands.SpotParams) error {
			return commands.ErrSpotNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *SpotHandlerTestSuite) TestDelete() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String()

	s.Run("success: returns 204 No Content", func() {
		s.fakeCommands.DeleteFn = func(_ context.Context, principal authz.Principal, id uuid.UUID) error {
			s.Equal(s.userID, principal.ID)
			s.Equal(spotID, id)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when not the owner", func() {
		s.fakeCommands.DeleteFn = func(_ context.Context, _ authz.Principal, _ uuid.UUID) error {
			return commands.ErrSpotForbidden
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *SpotHandlerTestSuite) TestImages() {
	spotID := uuid.New()

	s.Run("success: lists spot images", func() {
		s.fakeQueries.GetImagesFn = func(_ context.Context, id uuid.UUID) ([]*queries.SpotImageView, error) {
			s.Equal(spotID, id)
			return []*queries.SpotImageView{
				{ID: uuid.New(), URL: "https://img.example.com/1.jpg", Preview: true},
				{ID: uuid.New(), URL: "https://img.example.com/2.jpg", Preview: false},
			}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+spotID.String()+"/images", nil, "")

		var body struct {
			Images []resdto.SpotImageResponse `json:"images"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Images, 2)
		s.True(body.Images[0].Preview)
	})

	s.Run("success: adds a preview image", func() {
		imageID := uuid.New()
		s.fakeCommands.AddImageFn = func(_ context.Context, principal authz.Principal, id uuid.UUID, url string, preview bool) (uuid.UUID, error) {
			s.Equal(s.userID, principal.ID)
			s.Equal(spotID, id)
			s.True(preview)
			return imageID, nil
		}

		reqBody := map[string]any{"url": "https://img.example.com/new.jpg", "preview": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots/"+spotID.String()+"/images", reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(imageID.String(), body["id"])
	})

	s.Run("success: deletes an image", func() {
		imageID := uuid.New()
		s.fakeCommands.DeleteImageFn = func(_ context.Context, principal authz.Principal, id uuid.UUID) error {
			s.Equal(s.userID, principal.ID)
			s.Equal(imageID, id)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/spot-images/"+imageID.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
