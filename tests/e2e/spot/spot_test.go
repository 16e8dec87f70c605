//go:build e2e

package spot_test

import (
	"fmt"
	"net/http"
	"testing"

	"stayspots/internal/handler/dto/request"
	"stayspots/internal/handler/dto/response"
	"stayspots/tests/common/authtest"
	"stayspots/tests/common/dbtest"
	"stayspots/tests/common/httptest"
	"stayspots/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	spotsURL      = "/api/spots"
	spotImagesURL = "/api/spots/%s/images"
)

type SpotSuite struct {
	e2e.SharedSuite
}

func TestSpotSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SpotSuite))
}

func (s *SpotSuite) getSpot(id uuid.UUID) response.SpotResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, spotsURL+"/"+id.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.SpotResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp
}

func (s *SpotSuite) TestRatingAggregation() {
	s.Run("Normal case: a spot with no reviews reports null, not zero", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "spotowner")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		resp := s.getSpot(spotID)
		require.Nil(t, resp.AvgRating, "A spot nobody has reviewed must have a null rating")
	})

	s.Run("Normal case: stars 5, 4, 3 average to exactly 4.0", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "spotowner")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		for i, stars := range []int{5, 4, 3} {
			reviewerID := dbtest.CreateTestUser(t, s.DB,
				fmt.Sprintf("guest%d@example.com", i), fmt.Sprintf("nightguest%d", i))
			dbtest.CreateTestReview(t, s.DB, spotID, reviewerID, stars, "Really enjoyed the stay.")
		}

		resp := s.getSpot(spotID)
		require.NotNil(t, resp.AvgRating)
		require.Equal(t, 4.0, *resp.AvgRating)
	})

	s.Run("Normal case: list aggregates per spot", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "spotowner")
		reviewedID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")
		bareID := dbtest.CreateTestSpot(t, s.DB, ownerID, "River Cabin")

		reviewerID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", "nightguest")
		dbtest.CreateTestReview(t, s.DB, reviewedID, reviewerID, 5, "Spotless and quiet.")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, spotsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Spots []response.SpotResponse `json:"spots"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Spots, 2)

		byID := map[uuid.UUID]response.SpotResponse{}
		for _, spot := range body.Spots {
			byID[spot.ID] = spot
		}
		require.NotNil(t, byID[reviewedID].AvgRating)
		require.Equal(t, 5.0, *byID[reviewedID].AvgRating)
		require.Nil(t, byID[bareID].AvgRating)
	})
}

func (s *SpotSuite) TestPreviewImage() {
	addImage := func(t *testing.T, token string, spotID uuid.UUID, url string, preview bool) {
		body := request.AddSpotImageRequest{URL: url, Preview: preview}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(spotImagesURL, spotID), body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	s.Run("Normal case: no preview image means null", func() {
		t := s.T()

		ownerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		addImage(t, token, spotID, "https://img.example.com/plain.jpg", false)

		resp := s.getSpot(spotID)
		require.Nil(t, resp.PreviewImage)
	})

	s.Run("Normal case: a new preview demotes the previous one", func() {
		t := s.T()

		ownerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "spotowner")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		addImage(t, token, spotID, "https://img.example.com/first.jpg", true)
		// A second preview must not trip the one-preview unique index.
		addImage(t, token, spotID, "https://img.example.com/second.jpg", true)

		resp := s.getSpot(spotID)
		require.NotNil(t, resp.PreviewImage)
		require.Equal(t, "https://img.example.com/second.jpg", *resp.PreviewImage)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(spotImagesURL, spotID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Images []response.SpotImageResponse `json:"images"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Images, 2)

		previews := 0
		for _, img := range body.Images {
			if img.Preview {
				previews++
				require.Equal(t, "https://img.example.com/second.jpg", img.URL)
			}
		}
		require.Equal(t, 1, previews, "At most one image per spot may be the preview")
	})

	s.Run("Error case: only the owner may add images", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "spotowner")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "strangeruser")
		spotID := dbtest.CreateTestSpot(t, s.DB, ownerID, "Harbor Loft")

		body := request.AddSpotImageRequest{URL: "https://img.example.com/sneaky.jpg"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(spotImagesURL, spotID), body, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
