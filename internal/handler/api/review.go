package api

import (
	"errors"
	"net/http"
	"strconv"

	domreview "stayspots/internal/domain/review"
	reqdto "stayspots/internal/handler/dto/request"
	resdto "stayspots/internal/handler/dto/response"
	"stayspots/internal/handler/httperr"
	"stayspots/internal/handler/middleware"
	"stayspots/internal/infra"
	"stayspots/internal/usecase/commands"
	"stayspots/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Create a review for a spot; one per user per spot
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spots/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), principal, commands.CreateReviewParams{
		SpotID: spotID,
		Stars:  req.Stars,
		Body:   req.Body,
	})
	if err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, reviewErrMessage(err), nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Get review
// @Description Get a review by ID with reviewer and images
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Update review
// @Description Update own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), principal, id, commands.UpdateReviewParams{
		Stars: req.Stars,
		Body:  req.Body,
	}); err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, reviewErrMessage(err), nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Description Delete own review; its images go with it
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, reviewErrMessage(err), nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List spot reviews
// @Description List reviews for a spot with keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Spot ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /spots/{id}/reviews [get]
func (h *ReviewHandler) ListBySpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot id", nil)
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListBySpot(c.Request.Context(), spotID, cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to list reviews", nil)
		return
	}

	resp := gin.H{"reviews": resdto.FromReviewList(views)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own reviews
// @Description List the caller's reviews with spot summaries
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /reviews/current [get]
func (h *ReviewHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("not authenticated"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromUserReviewItems(items)})
}

// @Summary Add review image
// @Description Attach an image to own review, at most 10 per review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.AddReviewImageRequest true "Add image request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id}/images [post]
func (h *ReviewHandler) AddImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.AddReviewImageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	imageID, err := h.cmds.AddImage(c.Request.Context(), principal, id, req.URL)
	if err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, reviewErrMessage(err), nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": imageID, "url": req.URL})
}

// @Summary Delete review image
// @Description Remove an image from own review
// @Tags reviews
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /review-images/{imageId} [delete]
func (h *ReviewHandler) DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	if err := h.cmds.DeleteImage(c.Request.Context(), principal, imageID); err != nil {
		httperr.AbortWithError(c, reviewErrStatus(err), err, reviewErrMessage(err), nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func reviewErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound),
		errors.Is(err, commands.ErrReviewNotFound),
		errors.Is(err, commands.ErrReviewImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrDuplicateReview):
		return http.StatusConflict
	case errors.Is(err, commands.ErrReviewForbidden):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrTooManyReviewImages),
		errors.Is(err, domreview.ErrInvalidStars),
		errors.Is(err, domreview.ErrEmptyBody),
		errors.Is(err, domreview.ErrBodyTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func reviewErrMessage(err error) string {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound):
		return "Spot not found"
	case errors.Is(err, commands.ErrReviewNotFound):
		return "Review not found"
	case errors.Is(err, commands.ErrReviewImageNotFound):
		return "Review image not found"
	case errors.Is(err, commands.ErrDuplicateReview):
		return "User already has a review for this spot"
	case errors.Is(err, commands.ErrReviewForbidden):
		return "Forbidden"
	case errors.Is(err, commands.ErrTooManyReviewImages):
		return "Maximum number of images for this review was reached"
	case errors.Is(err, domreview.ErrInvalidStars):
		return "Stars must be an integer from 1 to 5"
	case errors.Is(err, domreview.ErrEmptyBody), errors.Is(err, domreview.ErrBodyTooLong):
		return "Review text is required and must be at most 1000 characters"
	default:
		return "Internal server error"
	}
}
