package api

import (
	"errors"
	"net/http"

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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a spot
// @Description Reserve a half-open [startDate, endDate) interval for a spot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.BookingDatesRequest true "Booking dates"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spots/{id}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.BookingDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	start, end, err := req.Parse()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), principal, spotID, start, end)
	if err != nil {
		httperr.AbortWithError(c, bookingErrStatus(err), err, bookingErrMessage(err), nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Reschedule booking
// @Description Change a booking's dates; only its author may, and only before the stay ends
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingDatesRequest true "New booking dates"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.BookingDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	start, end, err := req.Parse()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	if err := h.cmds.Reschedule(c.Request.Context(), principal, bookingID, start, end); err != nil {
		httperr.AbortWithError(c, bookingErrStatus(err), err, bookingErrMessage(err), nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Delete a booking before it starts; the guest or the spot owner may cancel
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	if err := h.cmds.Cancel(c.Request.Context(), principal, bookingID); err != nil {
		httperr.AbortWithError(c, bookingErrStatus(err), err, bookingErrMessage(err), nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List spot bookings
// @Description List bookings on a spot; guest identity only appears for the spot owner
// @Tags bookings
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/bookings [get]
func (h *BookingHandler) ListForSpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	items, err := h.q.ListForSpot(c.Request.Context(), spotID, principal)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromSpotBookingItems(items)})
}

// @Summary List own bookings
// @Description List the caller's bookings with spot summaries
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("not authenticated"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromUserBookingItems(items)})
}

func bookingErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound), errors.Is(err, commands.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrBookingConflict):
		return http.StatusConflict
	case errors.Is(err, commands.ErrBookingForbidden):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrBookingInPast), errors.Is(err, commands.ErrBookingStarted),
		errors.Is(err, commands.ErrInvalidDateRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bookingErrMessage(err error) string {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound):
		return "Spot not found"
	case errors.Is(err, commands.ErrBookingNotFound):
		return "Booking not found"
	case errors.Is(err, commands.ErrBookingConflict):
		return "Spot is already booked for the specified dates"
	case errors.Is(err, commands.ErrBookingForbidden):
		return "Forbidden"
	case errors.Is(err, commands.ErrBookingInPast):
		return "Past bookings cannot be modified"
	case errors.Is(err, commands.ErrBookingStarted):
		return "Bookings that have started cannot be deleted"
	case errors.Is(err, commands.ErrInvalidDateRange):
		return "End date must be after start date"
	default:
		return "Internal server error"
	}
}
