package api

import (
	"errors"
	"net/http"
	"strconv"

	domspot "stayspots/internal/domain/spot"
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

type SpotHandler struct {
	cmds commands.SpotCommands
	q    queries.SpotQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q}
}

// @Summary List spots
// @Description List spots with aggregated rating and preview image, keyset paginated
// @Tags spots
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to list spots", nil)
		return
	}

	resp := gin.H{"spots": resdto.FromSpotList(views)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get spot
// @Description Get a spot by ID with aggregated rating
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load spot", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Create spot
// @Description Create a new spot owned by the caller
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SpotRequest true "Create spot request"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req reqdto.SpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), principal, req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, spotErrStatus(err), err, "Create spot failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.SpotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load spot", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSpotView(view))
}

// @Summary Update spot
// @Description Update a spot; only its owner may do so
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.SpotRequest true "Update spot request"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [put]
func (h *SpotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.SpotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), principal, id, req.ToParams()); err != nil {
		httperr.AbortWithError(c, spotErrStatus(err), err, "Update spot failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load spot", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Delete spot
// @Description Delete a spot and everything attached to it; only its owner may do so
// @Tags spots
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.AbortWithError(c, spotErrStatus(err), err, "Delete spot failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List spot images
// @Description List all images for a spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /spots/{id}/images [get]
func (h *SpotHandler) ListImages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	images, err := h.q.GetImages(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list images", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": resdto.FromSpotImages(images)})
}

// @Summary Add spot image
// @Description Attach an image to a spot; only its owner may do so. Marking it preview demotes any current preview.
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.AddSpotImageRequest true "Add image request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/images [post]
func (h *SpotHandler) AddImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	var req reqdto.AddSpotImageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	imageID, err := h.cmds.AddImage(c.Request.Context(), principal, id, req.URL, req.Preview)
	if err != nil {
		httperr.AbortWithError(c, spotErrStatus(err), err, "Add image failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": imageID, "url": req.URL, "preview": req.Preview})
}

// @Summary Delete spot image
// @Description Remove an image from a spot; only the spot owner may do so
// @Tags spots
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spot-images/{imageId} [delete]
func (h *SpotHandler) DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	principal := middleware.GetPrincipal(c)

	if err := h.cmds.DeleteImage(c.Request.Context(), principal, imageID); err != nil {
		httperr.AbortWithError(c, spotErrStatus(err), err, "Delete image failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func spotErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound), errors.Is(err, commands.ErrSpotImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrSpotForbidden):
		return http.StatusForbidden
	case errors.Is(err, domspot.ErrInvalidLatitude),
		errors.Is(err, domspot.ErrInvalidLongitude),
		errors.Is(err, domspot.ErrInvalidName),
		errors.Is(err, domspot.ErrNegativePrice),
		errors.Is(err, domspot.ErrIncompleteAddr),
		errors.Is(err, domspot.ErrEmptyDescription):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
