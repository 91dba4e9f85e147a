package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyCommands commands.PropertyCommands
	propertyQueries  queries.PropertyQueries
	bookingQueries   queries.BookingQueries
}

func NewPropertyHandler(
	propertyCommands commands.PropertyCommands,
	propertyQueries queries.PropertyQueries,
	bookingQueries queries.BookingQueries,
) *PropertyHandler {
	return &PropertyHandler{
		propertyCommands: propertyCommands,
		propertyQueries:  propertyQueries,
		bookingQueries:   bookingQueries,
	}
}

// @Summary Create property
// @Description Create a new property listing (owner only)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	var req reqdto.CreatePropertyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.propertyCommands.CreateProperty(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPropertyInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Header("Location", "/api/properties/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromPropertyView(view))
}

// @Summary Get property
// @Description Get property by ID
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.propertyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary List own properties
// @Description List properties owned by the current user
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PropertyResponse
// @Failure 401 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	views, err := h.propertyQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyViews(views))
}

// @Summary Update property
// @Description Update property fields (owner only)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Property patch"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdatePropertyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.propertyCommands.UpdateProperty(c.Request.Context(), id, req.ToPatch(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyPatch), errors.Is(err, commands.ErrInvalidPropertyInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property data", nil)
		case errors.Is(err, commands.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Check availability
// @Description Check whether a date range is free for a property
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "check_in and check_out are required", nil)
		return
	}

	result, err := h.bookingQueries.CheckAvailability(c.Request.Context(), id, query.CheckIn, query.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary List property bookings
// @Description List bookings for a property (owner only)
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/bookings [get]
func (h *PropertyHandler) ListPropertyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	items, err := h.bookingQueries.ListByProperty(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, queries.ErrPropertyAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}
