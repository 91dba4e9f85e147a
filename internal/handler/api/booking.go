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

var errMissingAuthContext = errors.New("missing auth context")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a new booking for a property
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// respondCreateError maps creation failures onto the HTTP surface. The
// rejection reasons are mutually exclusive: creation reports exactly one.
func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	var datesErr *commands.DatesUnavailableError
	switch {
	case errors.Is(err, commands.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, commands.ErrPropertyUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Property is not available for booking", nil)
	case errors.Is(err, commands.ErrGuestCountExceeded):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Guest count exceeds property capacity", nil)
	case errors.Is(err, commands.ErrCheckInInPast):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Check-in date cannot be in the past", nil)
	case errors.Is(err, commands.ErrInvalidStayRange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Check-out date must be after check-in date", nil)
	case errors.As(err, &datesErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Dates are not available",
			gin.H{"conflict_ids": datesErr.ConflictIDs})
	case errors.Is(err, commands.ErrDatesUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Dates are not available", nil)
	case errors.Is(err, commands.ErrInvalidGuestDetails):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid guest details", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// @Summary Get booking
// @Description Get booking by ID (booking client or property owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
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

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, queries.ErrBookingAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List bookings made by the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	items, err := h.bookingQueries.ListByClient(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update booking status
// @Description Update booking status (property owner only)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
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

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status, userID)
	if err != nil {
		var datesErr *commands.DatesUnavailableError
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, commands.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		case errors.As(err, &datesErr):
			httperr.AbortWithError(c, http.StatusConflict, err, "Dates are not available",
				gin.H{"conflict_ids": datesErr.ConflictIDs})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Description Delete booking (property owner only)
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
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

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, commands.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
